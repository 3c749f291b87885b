package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/nibbleworks/forkful/pkg/recipesdk"
	"github.com/stretchr/testify/require"
)

// TestTokenEndpointRateLimit verifies the credential endpoint enforces its
// strict per-IP limit under production defaults.
func TestTokenEndpointRateLimit(t *testing.T) {
	baseURL, cleanup := setupAPIContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)

	// Hammer the token endpoint with bad credentials. The strict profile
	// allows 5 requests per minute, so well before 20 attempts we must see
	// a 429.
	limited := false
	for i := 0; i < 20; i++ {
		_, err := client.IssueToken(t.Context(), "nobody@example.com", "wrong")
		require.Error(t, err)

		var apiErr *recipesdk.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}

	require.True(t, limited, "Token endpoint should rate limit repeated attempts")
}
