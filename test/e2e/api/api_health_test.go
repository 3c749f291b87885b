package api_test

import (
	"testing"

	"github.com/nibbleworks/forkful/pkg/recipesdk"
)

// TestLivezEndpoint verifies the liveness check endpoint works on a fresh
// service.
func TestLivezEndpoint(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Livez endpoint is healthy")
}

// TestReadyzEndpoint verifies the readiness check endpoint reports the
// database as reachable.
func TestReadyzEndpoint(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	client := recipesdk.NewSDKClient(baseURL)

	health, err := client.GetReadiness(t.Context())
	assertHealthy(t, health, err)

	t.Logf("Readyz endpoint is healthy")
}
