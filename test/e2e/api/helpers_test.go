package api_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/nibbleworks/forkful/pkg/recipesdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for recipe service end-to-end tests.
 * This includes container setup, account registration, and assertions.
 */

const (
	testImageName = "forkful-api-test:latest"

	testPassword = "Recipes123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Recipe Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Recipe Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/api/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupAPIContainer starts the recipe service in a container and returns the
// base URL.
func setupAPIContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"RECIPES_DATABASE_FILE": "/data/recipes.db",
			"RECIPES_PEPPER_FILE":   "/data/pepper",
			"RECIPES_MEDIA_ROOT":    "/data/media",
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
			// Increase rate limits for E2E tests to prevent test failures.
			// Tests make many rapid requests which would otherwise hit the
			// strict production limits.
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_STRICT_WINDOW_SEC": "60",
			"RATELIMIT_STRICT_BURST":      "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_MODERATE_BURST":    "1000",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// setupAPIContainerWithDefaultRateLimits starts the recipe service with
// DEFAULT rate limits. This is specifically for testing that rate limiting
// actually works. Most tests should use setupAPIContainer() which has relaxed
// limits to prevent test failures.
func setupAPIContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"RECIPES_DATABASE_FILE": "/data/recipes.db",
			"RECIPES_PEPPER_FILE":   "/data/pepper",
			"RECIPES_MEDIA_ROOT":    "/data/media",
			"ENV":                   "test",
			"LOG_LEVEL":             "info",
			"LOG_FORMAT":            "json",
			// NOTE: No rate limit overrides - using production defaults
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerAndLogin creates an account and returns an authenticated session.
func registerAndLogin(t *testing.T, client *recipesdk.SDKClient, email string) *recipesdk.Session {
	t.Helper()
	ctx := context.Background()

	user, err := client.Register(ctx, recipesdk.RegisterUserRequest{
		Email:    email,
		Name:     "Test Cook",
		Password: testPassword,
	})
	require.NoError(t, err, "Registration should succeed")
	require.Equal(t, email, user.Email)

	session, err := client.IssueToken(ctx, email, testPassword)
	require.NoError(t, err, "Token issue should succeed")
	require.NotEmpty(t, session.Token())

	return session
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

// attrRefs builds an attribute list from names.
func attrRefs(names ...string) *[]recipesdk.AttributeRef {
	refs := make([]recipesdk.AttributeRef, len(names))
	for i, name := range names {
		refs[i] = recipesdk.AttributeRef{Name: name}
	}
	return &refs
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *recipesdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError verifies an error is a typed API error with the given
// status code.
func assertAPIError(t *testing.T, err error, statusCode int, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *recipesdk.APIError
	require.ErrorAs(t, err, &apiErr, context)
	require.Equal(t, statusCode, apiErr.StatusCode, context)
}

// assertValidationError verifies an error is a field validation error
// covering the given fields.
func assertValidationError(t *testing.T, err error, fields ...string) {
	t.Helper()
	require.Error(t, err)

	var ve *recipesdk.ValidationError
	require.ErrorAs(t, err, &ve)
	for _, field := range fields {
		require.Contains(t, ve.Fields, field, "Validation error should cover field %q", field)
	}
}
