package team_test

import (
	"testing"

	"github.com/orthonext/team/pkg/teamsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies /v1/login keeps its strict per-IP limit
// (5 requests per minute).
func TestRateLimitLogin(t *testing.T) {
	baseURL, cleanup := setupTeamContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := teamsdk.NewSDKClient(baseURL)

	for i := range 5 {
		_, err := client.Login(t.Context(), "nobody@example.com", "wrong")
		require.True(t, teamsdk.IsUnauthorized(err), "request %d should fail authentication, got %v", i+1, err)
	}

	_, err := client.Login(t.Context(), "nobody@example.com", "wrong")
	require.True(t, teamsdk.IsRateLimited(err), "sixth request should be rate limited, got %v", err)
}
