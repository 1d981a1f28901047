package team_test

import (
	"testing"

	"github.com/orthonext/team/pkg/teamsdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewSDKClient(baseURL)

	body, err := client.Health(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", body)

	live, err := client.GetLiveness(t.Context())
	assertHealthy(t, live, err)

	ready, err := client.GetReadiness(t.Context())
	assertHealthy(t, ready, err)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
}
