package team_test

import (
	"testing"

	"github.com/orthonext/team/pkg/teamsdk"
	"github.com/stretchr/testify/require"
)

// TestAliceInvitesBob walks the full invite lifecycle between two surgeons.
func TestAliceInvitesBob(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	alice := registerSession(t, client, "alice@example.com", "Alice Rossi")
	bob := registerSession(t, client, "bob@example.com", "Bob Bianchi")

	inv, err := alice.SendInvite(ctx, bob.UserID())
	require.NoError(t, err)
	require.Equal(t, teamsdk.StatusPending, inv.Status)
	require.Equal(t, alice.UserID(), inv.FromUser)
	require.Equal(t, bob.UserID(), inv.ToUser)

	_, err = alice.SendInvite(ctx, bob.UserID())
	require.True(t, teamsdk.IsConflict(err), "second pending invite should conflict: %v", err)

	incoming, err := bob.ListIncoming(ctx)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	require.Equal(t, inv.ID, incoming[0].ID)

	outgoing, err := alice.ListOutgoing(ctx)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)

	_, err = alice.Accept(ctx, inv.ID)
	require.True(t, teamsdk.IsForbidden(err), "sender cannot respond: %v", err)

	accepted, err := bob.Accept(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, teamsdk.StatusAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)

	_, err = bob.Decline(ctx, inv.ID)
	require.True(t, teamsdk.IsConflict(err), "resolved invite is immutable: %v", err)

	inbox, err := alice.Inbox(ctx)
	require.NoError(t, err)
	require.Empty(t, inbox.Incoming)
	require.Len(t, inbox.Outgoing, 1)
	require.Equal(t, "Bob Bianchi", inbox.Outgoing[0].CounterpartName)
	require.Equal(t, teamsdk.StatusAccepted, inbox.Outgoing[0].Status)
}

func TestInviteErrors(t *testing.T) {
	baseURL, cleanup := setupTeamContainer(t)
	defer cleanup()

	client := teamsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	alice := registerSession(t, client, "alice@example.com", "Alice Rossi")
	bob := registerSession(t, client, "bob@example.com", "Bob Bianchi")

	_, err := alice.SendInvite(ctx, alice.UserID())
	require.True(t, teamsdk.IsBadRequest(err), "self invite: %v", err)

	_, err = alice.SendInvite(ctx, "01J00000000000000000000000")
	require.True(t, teamsdk.IsUnprocessable(err), "unknown user: %v", err)

	inv, err := alice.SendInvite(ctx, bob.UserID())
	require.NoError(t, err)

	_, err = bob.Respond(ctx, inv.ID, "maybe")
	require.True(t, teamsdk.IsBadRequest(err), "invalid decision: %v", err)

	_, err = bob.Accept(ctx, "01J00000000000000000000000")
	require.True(t, teamsdk.IsNotFound(err))

	declined, err := bob.Decline(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, teamsdk.StatusDeclined, declined.Status)

	// A declined invite frees the pair for a new one, in either direction.
	_, err = alice.SendInvite(ctx, bob.UserID())
	require.NoError(t, err)
	_, err = bob.SendInvite(ctx, alice.UserID())
	require.NoError(t, err)
}
