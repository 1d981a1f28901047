package service

import (
	"context"
	"testing"
	"time"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/internal/team/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

// A counterpart that no longer resolves is shown with a placeholder name.
// Users are never deleted through the API, so the invite is seeded directly.
func TestInboxUnknownCounterpart(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	t.Cleanup(func() { _ = st.Close() })

	now := time.Now().UTC()
	bob := domain.User{ID: newID(nil, now), Email: "bob@x.com", FullName: "Bob Bianchi", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Users().CreateUser(ctx, bob))

	ghost := newID(nil, now)
	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invites().CreateInvite(ctx, domain.Invite{
			ID:        newID(nil, now),
			FromUser:  ghost,
			ToUser:    bob.ID,
			Status:    domain.InviteStatusPending,
			CreatedAt: now,
		})
	})
	require.NoError(t, err)

	inbox, err := NewInviteService(st).Inbox(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, inbox.Incoming, 1)
	require.Equal(t, domain.UnknownCounterpart, inbox.Incoming[0].CounterpartName)
}

func TestStampTruncatesToMicroseconds(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 123456789, time.FixedZone("CET", 3600))
	got := stamp(func() time.Time { return at })
	require.Equal(t, time.UTC, got.Location())
	require.Equal(t, 123456000, got.Nanosecond())
}
