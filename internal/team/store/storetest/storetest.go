// Package storetest is a conformance suite shared by every store driver.
package storetest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Factory returns a migrated, empty store. It should register cleanup with t.
type Factory func(t *testing.T) store.Store

// Run executes the whole suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore) })
	t.Run("search", func(t *testing.T) { testSearch(t, newStore) })
	t.Run("invites", func(t *testing.T) { testInvites(t, newStore) })
	t.Run("transactions", func(t *testing.T) { testTransactions(t, newStore) })
	t.Run("concurrent resolve", func(t *testing.T) { testConcurrentResolve(t, newStore) })
}

// base is truncated to microseconds so values survive every backend intact.
var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// NewUser builds a user with defaults, created at base+offset.
func NewUser(email, name string, offset time.Duration) domain.User {
	at := base.Add(offset)
	return domain.User{
		ID:           idx.NewAt(at).String(),
		Email:        email,
		FullName:     name,
		PasswordHash: "$argon2id$test",
		Specialty:    domain.DefaultSpecialty,
		Languages:    domain.DefaultLanguages,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

// NewInvite builds a pending invite created at base+offset.
func NewInvite(from, to string, offset time.Duration) domain.Invite {
	at := base.Add(offset)
	return domain.Invite{
		ID:        idx.NewAt(at).String(),
		FromUser:  from,
		ToUser:    to,
		Status:    domain.InviteStatusPending,
		CreatedAt: at,
	}
}

func userIDs(users []domain.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}

func inviteIDs(invites []domain.Invite) []string {
	out := make([]string, 0, len(invites))
	for _, inv := range invites {
		out = append(out, inv.ID)
	}
	return out
}

func testUsers(t *testing.T, newStore Factory) {
	ctx := context.Background()
	st := newStore(t)
	users := st.Users()

	alice := NewUser("alice@x.com", "Alice Rossi", 0)
	require.NoError(t, users.CreateUser(ctx, alice))

	t.Run("get by id round trips", func(t *testing.T) {
		got, err := users.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, alice, got)

		again, err := users.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, got, again)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := users.GetUserByEmail(ctx, "alice@x.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = users.GetUserByEmail(ctx, "nobody@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := NewUser("alice@x.com", "Other Alice", time.Second)
		require.ErrorIs(t, users.CreateUser(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update profile merges", func(t *testing.T) {
		city := "Milano"
		subs := "Spalla, Gomito"
		at := base.Add(time.Hour)

		got, err := users.UpdateProfile(ctx, alice.ID, domain.ProfileUpdate{
			City:           &city,
			SubSpecialties: &subs,
		}, at)
		require.NoError(t, err)
		require.Equal(t, "Milano", got.City)
		require.Equal(t, "Spalla, Gomito", got.SubSpecialties)
		require.Equal(t, domain.DefaultSpecialty, got.Specialty)
		require.Equal(t, alice.Email, got.Email)
		require.Equal(t, alice.CreatedAt, got.CreatedAt)
		require.Equal(t, at, got.UpdatedAt)

		stored, err := users.GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, got, stored)
	})

	t.Run("update unknown user", func(t *testing.T) {
		city := "Roma"
		_, err := users.UpdateProfile(ctx, idx.New().String(), domain.ProfileUpdate{City: &city}, base)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func testSearch(t *testing.T, newStore Factory) {
	ctx := context.Background()
	st := newStore(t)
	users := st.Users()

	alice := NewUser("alice@x.com", "Alice Rossi", 0)
	alice.Region = "Lombardia"
	alice.Hospitals = "San Raffaele"
	bob := NewUser("bob@x.com", "Bob Bianchi", time.Minute)
	bob.City = "Milano"
	carla := NewUser("carla@x.com", "Carla Verdi", 2*time.Minute)
	carla.SubSpecialties = "Ginocchio"
	carla.Bio = "Milano born"

	for _, u := range []domain.User{alice, bob, carla} {
		require.NoError(t, users.CreateUser(ctx, u))
	}

	t.Run("empty query returns everyone newest first", func(t *testing.T) {
		got, err := users.SearchUsers(ctx, store.UserQuery{})
		require.NoError(t, err)
		require.Equal(t, []string{carla.ID, bob.ID, alice.ID}, userIDs(got))
	})

	t.Run("case insensitive substring", func(t *testing.T) {
		got, err := users.SearchUsers(ctx, store.UserQuery{Text: "MILANO"})
		require.NoError(t, err)
		require.Equal(t, []string{bob.ID}, userIDs(got), "bio is not searchable")

		got, err = users.SearchUsers(ctx, store.UserQuery{Text: "raffaele"})
		require.NoError(t, err)
		require.Equal(t, []string{alice.ID}, userIDs(got))

		got, err = users.SearchUsers(ctx, store.UserQuery{Text: "i"})
		require.NoError(t, err)
		require.Equal(t, []string{carla.ID, bob.ID, alice.ID}, userIDs(got))
	})

	t.Run("limit", func(t *testing.T) {
		got, err := users.SearchUsers(ctx, store.UserQuery{Limit: 2})
		require.NoError(t, err)
		require.Equal(t, []string{carla.ID, bob.ID}, userIDs(got))
	})

	t.Run("stable across calls", func(t *testing.T) {
		first, err := users.SearchUsers(ctx, store.UserQuery{Text: "a"})
		require.NoError(t, err)
		second, err := users.SearchUsers(ctx, store.UserQuery{Text: "a"})
		require.NoError(t, err)
		require.Equal(t, userIDs(first), userIDs(second))
	})

	t.Run("non-ascii case folding", func(t *testing.T) {
		st := newStore(t)
		elodie := NewUser("elodie@x.com", "Élodie Ñúñez", 0)
		elodie.City = "Forlì"
		elodie.Hospitals = "Ospedale Sant'Orsola"
		require.NoError(t, st.Users().CreateUser(ctx, elodie))

		for _, needle := range []string{"élodie", "ÑÚÑEZ", "forlì", "FORLÌ", "élodie ñúñez"} {
			got, err := st.Users().SearchUsers(ctx, store.UserQuery{Text: needle})
			require.NoError(t, err)
			require.Equal(t, []string{elodie.ID}, userIDs(got), "needle %q", needle)
		}
	})

	t.Run("same timestamp falls back to id", func(t *testing.T) {
		st := newStore(t)
		a := NewUser("a@x.com", "A", 0)
		b := NewUser("b@x.com", "B", 0)
		require.Equal(t, -1, idx.Compare(idx.ID(a.ID), idx.ID(b.ID)))
		require.NoError(t, st.Users().CreateUser(ctx, b))
		require.NoError(t, st.Users().CreateUser(ctx, a))

		got, err := st.Users().SearchUsers(ctx, store.UserQuery{})
		require.NoError(t, err)
		require.Equal(t, []string{b.ID, a.ID}, userIDs(got))
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := users.SearchUsers(ctx, store.UserQuery{Text: "zzz"})
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func seedPair(t *testing.T, st store.Store) (domain.User, domain.User) {
	t.Helper()
	ctx := context.Background()
	alice := NewUser("alice@x.com", "Alice Rossi", 0)
	bob := NewUser("bob@x.com", "Bob Bianchi", time.Second)
	require.NoError(t, st.Users().CreateUser(ctx, alice))
	require.NoError(t, st.Users().CreateUser(ctx, bob))
	return alice, bob
}

func testInvites(t *testing.T, newStore Factory) {
	ctx := context.Background()
	st := newStore(t)
	invites := st.Invites()
	alice, bob := seedPair(t, st)

	first := NewInvite(alice.ID, bob.ID, time.Minute)
	require.NoError(t, invites.CreateInvite(ctx, first))

	t.Run("get round trips", func(t *testing.T) {
		got, err := invites.GetInviteByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, first, got)
	})

	t.Run("missing invite", func(t *testing.T) {
		_, err := invites.GetInviteByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = invites.ResolveInvite(ctx, idx.New().String(), domain.InviteStatusAccepted, base)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("pending pair is unique", func(t *testing.T) {
		has, err := invites.HasPendingInvite(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.True(t, has)

		has, err = invites.HasPendingInvite(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		require.False(t, has, "direction matters")

		dup := NewInvite(alice.ID, bob.ID, 2*time.Minute)
		require.ErrorIs(t, invites.CreateInvite(ctx, dup), store.ErrAlreadyExists)
	})

	reverse := NewInvite(bob.ID, alice.ID, 3*time.Minute)
	require.NoError(t, invites.CreateInvite(ctx, reverse))

	t.Run("lists by direction", func(t *testing.T) {
		in, err := invites.ListIncoming(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, []string{first.ID}, inviteIDs(in))

		out, err := invites.ListOutgoing(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, []string{reverse.ID}, inviteIDs(out))
	})

	t.Run("resolve is a one shot transition", func(t *testing.T) {
		at := base.Add(time.Hour)
		got, err := invites.ResolveInvite(ctx, first.ID, domain.InviteStatusAccepted, at)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusAccepted, got.Status)
		require.NotNil(t, got.RespondedAt)
		require.Equal(t, at, *got.RespondedAt)

		_, err = invites.ResolveInvite(ctx, first.ID, domain.InviteStatusDeclined, at)
		require.ErrorIs(t, err, store.ErrConflict)

		stored, err := invites.GetInviteByID(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusAccepted, stored.Status)
	})

	t.Run("resolved pair can be invited again", func(t *testing.T) {
		again := NewInvite(alice.ID, bob.ID, 4*time.Minute)
		require.NoError(t, invites.CreateInvite(ctx, again))

		in, err := invites.ListIncoming(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, []string{again.ID, first.ID}, inviteIDs(in))
	})

	t.Run("empty lists", func(t *testing.T) {
		in, err := invites.ListIncoming(ctx, idx.New().String())
		require.NoError(t, err)
		require.Empty(t, in)
	})
}

func testTransactions(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("commit persists", func(t *testing.T) {
		st := newStore(t)
		u := NewUser("tx@x.com", "Tx User", 0)

		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, u)
		})
		require.NoError(t, err)

		_, err = st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
	})

	t.Run("error rolls back", func(t *testing.T) {
		st := newStore(t)
		u := NewUser("rollback@x.com", "Rollback User", 0)
		boom := errors.New("boom")

		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, u); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = st.Users().GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, newStore(t).Ping(ctx))
	})
}

func testConcurrentResolve(t *testing.T, newStore Factory) {
	ctx := context.Background()
	st := newStore(t)
	alice, bob := seedPair(t, st)

	inv := NewInvite(alice.ID, bob.ID, time.Minute)
	require.NoError(t, st.Invites().CreateInvite(ctx, inv))

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := domain.InviteStatusAccepted
			if i%2 == 1 {
				status = domain.InviteStatusDeclined
			}
			_, err := st.Invites().ResolveInvite(ctx, inv.ID, status, base.Add(time.Hour))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, store.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, workers-1, conflicts)
}
