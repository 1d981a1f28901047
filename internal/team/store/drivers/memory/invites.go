package memory

import (
	"context"
	"slices"
	"time"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
)

type invitesRepo struct {
	db access
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	return r.db.write(func(st *state) error {
		if _, ok := st.invites[inv.ID]; ok {
			return store.ErrAlreadyExists
		}
		if inv.IsPending() && hasPending(st, inv.FromUser, inv.ToUser) {
			return store.ErrAlreadyExists
		}
		st.invites[inv.ID] = inv
		return nil
	})
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	var out domain.Invite
	err := r.db.read(func(st *state) error {
		inv, ok := st.invites[id]
		if !ok {
			return store.ErrNotFound
		}
		out = inv
		return nil
	})
	return out, err
}

func (r *invitesRepo) HasPendingInvite(ctx context.Context, from, to string) (bool, error) {
	var found bool
	err := r.db.read(func(st *state) error {
		found = hasPending(st, from, to)
		return nil
	})
	return found, err
}

func hasPending(st *state, from, to string) bool {
	for _, inv := range st.invites {
		if inv.FromUser == from && inv.ToUser == to && inv.IsPending() {
			return true
		}
	}
	return false
}

func (r *invitesRepo) ResolveInvite(
	ctx context.Context,
	id string,
	status domain.InviteStatus,
	at time.Time,
) (domain.Invite, error) {
	var out domain.Invite
	err := r.db.write(func(st *state) error {
		inv, ok := st.invites[id]
		if !ok {
			return store.ErrNotFound
		}
		if !inv.IsPending() {
			return store.ErrConflict
		}
		inv.Status = status
		inv.RespondedAt = &at
		st.invites[id] = inv
		out = inv
		return nil
	})
	return out, err
}

func (r *invitesRepo) ListIncoming(ctx context.Context, userID string) ([]domain.Invite, error) {
	return r.list(func(inv domain.Invite) bool { return inv.ToUser == userID })
}

func (r *invitesRepo) ListOutgoing(ctx context.Context, userID string) ([]domain.Invite, error) {
	return r.list(func(inv domain.Invite) bool { return inv.FromUser == userID })
}

func (r *invitesRepo) list(keep func(domain.Invite) bool) ([]domain.Invite, error) {
	var out []domain.Invite
	err := r.db.read(func(st *state) error {
		for _, inv := range st.invites {
			if keep(inv) {
				out = append(out, inv)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b domain.Invite) int {
		switch {
		case a.NewerThan(b):
			return -1
		case b.NewerThan(a):
			return 1
		default:
			return 0
		}
	})
	return out, nil
}
