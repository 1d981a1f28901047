package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
)

type invitesRepo struct {
	q *queries
}

func (r *invitesRepo) CreateInvite(ctx context.Context, inv domain.Invite) error {
	return mapUnique(r.q.createInvite(ctx, inv))
}

func (r *invitesRepo) GetInviteByID(ctx context.Context, id string) (domain.Invite, error) {
	inv, err := r.q.getInviteByID(ctx, id)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitesRepo) HasPendingInvite(ctx context.Context, from, to string) (bool, error) {
	return r.q.hasPendingInvite(ctx, from, to)
}

func (r *invitesRepo) ResolveInvite(
	ctx context.Context,
	id string,
	status domain.InviteStatus,
	at time.Time,
) (domain.Invite, error) {
	inv, err := r.q.resolveInvite(ctx, id, string(status), at)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Invite{}, err
	}

	if _, err := r.q.getInviteByID(ctx, id); err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return domain.Invite{}, store.ErrConflict
}

func (r *invitesRepo) ListIncoming(ctx context.Context, userID string) ([]domain.Invite, error) {
	return r.q.listInvitesTo(ctx, userID)
}

func (r *invitesRepo) ListOutgoing(ctx context.Context, userID string) ([]domain.Invite, error) {
	return r.q.listInvitesFrom(ctx, userID)
}
