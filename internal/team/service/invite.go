package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/pkg/idx"
	"github.com/orthonext/team/pkg/slogx"
)

// InviteService is the invite ledger: directed team invites and their
// pending -> accepted/declined transitions.
type InviteService struct {
	Store store.Store

	Now func() time.Time
	IDs *idx.Generator
}

func NewInviteService(st store.Store) *InviteService {
	return &InviteService{Store: st}
}

// SendInvite records a pending invite from one user to another.
func (s *InviteService) SendInvite(ctx context.Context, from, to string) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	if from == to {
		return domain.Invite{}, ErrSelfInvite
	}

	now := stamp(s.Now)
	inv := domain.Invite{
		ID:        newID(s.IDs, now),
		FromUser:  from,
		ToUser:    to,
		Status:    domain.InviteStatusPending,
		CreatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, id := range []string{from, to} {
			if _, err := tx.Users().GetUserByID(ctx, id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrUnknownUser
				}
				return err
			}
		}

		pending, err := tx.Invites().HasPendingInvite(ctx, from, to)
		if err != nil {
			return err
		}
		if pending {
			return ErrDuplicateInvite
		}

		if err := tx.Invites().CreateInvite(ctx, inv); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateInvite
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrUnknownUser) || errors.Is(err, ErrDuplicateInvite) {
			log.Info("invite rejected",
				slog.String("from_user", from),
				slog.String("to_user", to),
				slog.String("reason", err.Error()),
			)
			return domain.Invite{}, err
		}
		log.Error("failed to send invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	log.Info("invite sent",
		slog.String("invite_id", inv.ID),
		slog.String("from_user", from),
		slog.String("to_user", to),
	)
	return inv, nil
}

// Respond resolves a pending invite on behalf of its recipient.
func (s *InviteService) Respond(
	ctx context.Context,
	inviteID string,
	responder string,
	decision domain.InviteStatus,
) (domain.Invite, error) {
	log := slogx.FromContext(ctx)

	if !decision.IsDecision() {
		return domain.Invite{}, ErrInvalidDecision
	}

	inv, err := s.Store.Invites().GetInviteByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invite{}, ErrNotFound
		}
		return domain.Invite{}, err
	}

	if inv.ToUser != responder {
		log.Warn("invite response by non-recipient",
			slog.String("invite_id", inviteID),
			slog.String("responder", responder),
		)
		return domain.Invite{}, ErrForbidden
	}
	if !inv.IsPending() {
		return domain.Invite{}, ErrAlreadyResolved
	}

	// The store only updates rows that are still pending, so a concurrent
	// responder that got here first surfaces as ErrConflict.
	updated, err := s.Store.Invites().ResolveInvite(ctx, inviteID, decision, stamp(s.Now))
	switch {
	case errors.Is(err, store.ErrConflict):
		return domain.Invite{}, ErrAlreadyResolved
	case errors.Is(err, store.ErrNotFound):
		return domain.Invite{}, ErrNotFound
	case err != nil:
		log.Error("failed to resolve invite", slog.Any("error", err))
		return domain.Invite{}, err
	}

	log.Info("invite resolved",
		slog.String("invite_id", inviteID),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

// ListIncoming returns invites addressed to userID, most recent first.
func (s *InviteService) ListIncoming(ctx context.Context, userID string) ([]domain.Invite, error) {
	return s.Store.Invites().ListIncoming(ctx, userID)
}

// ListOutgoing returns invites sent by userID, most recent first.
func (s *InviteService) ListOutgoing(ctx context.Context, userID string) ([]domain.Invite, error) {
	return s.Store.Invites().ListOutgoing(ctx, userID)
}

// Inbox returns both directions with the other party's name attached.
func (s *InviteService) Inbox(ctx context.Context, userID string) (domain.Inbox, error) {
	incoming, err := s.ListIncoming(ctx, userID)
	if err != nil {
		return domain.Inbox{}, err
	}
	outgoing, err := s.ListOutgoing(ctx, userID)
	if err != nil {
		return domain.Inbox{}, err
	}

	names := map[string]string{}
	name := func(id string) (string, error) {
		if n, ok := names[id]; ok {
			return n, nil
		}
		u, err := s.Store.Users().GetUserByID(ctx, id)
		switch {
		case errors.Is(err, store.ErrNotFound):
			names[id] = domain.UnknownCounterpart
		case err != nil:
			return "", err
		default:
			names[id] = u.FullName
		}
		return names[id], nil
	}

	inbox := domain.Inbox{
		Incoming: make([]domain.InboxEntry, 0, len(incoming)),
		Outgoing: make([]domain.InboxEntry, 0, len(outgoing)),
	}
	for _, inv := range incoming {
		n, err := name(inv.FromUser)
		if err != nil {
			return domain.Inbox{}, err
		}
		inbox.Incoming = append(inbox.Incoming, domain.InboxEntry{Invite: inv, CounterpartName: n})
	}
	for _, inv := range outgoing {
		n, err := name(inv.ToUser)
		if err != nil {
			return domain.Inbox{}, err
		}
		inbox.Outgoing = append(inbox.Outgoing, domain.InboxEntry{Invite: inv, CounterpartName: n})
	}
	return inbox, nil
}
