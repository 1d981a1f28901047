package store

import (
	"context"
	"errors"
	"time"

	"github.com/orthonext/team/internal/team/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a compare-and-set that found the row in an
	// unexpected state.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers (memory, sqlite,
// postgres) implement this. Sub-repositories obtained from a Tx run inside
// that transaction; those obtained from the Store run on their own.
type Store interface {
	Users() Users
	Invites() Invites

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. fn must only touch the store through tx.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
// Rollback after Commit is a no-op.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// UserQuery filters and bounds a directory search.
type UserQuery struct {
	// Text is matched case-insensitively against the concatenation of full
	// name, sub-specialties, region, city and hospitals. Empty matches all.
	Text string
	// Limit caps the number of results; zero or negative means unlimited.
	Limit int
}

type Users interface {
	// CreateUser inserts u. Returns ErrAlreadyExists when u.Email (already
	// normalised) is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up a normalised email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateProfile merges p into the stored user, sets updated_at and
	// returns the result.
	UpdateProfile(ctx context.Context, id string, p domain.ProfileUpdate, updatedAt time.Time) (domain.User, error)

	// SearchUsers returns matches newest first (created_at desc, id desc).
	SearchUsers(ctx context.Context, q UserQuery) ([]domain.User, error)
}

type Invites interface {
	// CreateInvite inserts inv. Returns ErrAlreadyExists when a pending
	// invite already exists for the same ordered pair.
	CreateInvite(ctx context.Context, inv domain.Invite) error

	GetInviteByID(ctx context.Context, id string) (domain.Invite, error)

	// HasPendingInvite reports whether from has a pending invite to to.
	HasPendingInvite(ctx context.Context, from, to string) (bool, error)

	// ResolveInvite atomically moves a pending invite to status. Returns
	// ErrNotFound for unknown ids and ErrConflict when the invite is no
	// longer pending.
	ResolveInvite(ctx context.Context, id string, status domain.InviteStatus, at time.Time) (domain.Invite, error)

	// ListIncoming returns invites addressed to userID, newest first.
	ListIncoming(ctx context.Context, userID string) ([]domain.Invite, error)

	// ListOutgoing returns invites sent by userID, newest first.
	ListOutgoing(ctx context.Context, userID string) ([]domain.Invite, error)
}
