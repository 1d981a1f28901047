package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/orthonext/team/internal/team/store"
)

var errNestedTx = errors.New("postgres: nested transactions are not supported")

// txStore keeps the context the transaction was started with, since the
// store.Tx Commit and Rollback methods take none.
type txStore struct {
	ctx context.Context
	tx  pgx.Tx
	q   *queries
}

func newTx(ctx context.Context, tx pgx.Tx) *txStore {
	return &txStore{
		ctx: context.WithoutCancel(ctx),
		tx:  tx,
		q:   newQueries(tx),
	}
}

func (t *txStore) Commit() error { return t.tx.Commit(t.ctx) }

func (t *txStore) Rollback() error {
	if err := t.tx.Rollback(t.ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func (t *txStore) Users() store.Users     { return &usersRepo{q: t.q} }
func (t *txStore) Invites() store.Invites { return &invitesRepo{q: t.q} }

func (t *txStore) ApplyMigrations() error { return nil }
