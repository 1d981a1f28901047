// Package memory is an in-process store. Data lives as long as the process
// and is lost on restart.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/store"
)

var errClosed = errors.New("memory: store closed")

type state struct {
	users   map[string]domain.User
	emails  map[string]string // normalised email -> user id
	invites map[string]domain.Invite
}

func newState() *state {
	return &state{
		users:   make(map[string]domain.User),
		emails:  make(map[string]string),
		invites: make(map[string]domain.Invite),
	}
}

func (s *state) clone() *state {
	return &state{
		users:   maps.Clone(s.users),
		emails:  maps.Clone(s.emails),
		invites: maps.Clone(s.invites),
	}
}

// access runs repository bodies either under the store lock or, inside a
// transaction, directly against the transaction's private state.
type access interface {
	read(fn func(st *state) error) error
	write(fn func(st *state) error) error
}

type Store struct {
	mu     sync.RWMutex
	st     *state
	closed bool
}

func NewStore() *Store {
	return &Store{st: newState()}
}

func (s *Store) read(fn func(st *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errClosed
	}
	return fn(s.st)
}

func (s *Store) write(fn func(st *state) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errClosed
	}
	return fn(s.st)
}

func (s *Store) Users() store.Users     { return &usersRepo{db: s} }
func (s *Store) Invites() store.Invites { return &invitesRepo{db: s} }

// ApplyMigrations is a no-op; there is no schema.
func (s *Store) ApplyMigrations() error { return nil }

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.read(func(*state) error { return nil })
}

// Tx takes the write lock for the lifetime of the transaction and works on a
// copy of the data that replaces the live state on Commit.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, errClosed
	}
	return &txStore{parent: s, st: s.st.clone()}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

type txStore struct {
	parent *Store
	st     *state
	done   bool
}

func (t *txStore) read(fn func(st *state) error) error {
	if t.done {
		return errTxDone
	}
	return fn(t.st)
}

func (t *txStore) write(fn func(st *state) error) error { return t.read(fn) }

var errTxDone = errors.New("memory: transaction already finished")

func (t *txStore) Commit() error {
	if t.done {
		return errTxDone
	}
	t.parent.st = t.st
	t.done = true
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.parent.mu.Unlock()
	return nil
}

func (t *txStore) Users() store.Users     { return &usersRepo{db: t} }
func (t *txStore) Invites() store.Invites { return &invitesRepo{db: t} }

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

var errNestedTx = errors.New("memory: nested transactions are not supported")
