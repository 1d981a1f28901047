package memory_test

import (
	"context"
	"testing"

	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/internal/team/store/drivers/memory"
	"github.com/orthonext/team/internal/team/store/storetest"
	"github.com/stretchr/testify/require"
)

func TestConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		st := memory.NewStore()
		t.Cleanup(func() { _ = st.Close() })
		return st
	})
}

func TestClosedStoreRejectsAccess(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	require.NoError(t, st.Close())

	require.Error(t, st.Ping(ctx))
	_, err := st.Users().GetUserByID(ctx, "x")
	require.Error(t, err)
	_, err = st.Tx(ctx)
	require.Error(t, err)
}

func TestNestedTxRejected(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	err := st.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err)

	// The outer lock must have been released.
	require.NoError(t, st.Ping(ctx))
}

func TestRollbackAfterCommitIsNoop(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()

	tx, err := st.Tx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.NoError(t, tx.Rollback())
	require.Error(t, tx.Commit())
}
