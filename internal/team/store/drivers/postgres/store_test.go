package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/internal/team/store/drivers/postgres"
	"github.com/orthonext/team/internal/team/store/storetest"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "team"
	pgPassword = "team"
	pgDatabase = "team"
)

// startPostgres runs a throwaway PostgreSQL container and returns its URL.
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		ExposedPorts: []string{"5432/tcp"},
		// lower() folds non-ASCII text only under a UTF-8 ctype.
		Env: map[string]string{
			"POSTGRES_USER":        pgUser,
			"POSTGRES_PASSWORD":    pgPassword,
			"POSTGRES_DB":          pgDatabase,
			"POSTGRES_INITDB_ARGS": "--encoding=UTF8 --locale=en_US.UTF-8",
		},
		// The server restarts once after initdb, so wait for the second line.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, host, port.Port(), pgDatabase)
}

func TestConformance(t *testing.T) {
	url := startPostgres(t)
	ctx := context.Background()

	// Every subtest gets a clean schema on the same server.
	storetest.Run(t, func(t *testing.T) store.Store {
		st, err := postgres.NewStore(ctx, url)
		require.NoError(t, err)
		require.NoError(t, st.ApplyMigrations())
		require.NoError(t, st.Reset(ctx))
		t.Cleanup(func() { _ = st.Close() })
		return st
	})
}

func TestMigrationsAreIdempotent(t *testing.T) {
	url := startPostgres(t)
	ctx := context.Background()

	st, err := postgres.NewStore(ctx, url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(ctx))
}
