package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/internal/team/store/drivers/memory"
	"github.com/orthonext/team/internal/team/store/drivers/sqlite"
	"github.com/orthonext/team/pkg/cryptox"
	"github.com/orthonext/team/pkg/idx"
	"github.com/stretchr/testify/require"
)

type services struct {
	store     store.Store
	directory *service.DirectoryService
	invites   *service.InviteService
}

// drivers lists every store the services are exercised against.
var drivers = map[string]func(t *testing.T) store.Store{
	"memory": func(t *testing.T) store.Store {
		st := memory.NewStore()
		t.Cleanup(func() { _ = st.Close() })
		return st
	},
	"sqlite": func(t *testing.T) store.Store {
		st, err := sqlite.NewStore(":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = st.Close() })
		require.NoError(t, st.ApplyMigrations())
		return st
	},
}

// forEachDriver runs fn once per store driver.
func forEachDriver(t *testing.T, fn func(t *testing.T, s services)) {
	for name, newStore := range drivers {
		t.Run(name, func(t *testing.T) {
			fn(t, newServices(t, newStore(t)))
		})
	}
}

func newServices(t *testing.T, st store.Store) services {
	t.Helper()

	now := steppingClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	ids := idx.NewGenerator()

	dir := service.NewDirectoryService(st, cryptox.NewArgon2id("test-pepper"))
	dir.Now, dir.IDs = now, ids

	inv := service.NewInviteService(st)
	inv.Now, inv.IDs = now, ids

	return services{store: st, directory: dir, invites: inv}
}

// steppingClock advances one millisecond per reading so creation order is
// observable in timestamps.
func steppingClock(start time.Time) func() time.Time {
	var (
		mu sync.Mutex
		t  = start
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Millisecond)
		return t
	}
}
