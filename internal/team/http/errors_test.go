package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orthonext/team/internal/team/domain"
	teamhttp "github.com/orthonext/team/internal/team/http"
	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/internal/team/store"
	"github.com/orthonext/team/internal/team/store/drivers/memory"
	"github.com/orthonext/team/pkg/httpx"
	"github.com/orthonext/team/pkg/idx"
	"github.com/stretchr/testify/require"
)

var errDiskOnFire = errors.New("disk on fire")

type brokenUsers struct{ store.Users }

func (brokenUsers) SearchUsers(context.Context, store.UserQuery) ([]domain.User, error) {
	return nil, errDiskOnFire
}

type brokenStore struct{ store.Store }

func (s brokenStore) Users() store.Users { return brokenUsers{s.Store.Users()} }

func TestUnexpectedErrorIsLoggedUnderErrorKey(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	st := brokenStore{memory.NewStore()}
	router := teamhttp.NewRouter("test", st, logger)
	router.DirectoryService = service.NewDirectoryService(st, nil)
	router.InviteService = service.NewInviteService(st)
	router.ApplyRoutes()

	req := httptest.NewRequest(http.MethodGet, "/v1/users?q=rossi", nil)
	req.Header.Set(httpx.UserIDHeader, idx.New().String())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), errDiskOnFire.Error(), "internal detail leaked to client")

	var found bool
	sc := bufio.NewScanner(&logs)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		if line["msg"] != "failed to search users" {
			continue
		}
		found = true
		require.Equal(t, errDiskOnFire.Error(), line["error"])
		require.NotContains(t, line, "err")
	}
	require.True(t, found, "expected a log line for the failed search:\n%s", logs.String())
}
