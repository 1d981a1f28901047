package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	teamhttp "github.com/orthonext/team/internal/team/http"
	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/internal/team/store/drivers/memory"
	"github.com/orthonext/team/pkg/cryptox"
	"github.com/orthonext/team/pkg/httpx"
	"github.com/orthonext/team/pkg/idx"
	"github.com/orthonext/team/pkg/teamsdk"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler   http.Handler
	store     *memory.Store
	directory *service.DirectoryService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st := memory.NewStore()
	t.Cleanup(func() { _ = st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	dir := service.NewDirectoryService(st, cryptox.NewArgon2id("test-pepper"))
	router := teamhttp.NewRouter("test", st, logger)
	router.DirectoryService = dir
	router.InviteService = service.NewInviteService(st)
	router.ApplyRoutes()

	return &testServer{handler: router, store: st, directory: dir}
}

// seed creates a user directly through the service, bypassing the strict
// registration limit.
func (s *testServer) seed(t *testing.T, email, name string) string {
	t.Helper()
	u, err := s.directory.CreateUser(context.Background(), service.NewUser{
		Email: email, FullName: name, PasswordHash: "x",
	})
	require.NoError(t, err)
	return u.ID
}

func (s *testServer) do(t *testing.T, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set(httpx.UserIDHeader, userID)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	require.Equal(t, code, decode[teamsdk.ErrorResponse](t, rec).Error)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/users", "", teamsdk.RegisterRequest{
		Email: " Alice@Example.com ", FullName: "Alice Rossi", Password: "correct horse",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	alice := decode[teamsdk.User](t, rec)
	require.Equal(t, "alice@example.com", alice.Email)
	require.Equal(t, "Ortopedia", alice.Specialty)
	require.NotContains(t, rec.Body.String(), "password")

	rec = s.do(t, http.MethodPost, "/v1/users", "", teamsdk.RegisterRequest{
		Email: "ALICE@example.com", FullName: "Other", Password: "pw",
	})
	requireError(t, rec, http.StatusConflict, httpx.ErrorCodeConflict)

	rec = s.do(t, http.MethodPost, "/v1/login", "", teamsdk.LoginRequest{
		Email: "alice@EXAMPLE.com", Password: "correct horse",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, alice.ID, decode[teamsdk.User](t, rec).ID)

	rec = s.do(t, http.MethodPost, "/v1/login", "", teamsdk.LoginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	requireError(t, rec, http.StatusUnauthorized, httpx.ErrorCodeUnauthorized)

	rec = s.do(t, http.MethodPost, "/v1/users", "", `{"email":"x@example.com"}`)
	requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)
}

func TestIdentityRequired(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/me", "", nil)
	requireError(t, rec, http.StatusUnauthorized, httpx.ErrorCodeUnauthorized)

	rec = s.do(t, http.MethodGet, "/v1/me", "not-a-ulid", nil)
	requireError(t, rec, http.StatusUnauthorized, httpx.ErrorCodeUnauthorized)

	// Well-formed but unknown identity.
	rec = s.do(t, http.MethodGet, "/v1/me", idx.New().String(), nil)
	requireError(t, rec, http.StatusNotFound, httpx.ErrorCodeNotFound)
}

func TestGetUserAndMe(t *testing.T) {
	s := newTestServer(t)
	alice := s.seed(t, "alice@example.com", "Alice Rossi")
	bob := s.seed(t, "bob@example.com", "Bob Bianchi")

	rec := s.do(t, http.MethodGet, "/v1/me", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Alice Rossi", decode[teamsdk.User](t, rec).FullName)

	rec = s.do(t, http.MethodGet, "/v1/users/"+bob, alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "bob@example.com", decode[teamsdk.User](t, rec).Email)

	rec = s.do(t, http.MethodGet, "/v1/users/"+idx.New().String(), alice, nil)
	requireError(t, rec, http.StatusNotFound, httpx.ErrorCodeNotFound)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestServer(t)
	alice := s.seed(t, "alice@example.com", "Alice Rossi")

	rec := s.do(t, http.MethodPatch, "/v1/me/profile", alice, `{"city":"Milano","sub_specialties":"Spalla"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	u := decode[teamsdk.User](t, rec)
	require.Equal(t, "Milano", u.City)
	require.Equal(t, "Spalla", u.SubSpecialties)
	require.Equal(t, "Italiano, English", u.Languages)

	rec = s.do(t, http.MethodPatch, "/v1/me/profile", alice, `{"region":"Lombardia"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	u = decode[teamsdk.User](t, rec)
	require.Equal(t, "Lombardia", u.Region)
	require.Equal(t, "Milano", u.City)

	t.Run("unknown field rejected", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, "/v1/me/profile", alice, `{"email":"evil@example.com"}`)
		requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)

		rec = s.do(t, http.MethodGet, "/v1/me", alice, nil)
		require.Equal(t, "alice@example.com", decode[teamsdk.User](t, rec).Email)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := s.do(t, http.MethodPatch, "/v1/me/profile", alice, `{"city":`)
		requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)
	})
}

func TestSearch(t *testing.T) {
	s := newTestServer(t)
	alice := s.seed(t, "alice@example.com", "Alice Rossi")
	s.seed(t, "bob@example.com", "Bob Bianchi")
	s.seed(t, "carla@example.com", "Carla Rossini")

	rec := s.do(t, http.MethodGet, "/v1/users?q=ROSS", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[teamsdk.UserListResponse](t, rec).Users
	require.Len(t, users, 2)
	require.Equal(t, "Carla Rossini", users[0].FullName)
	require.Equal(t, "Alice Rossi", users[1].FullName)

	rec = s.do(t, http.MethodGet, "/v1/users?limit=1", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[teamsdk.UserListResponse](t, rec).Users, 1)

	rec = s.do(t, http.MethodGet, "/v1/users?q=nobody", alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"users":[]}`, rec.Body.String())

	for _, bad := range []string{"abc", "-1"} {
		rec = s.do(t, http.MethodGet, "/v1/users?limit="+bad, alice, nil)
		requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)
	}
}

func TestInviteFlow(t *testing.T) {
	s := newTestServer(t)
	alice := s.seed(t, "alice@example.com", "Alice Rossi")
	bob := s.seed(t, "bob@example.com", "Bob Bianchi")

	rec := s.do(t, http.MethodGet, "/v1/invites/incoming", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"invites":[]}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/v1/invites", alice, teamsdk.SendInviteRequest{ToUser: bob})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	inv := decode[teamsdk.Invite](t, rec)
	require.Equal(t, teamsdk.StatusPending, inv.Status)
	require.Nil(t, inv.RespondedAt)

	rec = s.do(t, http.MethodPost, "/v1/invites", alice, teamsdk.SendInviteRequest{ToUser: bob})
	requireError(t, rec, http.StatusConflict, httpx.ErrorCodeConflict)

	rec = s.do(t, http.MethodGet, "/v1/invites/incoming", bob, nil)
	incoming := decode[teamsdk.InviteListResponse](t, rec).Invites
	require.Len(t, incoming, 1)
	require.Equal(t, inv.ID, incoming[0].ID)

	rec = s.do(t, http.MethodGet, "/v1/invites/outgoing", alice, nil)
	require.Len(t, decode[teamsdk.InviteListResponse](t, rec).Invites, 1)

	respond := "/v1/invites/" + inv.ID + "/respond"

	rec = s.do(t, http.MethodPost, respond, alice, teamsdk.RespondRequest{Decision: teamsdk.StatusAccepted})
	requireError(t, rec, http.StatusForbidden, httpx.ErrorCodeForbidden)

	rec = s.do(t, http.MethodPost, respond, bob, teamsdk.RespondRequest{Decision: "maybe"})
	requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)

	rec = s.do(t, http.MethodPost, respond, bob, teamsdk.RespondRequest{Decision: teamsdk.StatusAccepted})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	accepted := decode[teamsdk.Invite](t, rec)
	require.Equal(t, teamsdk.StatusAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)

	rec = s.do(t, http.MethodPost, respond, bob, teamsdk.RespondRequest{Decision: teamsdk.StatusDeclined})
	requireError(t, rec, http.StatusConflict, httpx.ErrorCodeConflict)

	rec = s.do(t, http.MethodPost, "/v1/invites/"+idx.New().String()+"/respond", bob,
		teamsdk.RespondRequest{Decision: teamsdk.StatusAccepted})
	requireError(t, rec, http.StatusNotFound, httpx.ErrorCodeNotFound)

	rec = s.do(t, http.MethodGet, "/v1/inbox", bob, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inbox := decode[teamsdk.InboxResponse](t, rec)
	require.Len(t, inbox.Incoming, 1)
	require.Equal(t, "Alice Rossi", inbox.Incoming[0].CounterpartName)
	require.Equal(t, teamsdk.StatusAccepted, inbox.Incoming[0].Status)
	require.NotNil(t, inbox.Outgoing)
	require.Empty(t, inbox.Outgoing)
}

func TestSendInviteErrors(t *testing.T) {
	s := newTestServer(t)
	alice := s.seed(t, "alice@example.com", "Alice Rossi")

	rec := s.do(t, http.MethodPost, "/v1/invites", alice, teamsdk.SendInviteRequest{ToUser: alice})
	requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)

	rec = s.do(t, http.MethodPost, "/v1/invites", alice, teamsdk.SendInviteRequest{ToUser: idx.New().String()})
	requireError(t, rec, http.StatusUnprocessableEntity, httpx.ErrorCodeUnprocessable)

	rec = s.do(t, http.MethodPost, "/v1/invites", alice, `{}`)
	requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)

	rec = s.do(t, http.MethodPost, "/v1/invites", alice, `{"to_user":"x","message":"hi"}`)
	requireError(t, rec, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest)
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", strings.TrimSpace(rec.Body.String()))

	rec = s.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	live := decode[teamsdk.HealthResponse](t, rec)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	rec = s.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", decode[teamsdk.HealthResponse](t, rec).Checks.Database)

	require.NoError(t, s.store.Close())
	rec = s.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "degraded", decode[teamsdk.HealthResponse](t, rec).Status)
}

func TestResponsesAreNotCached(t *testing.T) {
	s := newTestServer(t)
	alice := s.seed(t, "alice@example.com", "Alice Rossi")

	rec := s.do(t, http.MethodGet, "/v1/me", alice, nil)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
