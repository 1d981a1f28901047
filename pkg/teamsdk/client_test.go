package teamsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orthonext/team/pkg/teamsdk"
	"github.com/stretchr/testify/require"
)

func TestSessionSendsIdentityHeader(t *testing.T) {
	var gotUser, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.Header.Get(teamsdk.UserIDHeader)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(teamsdk.UserListResponse{
			Users: []teamsdk.User{{ID: "u1", FullName: "Alice Rossi"}},
		})
	}))
	defer srv.Close()

	client := teamsdk.NewSDKClient(srv.URL + "/")
	users, err := client.AsUser("01HZY0000000000000000000AA").Search(context.Background(), "spalla", 5)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "Alice Rossi", users[0].FullName)
	require.Equal(t, "01HZY0000000000000000000AA", gotUser)
	require.Equal(t, "limit=5&q=spalla", gotQuery)
}

func TestPublicCallsOmitIdentityHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get(teamsdk.UserIDHeader))
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	body, err := teamsdk.NewSDKClient(srv.URL).Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", body)
}

func TestAPIErrorDecoding(t *testing.T) {
	cases := []struct {
		status int
		is     func(error) bool
	}{
		{http.StatusBadRequest, teamsdk.IsBadRequest},
		{http.StatusUnauthorized, teamsdk.IsUnauthorized},
		{http.StatusForbidden, teamsdk.IsForbidden},
		{http.StatusNotFound, teamsdk.IsNotFound},
		{http.StatusConflict, teamsdk.IsConflict},
		{http.StatusUnprocessableEntity, teamsdk.IsUnprocessable},
		{http.StatusTooManyRequests, teamsdk.IsRateLimited},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(teamsdk.ErrorResponse{
					Error: "some_code", ErrorDescription: "details",
				})
			}))
			defer srv.Close()

			_, err := teamsdk.NewSDKClient(srv.URL).AsUser("u1").Me(context.Background())
			require.Error(t, err)
			require.True(t, tc.is(err))

			var apiErr *teamsdk.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.status, apiErr.StatusCode)
			require.Equal(t, "some_code", apiErr.Code)
			require.Equal(t, "details", apiErr.Description)
		})
	}
}

func TestAPIErrorFallsBackOnNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := teamsdk.NewSDKClient(srv.URL).GetLiveness(context.Background())
	var apiErr *teamsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "server_error", apiErr.Code)
	require.False(t, teamsdk.IsNotFound(err))
}

func TestRegisterExpectsCreated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req teamsdk.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(teamsdk.User{ID: "u1", Email: req.Email})
	}))
	defer srv.Close()

	u, err := teamsdk.NewSDKClient(srv.URL).Register(context.Background(), teamsdk.RegisterRequest{
		Email: "alice@example.com", FullName: "Alice", Password: "pw",
	})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", u.Email)
}
