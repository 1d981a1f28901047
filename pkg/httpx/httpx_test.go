package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orthonext/team/pkg/httpx"
	"github.com/orthonext/team/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), mw("first"), mw("second"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

func TestIdentityMiddleware(t *testing.T) {
	var got string
	h := httpx.IdentityMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = httpx.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var body httpx.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, httpx.ErrorCodeUnauthorized, body.Error)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(httpx.UserIDHeader, "42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid header", func(t *testing.T) {
		id := idx.New().String()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(httpx.UserIDHeader, id)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, id, got)
	})
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("accepts known fields", func(t *testing.T) {
		var p payload
		require.NoError(t, httpx.DecodeJSON(strings.NewReader(`{"name":"alice"}`), &p))
		require.Equal(t, "alice", p.Name)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		var p payload
		require.Error(t, httpx.DecodeJSON(strings.NewReader(`{"name":"alice","role":"admin"}`), &p))
	})

	t.Run("rejects trailing values", func(t *testing.T) {
		var p payload
		err := httpx.DecodeJSON(strings.NewReader(`{"name":"a"}{"name":"b"}`), &p)
		require.ErrorIs(t, err, httpx.ErrTrailingData)
	})
}

func TestWriteJSONSetsHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteJSON(rec, http.StatusCreated, map[string]string{"ok": "yes"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
