package httpx

import (
	"net/http"
	"strings"

	"github.com/orthonext/team/pkg/idx"
	"github.com/orthonext/team/pkg/slogx"
)

// UserIDHeader is set by the upstream gateway once it has authenticated the
// caller. The service trusts it as-is and must not be exposed without that
// gateway in front.
const UserIDHeader = "X-User-ID"

// IdentityMiddleware requires a well-formed user id in UserIDHeader and
// injects it into the request context.
func IdentityMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "authentication required")
				return
			}

			id, err := idx.Parse(raw)
			if err != nil {
				slogx.FromContext(r.Context()).Warn("malformed identity header", "value", raw)
				WriteError(w, http.StatusUnauthorized, ErrorCodeUnauthorized, "malformed user identity")
				return
			}

			ctx := ContextWithUserID(r.Context(), id.String())
			ctx = slogx.With(ctx, "user_id", id.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
