package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/pkg/httpx"
	"github.com/orthonext/team/pkg/slogx"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

var serviceErrors = []errorMapping{
	{service.ErrNotFound, http.StatusNotFound, httpx.ErrorCodeNotFound},
	{service.ErrDuplicateEmail, http.StatusConflict, httpx.ErrorCodeConflict},
	{service.ErrDuplicateInvite, http.StatusConflict, httpx.ErrorCodeConflict},
	{service.ErrAlreadyResolved, http.StatusConflict, httpx.ErrorCodeConflict},
	{service.ErrSelfInvite, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest},
	{service.ErrInvalidDecision, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest},
	{service.ErrInvalidUser, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest},
	{service.ErrUnknownUser, http.StatusUnprocessableEntity, httpx.ErrorCodeUnprocessable},
	{service.ErrForbidden, http.StatusForbidden, httpx.ErrorCodeForbidden},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, httpx.ErrorCodeUnauthorized},
}

// writeServiceError maps a service error onto its HTTP status. Anything
// unrecognised is logged and reported as a 500 with desc.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, desc string) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			httpx.WriteError(w, m.status, m.code, m.err.Error())
			return
		}
	}

	slogx.FromContext(r.Context()).Error(desc, slog.Any("error", err))
	httpx.WriteError(w, http.StatusInternalServerError, httpx.ErrorCodeServerError, desc)
}

func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, desc)
}

// currentUser returns the caller id placed by httpx.IdentityMiddleware.
func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrorCodeUnauthorized, "authentication required")
	}
	return id, ok
}
