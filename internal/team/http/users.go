package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/pkg/httpx"
	"github.com/orthonext/team/pkg/teamsdk"
)

type UsersHandler struct {
	DirectoryService *service.DirectoryService
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Create an account with the default profile. Emails are unique ignoring case.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		teamsdk.RegisterRequest	true	"email, full_name, password"
//	@Success		201		{object}	teamsdk.User
//	@Failure		400		{object}	teamsdk.ErrorResponse	"missing fields or malformed body"
//	@Failure		409		{object}	teamsdk.ErrorResponse	"email already registered"
//	@Failure		429		{object}	teamsdk.ErrorResponse
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req teamsdk.RegisterRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeBadRequest(w, "email is required")
		return
	}
	if req.Password == "" {
		writeBadRequest(w, "password is required")
		return
	}

	u, err := h.DirectoryService.Register(r.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "failed to register user")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUser(u))
}

// HandleLogin godoc
//
//	@Summary		Login
//	@Description	Verify an email and password and return the user. Identity for later calls is asserted by the gateway.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		teamsdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	teamsdk.User
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		401		{object}	teamsdk.ErrorResponse	"invalid email or password"
//	@Failure		429		{object}	teamsdk.ErrorResponse
//	@Router			/v1/login [post].
func (h *UsersHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req teamsdk.LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	u, err := h.DirectoryService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err, "failed to authenticate")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleSearch godoc
//
//	@Summary		Search Directory
//	@Description	Case-insensitive substring search over name, sub-specialties, region, city and hospitals. Most recent first.
//	@Tags			Users
//	@Produce		json
//	@Security		UserID
//	@Param			q		query		string	false	"search text; empty returns everyone"
//	@Param			limit	query		int		false	"maximum results"
//	@Success		200		{object}	teamsdk.UserListResponse
//	@Failure		400		{object}	teamsdk.ErrorResponse
//	@Failure		401		{object}	teamsdk.ErrorResponse
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := service.SearchQuery{Text: r.URL.Query().Get("q")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeBadRequest(w, "limit must be a non-negative integer")
			return
		}
		q.Limit = limit
	}

	users, err := h.DirectoryService.Search(r.Context(), q)
	if err != nil {
		writeServiceError(w, r, err, "failed to search users")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, teamsdk.UserListResponse{Users: toUsers(users)})
}

// HandleGet godoc
//
//	@Summary		Get User
//	@Tags			Users
//	@Produce		json
//	@Security		UserID
//	@Param			id	path		string	true	"user id"
//	@Success		200	{object}	teamsdk.User
//	@Failure		401	{object}	teamsdk.ErrorResponse
//	@Failure		404	{object}	teamsdk.ErrorResponse
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	u, err := h.DirectoryService.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to fetch user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleMe godoc
//
//	@Summary		Current User
//	@Tags			Users
//	@Produce		json
//	@Security		UserID
//	@Success		200	{object}	teamsdk.User
//	@Failure		401	{object}	teamsdk.ErrorResponse
//	@Failure		404	{object}	teamsdk.ErrorResponse	"identity does not resolve to a user"
//	@Router			/v1/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	u, err := h.DirectoryService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to fetch user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

// HandleUpdateProfile godoc
//
//	@Summary		Update Profile
//	@Description	Partial update of the caller's profile. Omitted fields are unchanged; unknown fields are rejected.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		UserID
//	@Param			request	body		teamsdk.ProfileUpdateRequest	true	"fields to change"
//	@Success		200		{object}	teamsdk.User
//	@Failure		400		{object}	teamsdk.ErrorResponse	"malformed body or unknown field"
//	@Failure		401		{object}	teamsdk.ErrorResponse
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Router			/v1/me/profile [patch].
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req teamsdk.ProfileUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, "invalid profile update: "+err.Error())
		return
	}

	u, err := h.DirectoryService.UpdateProfile(r.Context(), userID, toProfileUpdate(req))
	if err != nil {
		writeServiceError(w, r, err, "failed to update profile")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}
