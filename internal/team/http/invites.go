package http

import (
	"net/http"

	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/internal/team/service"
	"github.com/orthonext/team/pkg/httpx"
	"github.com/orthonext/team/pkg/teamsdk"
)

type InvitesHandler struct {
	InviteService *service.InviteService
}

// HandleSend godoc
//
//	@Summary		Send Invite
//	@Description	Invite another user to form a team. At most one pending invite may exist per sender and recipient.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Security		UserID
//	@Param			request	body		teamsdk.SendInviteRequest	true	"to_user"
//	@Success		201		{object}	teamsdk.Invite
//	@Failure		400		{object}	teamsdk.ErrorResponse	"self invite or malformed body"
//	@Failure		401		{object}	teamsdk.ErrorResponse
//	@Failure		409		{object}	teamsdk.ErrorResponse	"pending invite already exists"
//	@Failure		422		{object}	teamsdk.ErrorResponse	"unknown user"
//	@Router			/v1/invites [post].
func (h *InvitesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req teamsdk.SendInviteRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if req.ToUser == "" {
		writeBadRequest(w, "to_user is required")
		return
	}

	inv, err := h.InviteService.SendInvite(r.Context(), userID, req.ToUser)
	if err != nil {
		writeServiceError(w, r, err, "failed to send invite")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvite(inv))
}

// HandleRespond godoc
//
//	@Summary		Respond To Invite
//	@Description	Accept or decline a pending invite. Only the recipient may respond, and only once.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Security		UserID
//	@Param			id		path		string					true	"invite id"
//	@Param			request	body		teamsdk.RespondRequest	true	"decision: accepted or declined"
//	@Success		200		{object}	teamsdk.Invite
//	@Failure		400		{object}	teamsdk.ErrorResponse	"invalid decision"
//	@Failure		401		{object}	teamsdk.ErrorResponse
//	@Failure		403		{object}	teamsdk.ErrorResponse	"caller is not the recipient"
//	@Failure		404		{object}	teamsdk.ErrorResponse
//	@Failure		409		{object}	teamsdk.ErrorResponse	"already resolved"
//	@Router			/v1/invites/{id}/respond [post].
func (h *InvitesHandler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req teamsdk.RespondRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	inv, err := h.InviteService.Respond(r.Context(), r.PathValue("id"), userID, domain.InviteStatus(req.Decision))
	if err != nil {
		writeServiceError(w, r, err, "failed to respond to invite")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvite(inv))
}

// HandleIncoming godoc
//
//	@Summary		Incoming Invites
//	@Tags			Invites
//	@Produce		json
//	@Security		UserID
//	@Success		200	{object}	teamsdk.InviteListResponse	"most recent first"
//	@Failure		401	{object}	teamsdk.ErrorResponse
//	@Router			/v1/invites/incoming [get].
func (h *InvitesHandler) HandleIncoming(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	invites, err := h.InviteService.ListIncoming(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list invites")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.InviteListResponse{Invites: toInvites(invites)})
}

// HandleOutgoing godoc
//
//	@Summary		Outgoing Invites
//	@Tags			Invites
//	@Produce		json
//	@Security		UserID
//	@Success		200	{object}	teamsdk.InviteListResponse	"most recent first"
//	@Failure		401	{object}	teamsdk.ErrorResponse
//	@Router			/v1/invites/outgoing [get].
func (h *InvitesHandler) HandleOutgoing(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	invites, err := h.InviteService.ListOutgoing(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list invites")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.InviteListResponse{Invites: toInvites(invites)})
}

// HandleInbox godoc
//
//	@Summary		Inbox
//	@Description	Incoming and outgoing invites with the other party's name.
//	@Tags			Invites
//	@Produce		json
//	@Security		UserID
//	@Success		200	{object}	teamsdk.InboxResponse
//	@Failure		401	{object}	teamsdk.ErrorResponse
//	@Router			/v1/inbox [get].
func (h *InvitesHandler) HandleInbox(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	inbox, err := h.InviteService.Inbox(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to load inbox")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, teamsdk.InboxResponse{
		Incoming: toInboxEntries(inbox.Incoming),
		Outgoing: toInboxEntries(inbox.Outgoing),
	})
}
