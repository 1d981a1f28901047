package teamsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Session performs requests on behalf of a single user. It holds no mutable
// state and is safe for concurrent use.
type Session struct {
	client *SDKClient
	userID string
}

func (s *Session) UserID() string { return s.userID }

func (s *Session) Me(ctx context.Context) (*User, error) {
	return call[User](ctx, s.client, http.MethodGet, "/v1/me", nil, s.userID, http.StatusOK)
}

func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	return call[User](ctx, s.client, http.MethodGet, "/v1/users/"+url.PathEscape(id), nil, s.userID, http.StatusOK)
}

// Search lists users matching q, most recent first. limit <= 0 means no
// limit.
func (s *Session) Search(ctx context.Context, q string, limit int) ([]User, error) {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	path := "/v1/users"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := call[UserListResponse](ctx, s.client, http.MethodGet, path, nil, s.userID, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*User, error) {
	return call[User](ctx, s.client, http.MethodPatch, "/v1/me/profile", req, s.userID, http.StatusOK)
}

func (s *Session) SendInvite(ctx context.Context, toUser string) (*Invite, error) {
	return call[Invite](ctx, s.client, http.MethodPost, "/v1/invites", SendInviteRequest{ToUser: toUser}, s.userID, http.StatusCreated)
}

func (s *Session) Respond(ctx context.Context, inviteID, decision string) (*Invite, error) {
	path := "/v1/invites/" + url.PathEscape(inviteID) + "/respond"
	return call[Invite](ctx, s.client, http.MethodPost, path, RespondRequest{Decision: decision}, s.userID, http.StatusOK)
}

func (s *Session) Accept(ctx context.Context, inviteID string) (*Invite, error) {
	return s.Respond(ctx, inviteID, StatusAccepted)
}

func (s *Session) Decline(ctx context.Context, inviteID string) (*Invite, error) {
	return s.Respond(ctx, inviteID, StatusDeclined)
}

func (s *Session) ListIncoming(ctx context.Context) ([]Invite, error) {
	return s.listInvites(ctx, "/v1/invites/incoming")
}

func (s *Session) ListOutgoing(ctx context.Context) ([]Invite, error) {
	return s.listInvites(ctx, "/v1/invites/outgoing")
}

func (s *Session) listInvites(ctx context.Context, path string) ([]Invite, error) {
	resp, err := call[InviteListResponse](ctx, s.client, http.MethodGet, path, nil, s.userID, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return resp.Invites, nil
}

func (s *Session) Inbox(ctx context.Context) (*InboxResponse, error) {
	return call[InboxResponse](ctx, s.client, http.MethodGet, "/v1/inbox", nil, s.userID, http.StatusOK)
}
