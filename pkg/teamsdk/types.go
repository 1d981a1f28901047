package teamsdk

import "time"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// User is a directory profile. The password hash is never exposed.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Specialty      string    `json:"specialty"`
	SubSpecialties string    `json:"sub_specialties"`
	Region         string    `json:"region"`
	City           string    `json:"city"`
	Hospitals      string    `json:"hospitals"`
	Languages      string    `json:"languages"`
	Bio            string    `json:"bio"`
	Availability   string    `json:"availability"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdateRequest is a partial update; omitted fields are unchanged.
// Any field not listed here is rejected by the server.
type ProfileUpdateRequest struct {
	Specialty      *string `json:"specialty,omitempty"`
	SubSpecialties *string `json:"sub_specialties,omitempty"`
	Region         *string `json:"region,omitempty"`
	City           *string `json:"city,omitempty"`
	Hospitals      *string `json:"hospitals,omitempty"`
	Languages      *string `json:"languages,omitempty"`
	Availability   *string `json:"availability,omitempty"`
	Bio            *string `json:"bio,omitempty"`
}

type UserListResponse struct {
	Users []User `json:"users"`
}

// Invite statuses.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

type Invite struct {
	ID          string     `json:"id"`
	FromUser    string     `json:"from_user"`
	ToUser      string     `json:"to_user"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

type SendInviteRequest struct {
	ToUser string `json:"to_user"`
}

type RespondRequest struct {
	// Decision is "accepted" or "declined".
	Decision string `json:"decision"`
}

type InviteListResponse struct {
	Invites []Invite `json:"invites"`
}

// InboxEntry is an invite with the other party's display name.
type InboxEntry struct {
	Invite
	CounterpartName string `json:"counterpart_name"`
}

type InboxResponse struct {
	Incoming []InboxEntry `json:"incoming"`
	Outgoing []InboxEntry `json:"outgoing"`
}

// HealthResponse is returned by /livez and /readyz; only readyz sets Checks.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
