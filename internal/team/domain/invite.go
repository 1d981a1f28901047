package domain

import "time"

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// IsDecision reports whether s is a terminal status a recipient may choose.
func (s InviteStatus) IsDecision() bool {
	return s == InviteStatusAccepted || s == InviteStatusDeclined
}

func (s InviteStatus) Valid() bool {
	return s == InviteStatusPending || s.IsDecision()
}

// Invite is a directed request from FromUser to ToUser to form a team.
type Invite struct {
	ID          string
	FromUser    string
	ToUser      string
	Status      InviteStatus
	CreatedAt   time.Time
	RespondedAt *time.Time // set once the recipient resolves the invite
}

func (i Invite) IsPending() bool { return i.Status == InviteStatusPending }

// NewerThan orders invites most recent first, with the ID as tiebreak.
func (i Invite) NewerThan(o Invite) bool {
	if !i.CreatedAt.Equal(o.CreatedAt) {
		return i.CreatedAt.After(o.CreatedAt)
	}
	return i.ID > o.ID
}

// InboxEntry is an invite joined with the display name of the other party.
type InboxEntry struct {
	Invite
	CounterpartName string
}

// Inbox groups a user's invites by direction, each most recent first.
type Inbox struct {
	Incoming []InboxEntry
	Outgoing []InboxEntry
}

// UnknownCounterpart is shown in place of a user that no longer resolves.
const UnknownCounterpart = "(utente)"
