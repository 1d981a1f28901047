package http

import (
	"github.com/orthonext/team/internal/team/domain"
	"github.com/orthonext/team/pkg/teamsdk"
)

func toUser(u domain.User) teamsdk.User {
	return teamsdk.User{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Specialty:      u.Specialty,
		SubSpecialties: u.SubSpecialties,
		Region:         u.Region,
		City:           u.City,
		Hospitals:      u.Hospitals,
		Languages:      u.Languages,
		Bio:            u.Bio,
		Availability:   u.Availability,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func toUsers(users []domain.User) []teamsdk.User {
	out := make([]teamsdk.User, 0, len(users))
	for _, u := range users {
		out = append(out, toUser(u))
	}
	return out
}

func toInvite(inv domain.Invite) teamsdk.Invite {
	return teamsdk.Invite{
		ID:          inv.ID,
		FromUser:    inv.FromUser,
		ToUser:      inv.ToUser,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
		RespondedAt: inv.RespondedAt,
	}
}

func toInvites(invites []domain.Invite) []teamsdk.Invite {
	out := make([]teamsdk.Invite, 0, len(invites))
	for _, inv := range invites {
		out = append(out, toInvite(inv))
	}
	return out
}

func toInboxEntries(entries []domain.InboxEntry) []teamsdk.InboxEntry {
	out := make([]teamsdk.InboxEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, teamsdk.InboxEntry{
			Invite:          toInvite(e.Invite),
			CounterpartName: e.CounterpartName,
		})
	}
	return out
}

func toProfileUpdate(req teamsdk.ProfileUpdateRequest) domain.ProfileUpdate {
	return domain.ProfileUpdate{
		Specialty:      req.Specialty,
		SubSpecialties: req.SubSpecialties,
		Region:         req.Region,
		City:           req.City,
		Hospitals:      req.Hospitals,
		Languages:      req.Languages,
		Availability:   req.Availability,
		Bio:            req.Bio,
	}
}
