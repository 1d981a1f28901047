package domain

import (
	"strings"
	"time"
)

// Profile defaults applied to freshly registered users until onboarding.
const (
	DefaultSpecialty = "Ortopedia"
	DefaultLanguages = "Italiano, English"
)

type User struct {
	ID             string
	Email          string // normalised, see NormalizeEmail
	FullName       string
	PasswordHash   string // argon2id PHC string
	Specialty      string
	SubSpecialties string // comma separated
	Region         string
	City           string
	Hospitals      string
	Languages      string // comma separated
	Bio            string
	Availability   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SearchText is the haystack matched by directory search.
func (u User) SearchText() string {
	return u.FullName + u.SubSpecialties + u.Region + u.City + u.Hospitals
}

// MatchesQuery reports whether q is a case-insensitive substring of the
// user's searchable fields. An empty query matches everyone.
func (u User) MatchesQuery(q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.SearchText()), strings.ToLower(q))
}

// NewerThan orders users most recently created first, with the ID as
// tiebreak.
func (u User) NewerThan(o User) bool {
	if !u.CreatedAt.Equal(o.CreatedAt) {
		return u.CreatedAt.After(o.CreatedAt)
	}
	return u.ID > o.ID
}
