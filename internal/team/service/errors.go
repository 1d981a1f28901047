package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidUser        = errors.New("email and password are required")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrSelfInvite      = errors.New("cannot invite yourself")
	ErrUnknownUser     = errors.New("unknown user")
	ErrDuplicateInvite = errors.New("a pending invite already exists")
	ErrInvalidDecision = errors.New("decision must be accepted or declined")
	ErrForbidden       = errors.New("only the recipient may respond to an invite")
	ErrAlreadyResolved = errors.New("invite already resolved")
)
