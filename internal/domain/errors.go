package domain

import "errors"

var (
	// ErrNotFound reports an absent record. Repositories return it instead
	// of a driver-specific error so callers can branch on absence.
	ErrNotFound = errors.New("domain: not found")
	// ErrDuplicateEmail is returned when a user with the same e-mail exists.
	ErrDuplicateEmail = errors.New("domain: duplicate email")
)
