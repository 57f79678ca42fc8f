package domain

import "errors"

// Sentinel errors shared across services. Controllers match these with
// errors.Is and map them to HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
)
