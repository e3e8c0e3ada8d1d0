package domain

import "errors"

// Sentinel errors shared by all stores and services. The HTTP layer owns the
// translation to status codes; everything below it wraps these with
// fmt.Errorf("%w: ...") so callers can use errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrForbidden          = errors.New("not authorized")
	ErrInvalid            = errors.New("invalid input")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
