package apperrors

import "errors"

// Sentinel errors for the authorization and workflow checks performed
// before any write. Services wrap these with fmt.Errorf("%w: ...") to add
// detail; controllers map them to HTTP statuses with errors.Is.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrValidation      = errors.New("validation failed")
	ErrForbidden       = errors.New("insufficient permissions")
	ErrInvalidState    = errors.New("invalid state transition")
	ErrNotFound        = errors.New("not found")
)
