// Package apperr defines the error taxonomy shared by the service and handler
// layers. Handlers translate these into HTTP status codes.
package apperr

import "errors"

var (
	// ErrValidation wraps any malformed-input failure (missing field, bad
	// enum value, oversized text). Use fmt.Errorf("%w: ...", ErrValidation).
	ErrValidation = errors.New("validation failed")

	ErrPasswordRequired = errors.New("password required")
	ErrInvalidPassword  = errors.New("invalid password")

	ErrRoomNotFound = errors.New("room not found")
	ErrUserNotFound = errors.New("user not found")

	ErrDuplicateRoomName = errors.New("a room with this name already exists")
)
