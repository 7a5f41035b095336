package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("record not found")
	ErrValidation         = errors.New("invalid input")
	ErrStore              = errors.New("record store failure")
	ErrConfiguration      = errors.New("backend not configured")
	ErrDuplicate          = errors.New("duplicate record")
	ErrUnauthorized       = errors.New("not authorized")
	ErrForbidden          = errors.New("access denied")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
