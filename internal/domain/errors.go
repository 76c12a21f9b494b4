package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrListingNotFound = errors.New("listing not found")
)

var (
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("no active session")
	ErrForbidden          = errors.New("action is not allowed for this role")
)

var (
	ErrValidation = errors.New("validation error")
)
