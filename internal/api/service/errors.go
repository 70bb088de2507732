package service

import "errors"

// Sentinel errors returned by the services. Controllers map these onto
// HTTP statuses; anything else is a 500.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrNotFoundOrForbidden deliberately covers both a missing game and a
	// game owned by someone else, so existence never leaks.
	ErrNotFoundOrForbidden = errors.New("game not found or you do not have permission to delete it")
)
