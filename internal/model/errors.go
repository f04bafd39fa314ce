package model

import "errors"

// Sentinel errors returned by repositories and mapped to HTTP status
// codes at the handler boundary.
var (
	// ErrNotFound means the referenced document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail means a user with that email already exists
	// (unique index violation on the users collection).
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and password
	// mismatch so callers cannot probe which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
