// Package common defines shared constants and sentinel errors used across
// client and server layers of the wishlist system. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Client-side precondition: an owner id is required before any
	// item mutation can be issued.
	ErrNotAuthenticated = errors.New("not authenticated")

	// Validation errors.
	ErrTitleRequired = errors.New("title is required")
)
