// Package common defines shared constants and sentinel errors used across
// the client and server layers of ListKeeper. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors caught before any network or database call.
	ErrValidation = errors.New("validation error")

	// ErrAuthRequired means a protected call was made without a live
	// session, or the server reported the session invalid.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAlreadyExists is returned when a unique constraint is violated,
	// e.g. registering a username that is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
