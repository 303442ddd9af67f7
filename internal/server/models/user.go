// Package models contains server-side persistence types. The wire types
// shared with the client live in internal/models.
package models

import "time"

// User is an account holder. Immutable after registration except for the
// password hash, which a future password-change flow would touch.
type User struct {
	ID           string
	Name         string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
