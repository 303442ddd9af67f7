package models

import "time"

// Session is a server-side record of an issued session token. Its presence
// makes the token revocable: logout deletes the row and later calls with
// the same token fail validation.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}
