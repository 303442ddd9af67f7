// Package models holds the task-list domain types shared by the client and
// server: lists, items, their status enumerations, and field validation.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkochanov/listkeeper/internal/common"
)

// ListStatus is the status of a whole list. The empty value is legal and
// means "unset"; any other value must be one of the enumerated constants.
type ListStatus string

const (
	ListStatusUnset      ListStatus = ""
	ListStatusPending    ListStatus = "Pending"
	ListStatusInProgress ListStatus = "In Progress"
	ListStatusCompleted  ListStatus = "Completed"
)

// Valid reports whether s is the unset value or one of the enumerated
// statuses. Out-of-enum values are rejected, never coerced.
func (s ListStatus) Valid() bool {
	switch s {
	case ListStatusUnset, ListStatusPending, ListStatusInProgress, ListStatusCompleted:
		return true
	}
	return false
}

// List is a named, owned collection of items.
type List struct {
	ID        string     `json:"id"`
	OwnerID   string     `json:"-"`
	Title     string     `json:"title"`
	Status    ListStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ValidateListFields checks title and status the same way on both sides of
// the wire: the title must be non-empty after trimming and the status must
// be in-enum (empty allowed). Returns the trimmed title.
func ValidateListFields(title string, status ListStatus) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if !status.Valid() {
		return "", fmt.Errorf("%w: invalid status %q", common.ErrValidation, status)
	}
	return title, nil
}
