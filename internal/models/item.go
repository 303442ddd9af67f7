package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkochanov/listkeeper/internal/common"
)

// ItemStatus is the status of a single item. Unlike ListStatus the unset
// value is never stored: it defaults to "pending" at creation.
type ItemStatus string

const (
	ItemStatusPending    ItemStatus = "pending"
	ItemStatusInProgress ItemStatus = "in-progress"
	ItemStatusCompleted  ItemStatus = "completed"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusPending, ItemStatusInProgress, ItemStatusCompleted:
		return true
	}
	return false
}

// Item is a single task belonging to exactly one list. Items never outlive
// their list: deleting the list cascades to them.
type Item struct {
	ID          string     `json:"id"`
	ListID      string     `json:"listId"`
	Description string     `json:"description"`
	Status      ItemStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ValidateItemFields trims and checks the description and resolves the
// status: empty defaults to pending, anything else must be in-enum.
func ValidateItemFields(desc string, status ItemStatus) (string, ItemStatus, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", "", fmt.Errorf("%w: description is required", common.ErrValidation)
	}
	if status == "" {
		status = ItemStatusPending
	}
	if !status.Valid() {
		return "", "", fmt.Errorf("%w: invalid status %q", common.ErrValidation, status)
	}
	return desc, status, nil
}
