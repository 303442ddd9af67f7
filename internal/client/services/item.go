package services

import (
	"context"
	"strings"

	"github.com/mkochanov/listkeeper/internal/client/api"
	"github.com/mkochanov/listkeeper/internal/models"
)

// ItemService defines item operations for the CLI, scoped to a parent list.
type ItemService interface {
	GetItems(ctx context.Context, listID string) ([]*models.Item, error)
	AddItem(ctx context.Context, listID, desc string, status models.ItemStatus) (string, error)
	EditItem(ctx context.Context, id, desc string) (string, error)
	DeleteItem(ctx context.Context, id string) (string, error)
}

type itemService struct {
	client api.Client
}

// NewItemService constructs an ItemService bound to the given API client.
func NewItemService(client api.Client) ItemService {
	return &itemService{client: client}
}

func (i *itemService) GetItems(ctx context.Context, listID string) ([]*models.Item, error) {
	return i.client.GetItems(ctx, listID)
}

// AddItem validates the description locally and defaults an unset status to
// pending before the call goes out.
func (i *itemService) AddItem(ctx context.Context, listID, desc string, status models.ItemStatus) (string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", validationError("Please enter a description")
	}
	if status == "" {
		status = models.ItemStatusPending
	}
	if !status.Valid() {
		return "", validationError("Invalid status")
	}
	return i.client.AddItem(ctx, listID, desc, status)
}

func (i *itemService) EditItem(ctx context.Context, id, desc string) (string, error) {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return "", validationError("Description cannot be empty")
	}
	return i.client.EditItem(ctx, id, desc)
}

func (i *itemService) DeleteItem(ctx context.Context, id string) (string, error) {
	return i.client.DeleteItem(ctx, id)
}
