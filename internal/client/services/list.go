package services

import (
	"context"
	"strings"

	"github.com/mkochanov/listkeeper/internal/client/api"
	"github.com/mkochanov/listkeeper/internal/models"
)

// ListService defines list operations for the CLI. The server is the source
// of ordering truth: GetLists returns lists exactly as the server sent them.
type ListService interface {
	GetLists(ctx context.Context) ([]*models.List, error)
	CreateList(ctx context.Context, title string, status models.ListStatus) (string, error)
	EditList(ctx context.Context, id, title string, status models.ListStatus) (string, error)
	DeleteList(ctx context.Context, id string) (string, error)
}

type listService struct {
	client api.Client
}

// NewListService constructs a ListService bound to the given API client.
func NewListService(client api.Client) ListService {
	return &listService{client: client}
}

func (l *listService) GetLists(ctx context.Context) ([]*models.List, error) {
	return l.client.GetLists(ctx)
}

// validateList enforces the shared field rules locally so invalid input
// never produces a network call. An empty status means "unset" and is legal.
func validateList(title string, status models.ListStatus) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", validationError("Please enter a title")
	}
	if !status.Valid() {
		return "", validationError("Invalid status")
	}
	return title, nil
}

func (l *listService) CreateList(ctx context.Context, title string, status models.ListStatus) (string, error) {
	title, err := validateList(title, status)
	if err != nil {
		return "", err
	}
	return l.client.CreateList(ctx, title, status)
}

func (l *listService) EditList(ctx context.Context, id, title string, status models.ListStatus) (string, error) {
	title, err := validateList(title, status)
	if err != nil {
		return "", err
	}
	return l.client.EditList(ctx, id, title, status)
}

func (l *listService) DeleteList(ctx context.Context, id string) (string, error) {
	return l.client.DeleteList(ctx, id)
}
