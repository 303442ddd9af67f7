package items

import (
	"context"

	"github.com/mkochanov/listkeeper/internal/models"
)

// Repository defines persistence operations for list items. Mutations by id
// join through the parent list so ownership is enforced in the query itself.
type Repository interface {
	SelectByList(ctx context.Context, listID string) ([]*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	UpdateOwned(ctx context.Context, ownerID, id, description string) error
	DeleteOwned(ctx context.Context, ownerID, id string) error
	DeleteByList(ctx context.Context, listID string) error
}
