package lists

import (
	"context"

	"github.com/mkochanov/listkeeper/internal/models"
)

// Repository defines persistence operations for task lists. Every query is
// owner-scoped: a list that exists but belongs to someone else behaves
// exactly like a missing one.
type Repository interface {
	SelectByOwner(ctx context.Context, ownerID string) ([]*models.List, error)
	Create(ctx context.Context, list *models.List) error
	Update(ctx context.Context, ownerID, id, title string, status models.ListStatus) error
	Delete(ctx context.Context, ownerID, id string) error
	FindOwned(ctx context.Context, ownerID, id string) (*models.List, error)
}
