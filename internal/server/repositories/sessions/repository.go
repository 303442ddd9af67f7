package sessions

import (
	"context"
	"time"

	"github.com/mkochanov/listkeeper/internal/server/models"
)

// Repository defines persistence operations for issued sessions.
type Repository interface {
	Create(ctx context.Context, id, userID string, validity time.Duration) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}
