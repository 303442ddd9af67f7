// Package items provides a PostgreSQL-backed repository for list items.
package items

import (
	"context"
	"fmt"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/dbx"
	"github.com/mkochanov/listkeeper/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// SelectByList returns the items of listID ordered by creation time.
// The caller must have verified list ownership first.
func (r *PostgresRepository) SelectByList(ctx context.Context, listID string) ([]*models.Item, error) {
	query := `
		SELECT id, list_id, description, status, created_at FROM items
		WHERE list_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	var result []*models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.ListID, &item.Description, &item.Status, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (id, list_id, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.ListID, item.Description, item.Status).Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateOwned changes an item's description when the item's parent list is
// owned by ownerID; otherwise common.ErrorNotFound.
func (r *PostgresRepository) UpdateOwned(ctx context.Context, ownerID, id, description string) error {
	query := `
		UPDATE items SET description = $3
		WHERE id = $1
		  AND list_id IN (SELECT id FROM lists WHERE owner_id = $2)
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID, description)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// DeleteOwned removes an item when its parent list is owned by ownerID;
// otherwise common.ErrorNotFound.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM items
		WHERE id = $1
		  AND list_id IN (SELECT id FROM lists WHERE owner_id = $2)
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// DeleteByList removes every item of a list. Used inside the cascade-delete
// transaction before the list row itself is removed.
func (r *PostgresRepository) DeleteByList(ctx context.Context, listID string) error {
	query := `
		DELETE FROM items
		WHERE list_id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, listID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
