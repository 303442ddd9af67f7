// Package lists provides a PostgreSQL-backed repository for task lists.
package lists

import (
	"context"
	"database/sql"
	"errors"
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

// SelectByOwner returns all lists owned by ownerID ordered by creation time.
// The server is the source of ordering truth; clients do not re-sort.
func (r *PostgresRepository) SelectByOwner(ctx context.Context, ownerID string) ([]*models.List, error) {
	query := `
		SELECT id, owner_id, title, status, created_at FROM lists
		WHERE owner_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select lists: %w", err)
	}
	defer rows.Close()

	var result []*models.List
	for rows.Next() {
		var list models.List
		if err := rows.Scan(&list.ID, &list.OwnerID, &list.Title, &list.Status, &list.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &list)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, list *models.List) error {
	query := `
		INSERT INTO lists (id, owner_id, title, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		list.ID, list.OwnerID, list.Title, list.Status).Scan(&list.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update mutates title and status of a list owned by ownerID. If the id does
// not resolve to an owned list, no row is touched and common.ErrorNotFound
// is returned.
func (r *PostgresRepository) Update(ctx context.Context, ownerID, id, title string, status models.ListStatus) error {
	query := `
		UPDATE lists SET title = $3, status = $4
		WHERE id = $1 AND owner_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, ownerID, title, status)
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

// Delete removes an owned list row. Items are removed by the caller in the
// same transaction; the FK cascade is only a backstop.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `
		DELETE FROM lists
		WHERE id = $1 AND owner_id = $2
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

// FindOwned returns the list only when it exists and belongs to ownerID.
func (r *PostgresRepository) FindOwned(ctx context.Context, ownerID, id string) (*models.List, error) {
	query := `
		SELECT id, owner_id, title, status, created_at FROM lists
		WHERE id = $1 AND owner_id = $2
	`
	list := &models.List{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&list.ID, &list.OwnerID, &list.Title, &list.Status, &list.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return list, nil
}
