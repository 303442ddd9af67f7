package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkochanov/listkeeper/internal/dbx"
	"github.com/mkochanov/listkeeper/internal/models"
	"github.com/mkochanov/listkeeper/internal/server/repositories/repomanager"
)

type ListService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewListService(db *sql.DB, m repomanager.RepositoryManager) *ListService {
	return &ListService{db: db, repomanager: m}
}

// GetLists returns the lists owned by ownerID in server order.
func (s *ListService) GetLists(ctx context.Context, ownerID string) ([]*models.List, error) {
	repo := s.repomanager.Lists(s.db)
	return repo.SelectByOwner(ctx, ownerID)
}

// CreateList validates the fields and persists a new list for ownerID.
func (s *ListService) CreateList(ctx context.Context, ownerID, title string, status models.ListStatus) (*models.List, error) {
	title, err := models.ValidateListFields(title, status)
	if err != nil {
		return nil, err
	}

	list := &models.List{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   title,
		Status:  status,
	}

	repo := s.repomanager.Lists(s.db)
	if err := repo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("error creating list: %w", err)
	}
	return list, nil
}

// EditList validates the fields and updates an owned list.
// Unowned or missing ids surface as common.ErrorNotFound.
func (s *ListService) EditList(ctx context.Context, ownerID, id, title string, status models.ListStatus) error {
	title, err := models.ValidateListFields(title, status)
	if err != nil {
		return err
	}

	repo := s.repomanager.Lists(s.db)
	return repo.Update(ctx, ownerID, id, title, status)
}

// withTx is a seam for testing the cascade without a live database.
var withTx = dbx.WithTx

// DeleteList removes an owned list and all of its items in one transaction.
// The cascade is a hard invariant: no item may outlive its list.
func (s *ListService) DeleteList(ctx context.Context, ownerID, id string) error {
	return withTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		listRepo := s.repomanager.Lists(tx)

		if _, err := listRepo.FindOwned(ctx, ownerID, id); err != nil {
			return err
		}

		itemRepo := s.repomanager.Items(tx)
		if err := itemRepo.DeleteByList(ctx, id); err != nil {
			return err
		}

		return listRepo.Delete(ctx, ownerID, id)
	})
}
