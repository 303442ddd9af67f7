package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mkochanov/listkeeper/internal/models"
	"github.com/mkochanov/listkeeper/internal/server/repositories/repomanager"
)

type ItemService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewItemService(db *sql.DB, m repomanager.RepositoryManager) *ItemService {
	return &ItemService{db: db, repomanager: m}
}

// GetItems returns the items of an owned list in server order. A list that
// is missing or owned by someone else yields common.ErrorNotFound.
func (s *ItemService) GetItems(ctx context.Context, ownerID, listID string) ([]*models.Item, error) {
	listRepo := s.repomanager.Lists(s.db)
	if _, err := listRepo.FindOwned(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Items(s.db)
	return repo.SelectByList(ctx, listID)
}

// AddItem validates the fields (status defaults to pending) and persists a
// new item under an owned list.
func (s *ItemService) AddItem(ctx context.Context, ownerID, listID, desc string, status models.ItemStatus) (*models.Item, error) {
	desc, status, err := models.ValidateItemFields(desc, status)
	if err != nil {
		return nil, err
	}

	listRepo := s.repomanager.Lists(s.db)
	if _, err := listRepo.FindOwned(ctx, ownerID, listID); err != nil {
		return nil, err
	}

	item := &models.Item{
		ID:          uuid.NewString(),
		ListID:      listID,
		Description: desc,
		Status:      status,
	}

	repo := s.repomanager.Items(s.db)
	if err := repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("error creating item: %w", err)
	}
	return item, nil
}

// EditItem validates the description and updates an item reachable through
// one of ownerID's lists.
func (s *ItemService) EditItem(ctx context.Context, ownerID, id, desc string) error {
	desc, _, err := models.ValidateItemFields(desc, models.ItemStatusPending)
	if err != nil {
		return err
	}

	repo := s.repomanager.Items(s.db)
	return repo.UpdateOwned(ctx, ownerID, id, desc)
}

// DeleteItem removes an item reachable through one of ownerID's lists.
// Missing ids surface as common.ErrorNotFound; callers may treat that as
// success since the item is gone either way.
func (s *ItemService) DeleteItem(ctx context.Context, ownerID, id string) error {
	repo := s.repomanager.Items(s.db)
	return repo.DeleteOwned(ctx, ownerID, id)
}
