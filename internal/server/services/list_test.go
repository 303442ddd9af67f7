package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/models"
)

func TestCreateList_AndGetLists(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewListService(nil, m)
	ctx := context.Background()

	created, err := svc.CreateList(ctx, "owner-1", "Groceries", models.ListStatusPending)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetLists(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Groceries", got[0].Title)
	require.Equal(t, models.ListStatusPending, got[0].Status)
}

func TestCreateList_UnsetStatusAllowed(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewListService(nil, m)

	created, err := svc.CreateList(context.Background(), "owner-1", "Chores", models.ListStatusUnset)
	require.NoError(t, err)
	require.Equal(t, models.ListStatusUnset, created.Status)
}

func TestCreateList_Validation(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewListService(nil, m)
	ctx := context.Background()

	_, err := svc.CreateList(ctx, "owner-1", "   ", models.ListStatusPending)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = svc.CreateList(ctx, "owner-1", "Groceries", models.ListStatus("Done"))
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestGetLists_ScopedToOwner(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewListService(nil, m)
	ctx := context.Background()

	_, err := svc.CreateList(ctx, "owner-1", "Mine", models.ListStatusUnset)
	require.NoError(t, err)
	_, err = svc.CreateList(ctx, "owner-2", "Theirs", models.ListStatusUnset)
	require.NoError(t, err)

	got, err := svc.GetLists(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Mine", got[0].Title)
}

func TestEditList_NotOwned(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewListService(nil, m)
	ctx := context.Background()

	created, err := svc.CreateList(ctx, "owner-1", "Mine", models.ListStatusUnset)
	require.NoError(t, err)

	err = svc.EditList(ctx, "owner-2", created.ID, "Hijacked", models.ListStatusCompleted)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestEditList_Success(t *testing.T) {
	m := newFakeRepoManager()
	svc := NewListService(nil, m)
	ctx := context.Background()

	created, err := svc.CreateList(ctx, "owner-1", "Mine", models.ListStatusUnset)
	require.NoError(t, err)

	require.NoError(t, svc.EditList(ctx, "owner-1", created.ID, "Renamed", models.ListStatusInProgress))

	got, err := svc.GetLists(ctx, "owner-1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got[0].Title)
	require.Equal(t, models.ListStatusInProgress, got[0].Status)
}

func TestDeleteList_CascadesToItems(t *testing.T) {
	stubWithTx(t)

	m := newFakeRepoManager()
	listSvc := NewListService(nil, m)
	itemSvc := NewItemService(nil, m)
	ctx := context.Background()

	list, err := listSvc.CreateList(ctx, "owner-1", "Groceries", models.ListStatusPending)
	require.NoError(t, err)

	_, err = itemSvc.AddItem(ctx, "owner-1", list.ID, "milk", "")
	require.NoError(t, err)
	_, err = itemSvc.AddItem(ctx, "owner-1", list.ID, "eggs", "")
	require.NoError(t, err)

	require.NoError(t, listSvc.DeleteList(ctx, "owner-1", list.ID))

	// no orphaned items may remain associated with a deleted list
	_, err = itemSvc.GetItems(ctx, "owner-1", list.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.Empty(t, m.itemRepo.rows)
}

func TestDeleteList_NotOwned(t *testing.T) {
	stubWithTx(t)

	m := newFakeRepoManager()
	svc := NewListService(nil, m)
	ctx := context.Background()

	created, err := svc.CreateList(ctx, "owner-1", "Mine", models.ListStatusUnset)
	require.NoError(t, err)

	err = svc.DeleteList(ctx, "owner-2", created.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)

	got, err := svc.GetLists(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
