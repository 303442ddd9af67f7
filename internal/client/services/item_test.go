package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/models"
)

func TestAddItem_EmptyDescription(t *testing.T) {
	client := &fakeClient{}
	svc := NewItemService(client)

	_, err := svc.AddItem(context.Background(), "l1", "   ", models.ItemStatusPending)
	require.ErrorIs(t, err, common.ErrValidation)
	require.EqualError(t, err, "Please enter a description")
	require.Empty(t, client.calls)
}

func TestAddItem_UnsetStatusDefaultsToPending(t *testing.T) {
	client := &fakeClient{message: "Item added successfully"}
	svc := NewItemService(client)

	msg, err := svc.AddItem(context.Background(), "l1", "milk", "")
	require.NoError(t, err)
	require.Equal(t, "Item added successfully", msg)
	require.Equal(t, models.ItemStatusPending, client.lastItemStatus)
}

func TestEditItem_EmptyDescription(t *testing.T) {
	client := &fakeClient{}
	svc := NewItemService(client)

	_, err := svc.EditItem(context.Background(), "i1", "")
	require.ErrorIs(t, err, common.ErrValidation)
	require.EqualError(t, err, "Description cannot be empty")
	require.Empty(t, client.calls)
}

func TestDeleteItem_PropagatesNotFound(t *testing.T) {
	client := &fakeClient{err: common.ErrorNotFound}
	svc := NewItemService(client)

	_, err := svc.DeleteItem(context.Background(), "gone")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.Equal(t, []string{"DeleteItem"}, client.calls)
}
