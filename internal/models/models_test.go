package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkochanov/listkeeper/internal/common"
)

func TestValidateListFields_TrimsTitle(t *testing.T) {
	title, err := ValidateListFields("  Groceries  ", ListStatusPending)
	require.NoError(t, err)
	require.Equal(t, "Groceries", title)
}

func TestValidateListFields_EmptyTitle(t *testing.T) {
	_, err := ValidateListFields("   ", ListStatusPending)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestValidateListFields_UnsetStatusAllowed(t *testing.T) {
	_, err := ValidateListFields("Groceries", ListStatusUnset)
	require.NoError(t, err)
}

func TestValidateListFields_OutOfEnumStatusRejected(t *testing.T) {
	_, err := ValidateListFields("Groceries", ListStatus("Done"))
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestValidateItemFields_DefaultsToPending(t *testing.T) {
	desc, status, err := ValidateItemFields("buy milk", "")
	require.NoError(t, err)
	require.Equal(t, "buy milk", desc)
	require.Equal(t, ItemStatusPending, status)
}

func TestValidateItemFields_EmptyDescription(t *testing.T) {
	_, _, err := ValidateItemFields(" \t ", ItemStatusPending)
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestValidateItemFields_OutOfEnumStatusRejected(t *testing.T) {
	_, _, err := ValidateItemFields("buy milk", ItemStatus("Pending"))
	require.ErrorIs(t, err, common.ErrValidation)
}
