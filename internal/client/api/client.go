// Package api implements the HTTP client for the ListKeeper server. It owns
// the session credential: login captures the session cookie and every
// protected call carries it until logout discards it.
package api

import (
	"context"

	"github.com/mkochanov/listkeeper/internal/models"
)

// Client is the remote surface the CLI services talk to. Mutations return
// the server's confirmation message so it can be shown to the user verbatim.
type Client interface {
	Register(ctx context.Context, name, username, password, confirm string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) (string, error)

	GetLists(ctx context.Context) ([]*models.List, error)
	CreateList(ctx context.Context, title string, status models.ListStatus) (string, error)
	EditList(ctx context.Context, id, title string, status models.ListStatus) (string, error)
	DeleteList(ctx context.Context, id string) (string, error)

	GetItems(ctx context.Context, listID string) ([]*models.Item, error)
	AddItem(ctx context.Context, listID, desc string, status models.ItemStatus) (string, error)
	EditItem(ctx context.Context, id, desc string) (string, error)
	DeleteItem(ctx context.Context, id string) (string, error)
}
