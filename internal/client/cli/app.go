// Package cli implements the interactive ListKeeper client: a small REPL
// over the auth, list and item services.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mkochanov/listkeeper/internal/client/api"
	"github.com/mkochanov/listkeeper/internal/client/config"
	"github.com/mkochanov/listkeeper/internal/client/forms"
	"github.com/mkochanov/listkeeper/internal/client/services"
	"github.com/mkochanov/listkeeper/internal/models"
)

type listDraft struct {
	Title  string
	Status models.ListStatus
}

type itemDraft struct {
	Desc   string
	Status models.ItemStatus
}

type App struct {
	config *config.Config
	auth   services.AuthService
	lists  services.ListService
	items  services.ItemService
	reader *bufio.Reader

	userName string

	// cached collections, refreshed after every mutation
	listCache []*models.List
	itemCache []*models.Item

	// the list whose items are currently displayed
	currentList *models.List

	listForm *forms.Machine[listDraft]
	itemForm *forms.Machine[itemDraft]
}

func NewApp(c *config.Config) (*App, error) {

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)

	return &App{
		config:   c,
		auth:     services.NewAuthService(apiClient),
		lists:    services.NewListService(apiClient),
		items:    services.NewItemService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
		listForm: forms.New[listDraft](),
		itemForm: forms.New[itemDraft](),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
