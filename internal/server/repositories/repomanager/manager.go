package repomanager

import (
	"context"
	"database/sql"

	"github.com/mkochanov/listkeeper/internal/dbx"
	"github.com/mkochanov/listkeeper/internal/server/repositories/items"
	"github.com/mkochanov/listkeeper/internal/server/repositories/lists"
	"github.com/mkochanov/listkeeper/internal/server/repositories/sessions"
	"github.com/mkochanov/listkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to an arbitrary
// DBTX, so services can use the same repositories inside and outside a
// transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Lists(db dbx.DBTX) lists.Repository
	Items(db dbx.DBTX) items.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
