package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/dbx"
	"github.com/mkochanov/listkeeper/internal/models"
	smodels "github.com/mkochanov/listkeeper/internal/server/models"
	"github.com/mkochanov/listkeeper/internal/server/repositories/items"
	"github.com/mkochanov/listkeeper/internal/server/repositories/lists"
	"github.com/mkochanov/listkeeper/internal/server/repositories/sessions"
	"github.com/mkochanov/listkeeper/internal/server/repositories/users"
)

// fakeUserRepo is an in-memory users.Repository keyed by username.
type fakeUserRepo struct {
	byUserName map[string]*smodels.User
	createErr  error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUserName: map[string]*smodels.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *smodels.User) (*smodels.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byUserName[user.UserName]; ok {
		return nil, common.ErrAlreadyExists
	}
	user.CreatedAt = time.Now()
	f.byUserName[user.UserName] = user
	return user, nil
}

func (f *fakeUserRepo) GetByUserName(ctx context.Context, userName string) (*smodels.User, error) {
	u, ok := f.byUserName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

// fakeSessionRepo is an in-memory sessions.Repository.
type fakeSessionRepo struct {
	rows map[string]*smodels.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{rows: map[string]*smodels.Session{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, id, userID string, validity time.Duration) error {
	f.rows[id] = &smodels.Session{ID: id, UserID: userID, ExpiresAt: time.Now().Add(validity)}
	return nil
}

func (f *fakeSessionRepo) Find(ctx context.Context, id string) (*smodels.Session, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(f.rows, id)
	return nil
}

// fakeListRepo is an in-memory lists.Repository preserving insertion order.
type fakeListRepo struct {
	rows []*models.List
}

func (f *fakeListRepo) SelectByOwner(ctx context.Context, ownerID string) ([]*models.List, error) {
	var out []*models.List
	for _, l := range f.rows {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListRepo) Create(ctx context.Context, list *models.List) error {
	list.CreatedAt = time.Now()
	f.rows = append(f.rows, list)
	return nil
}

func (f *fakeListRepo) Update(ctx context.Context, ownerID, id, title string, status models.ListStatus) error {
	for _, l := range f.rows {
		if l.ID == id && l.OwnerID == ownerID {
			l.Title = title
			l.Status = status
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeListRepo) Delete(ctx context.Context, ownerID, id string) error {
	for i, l := range f.rows {
		if l.ID == id && l.OwnerID == ownerID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeListRepo) FindOwned(ctx context.Context, ownerID, id string) (*models.List, error) {
	for _, l := range f.rows {
		if l.ID == id && l.OwnerID == ownerID {
			return l, nil
		}
	}
	return nil, common.ErrorNotFound
}

// fakeItemRepo is an in-memory items.Repository. Ownership checks resolve
// through the paired fakeListRepo, like the SQL joins do.
type fakeItemRepo struct {
	rows  []*models.Item
	lists *fakeListRepo
}

func (f *fakeItemRepo) SelectByList(ctx context.Context, listID string) ([]*models.Item, error) {
	var out []*models.Item
	for _, it := range f.rows {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Create(ctx context.Context, item *models.Item) error {
	item.CreatedAt = time.Now()
	f.rows = append(f.rows, item)
	return nil
}

func (f *fakeItemRepo) owned(ownerID, id string) *models.Item {
	for _, it := range f.rows {
		if it.ID != id {
			continue
		}
		if _, err := f.lists.FindOwned(context.Background(), ownerID, it.ListID); err == nil {
			return it
		}
	}
	return nil
}

func (f *fakeItemRepo) UpdateOwned(ctx context.Context, ownerID, id, description string) error {
	it := f.owned(ownerID, id)
	if it == nil {
		return common.ErrorNotFound
	}
	it.Description = description
	return nil
}

func (f *fakeItemRepo) DeleteOwned(ctx context.Context, ownerID, id string) error {
	it := f.owned(ownerID, id)
	if it == nil {
		return common.ErrorNotFound
	}
	for i, row := range f.rows {
		if row == it {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeItemRepo) DeleteByList(ctx context.Context, listID string) error {
	var kept []*models.Item
	for _, it := range f.rows {
		if it.ListID != listID {
			kept = append(kept, it)
		}
	}
	f.rows = kept
	return nil
}

// fakeRepoManager vends the fakes above regardless of the DBTX handle.
type fakeRepoManager struct {
	userRepo    *fakeUserRepo
	sessionRepo *fakeSessionRepo
	listRepo    *fakeListRepo
	itemRepo    *fakeItemRepo
}

func newFakeRepoManager() *fakeRepoManager {
	lr := &fakeListRepo{}
	return &fakeRepoManager{
		userRepo:    newFakeUserRepo(),
		sessionRepo: newFakeSessionRepo(),
		listRepo:    lr,
		itemRepo:    &fakeItemRepo{lists: lr},
	}
}

func (f *fakeRepoManager) Users(db dbx.DBTX) users.Repository       { return f.userRepo }
func (f *fakeRepoManager) Sessions(db dbx.DBTX) sessions.Repository { return f.sessionRepo }
func (f *fakeRepoManager) Lists(db dbx.DBTX) lists.Repository       { return f.listRepo }
func (f *fakeRepoManager) Items(db dbx.DBTX) items.Repository       { return f.itemRepo }
func (f *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

// stubWithTx bypasses the real transaction for tests that have no database.
func stubWithTx(t interface{ Cleanup(func()) }) {
	orig := withTx
	withTx = func(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx dbx.DBTX) error) error {
		return fn(ctx, db)
	}
	t.Cleanup(func() { withTx = orig })
}
