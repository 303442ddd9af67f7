package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mkochanov/listkeeper/internal/client/forms"
	"github.com/mkochanov/listkeeper/internal/models"
)

type fakeAuth struct {
	msg string
	err error

	logoutCalls int
}

func (f *fakeAuth) Register(ctx context.Context, name, username, password, confirm string) (string, error) {
	return f.msg, f.err
}

func (f *fakeAuth) Login(ctx context.Context, username, password string) (string, error) {
	return f.msg, f.err
}

func (f *fakeAuth) Logout(ctx context.Context) (string, error) {
	f.logoutCalls++
	return f.msg, f.err
}

type fakeListSvc struct {
	lists []*models.List
	msg   string
	err   error

	getCalls int
}

func (f *fakeListSvc) GetLists(ctx context.Context) ([]*models.List, error) {
	f.getCalls++
	return f.lists, nil
}

func (f *fakeListSvc) CreateList(ctx context.Context, title string, status models.ListStatus) (string, error) {
	return f.msg, f.err
}

func (f *fakeListSvc) EditList(ctx context.Context, id, title string, status models.ListStatus) (string, error) {
	return f.msg, f.err
}

func (f *fakeListSvc) DeleteList(ctx context.Context, id string) (string, error) {
	return f.msg, f.err
}

type fakeItemSvc struct {
	items []*models.Item
	msg   string
	err   error

	deleteErr error
	getCalls  int
}

func (f *fakeItemSvc) GetItems(ctx context.Context, listID string) ([]*models.Item, error) {
	f.getCalls++
	return f.items, nil
}

func (f *fakeItemSvc) AddItem(ctx context.Context, listID, desc string, status models.ItemStatus) (string, error) {
	return f.msg, f.err
}

func (f *fakeItemSvc) EditItem(ctx context.Context, id, desc string) (string, error) {
	return f.msg, f.err
}

func (f *fakeItemSvc) DeleteItem(ctx context.Context, id string) (string, error) {
	return f.msg, f.deleteErr
}

func newTestApp(input string, auth *fakeAuth, lists *fakeListSvc, items *fakeItemSvc) *App {
	return &App{
		auth:     auth,
		lists:    lists,
		items:    items,
		reader:   bufio.NewReader(strings.NewReader(input)),
		listForm: forms.New[listDraft](),
		itemForm: forms.New[itemDraft](),
	}
}

// captureOutput redirects printlnFn into a slice for assertions.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn

	var lines []string
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubPassword makes GetPassword return pw without touching the terminal.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}
