package services

import (
	"context"

	"github.com/mkochanov/listkeeper/internal/models"
)

// fakeClient records every call so tests can assert that validation
// failures never reach the network.
type fakeClient struct {
	calls []string

	message string
	err     error

	lists []*models.List
	items []*models.Item

	lastItemStatus models.ItemStatus
}

func (f *fakeClient) record(name string) (string, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return "", f.err
	}
	return f.message, nil
}

func (f *fakeClient) Register(ctx context.Context, name, username, password, confirm string) (string, error) {
	return f.record("Register")
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (string, error) {
	return f.record("Login")
}

func (f *fakeClient) Logout(ctx context.Context) (string, error) {
	return f.record("Logout")
}

func (f *fakeClient) GetLists(ctx context.Context) ([]*models.List, error) {
	f.calls = append(f.calls, "GetLists")
	return f.lists, f.err
}

func (f *fakeClient) CreateList(ctx context.Context, title string, status models.ListStatus) (string, error) {
	return f.record("CreateList")
}

func (f *fakeClient) EditList(ctx context.Context, id, title string, status models.ListStatus) (string, error) {
	return f.record("EditList")
}

func (f *fakeClient) DeleteList(ctx context.Context, id string) (string, error) {
	return f.record("DeleteList")
}

func (f *fakeClient) GetItems(ctx context.Context, listID string) ([]*models.Item, error) {
	f.calls = append(f.calls, "GetItems")
	return f.items, f.err
}

func (f *fakeClient) AddItem(ctx context.Context, listID, desc string, status models.ItemStatus) (string, error) {
	f.lastItemStatus = status
	return f.record("AddItem")
}

func (f *fakeClient) EditItem(ctx context.Context, id, desc string) (string, error) {
	return f.record("EditItem")
}

func (f *fakeClient) DeleteItem(ctx context.Context, id string) (string, error) {
	return f.record("DeleteItem")
}
