package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mkochanov/listkeeper/internal/client/forms"
	"github.com/mkochanov/listkeeper/internal/models"
)

// refreshLists re-fetches the collection after a mutation: the server is the
// source of truth, local state is never patched optimistically.
func (a *App) refreshLists(ctx context.Context) error {
	lists, err := a.lists.GetLists(ctx)
	if err != nil {
		return err
	}
	a.listCache = lists
	return nil
}

func (a *App) showLists(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	if err := a.refreshLists(ctx); err != nil {
		if !a.handleSessionLoss(err) {
			printlnFn(err.Error())
		}
		return
	}

	if len(a.listCache) == 0 {
		printlnFn("No lists yet")
		return
	}
	for i, l := range a.listCache {
		status := string(l.Status)
		if status == "" {
			status = "-"
		}
		printlnFn(fmt.Sprintf("%d. %s [%s]", i+1, l.Title, status))
	}
}

// promptListDraft reads a title and status from the user. An empty status
// is legal and means "unset".
func (a *App) promptListDraft(current listDraft) (listDraft, error) {
	title, err := GetSimpleText(a.reader, "Enter list title", os.Stdout)
	if err != nil {
		return listDraft{}, err
	}
	if title == "" {
		title = current.Title
	}

	status, err := GetSimpleText(a.reader, "Enter status (Pending / In Progress / Completed, empty for unset)", os.Stdout)
	if err != nil {
		return listDraft{}, err
	}

	return listDraft{Title: title, Status: models.ListStatus(status)}, nil
}

func (a *App) addList(ctx context.Context) {
	if !a.requireLogin() {
		return
	}

	a.listForm.OpenAddForm()

	draft, err := a.promptListDraft(listDraft{})
	if err != nil {
		printlnFn(err.Error())
		return
	}
	a.listForm.SetAddDraft(draft)

	if !a.listForm.BeginSubmit(forms.SlotAdd) {
		return
	}
	msg, err := a.lists.CreateList(ctx, draft.Title, draft.Status)
	a.listForm.FinishSubmit(forms.SlotAdd, msg, err)
	showBanner(a.listForm.Banner())

	if a.handleSessionLoss(err) || err != nil {
		return
	}
	if err := a.refreshLists(ctx); err != nil {
		printlnFn(err.Error())
	}
}

func (a *App) editList(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	i, ok := indexArg(args, len(a.listCache))
	if !ok {
		return
	}
	target := a.listCache[i]

	a.listForm.StartEdit(target.ID, listDraft{Title: target.Title, Status: target.Status})

	draft, err := a.promptListDraft(a.listForm.EditDraft())
	if err != nil {
		printlnFn(err.Error())
		return
	}
	a.listForm.SetEditDraft(draft)

	if !a.listForm.BeginSubmit(forms.SlotEdit) {
		return
	}
	msg, err := a.lists.EditList(ctx, target.ID, draft.Title, draft.Status)
	a.listForm.FinishSubmit(forms.SlotEdit, msg, err)
	showBanner(a.listForm.Banner())

	if a.handleSessionLoss(err) || err != nil {
		return
	}
	if err := a.refreshLists(ctx); err != nil {
		printlnFn(err.Error())
	}
}

func (a *App) deleteList(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	i, ok := indexArg(args, len(a.listCache))
	if !ok {
		return
	}
	target := a.listCache[i]

	msg, err := a.lists.DeleteList(ctx, target.ID)
	if a.handleSessionLoss(err) {
		return
	}
	if err != nil {
		printlnFn(err.Error())
		return
	}

	if a.currentList != nil && a.currentList.ID == target.ID {
		a.closeList()
	}

	printlnFn(msg)
	if err := a.refreshLists(ctx); err != nil {
		printlnFn(err.Error())
	}
}

func (a *App) openList(ctx context.Context, args []string) {
	if !a.requireLogin() {
		return
	}

	i, ok := indexArg(args, len(a.listCache))
	if !ok {
		return
	}

	a.currentList = a.listCache[i]
	a.showItems(ctx)
}

func (a *App) closeList() {
	a.currentList = nil
	a.itemCache = nil
}
