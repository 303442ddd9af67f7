package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mkochanov/listkeeper/internal/client/forms"
	"github.com/mkochanov/listkeeper/internal/common"
	"github.com/mkochanov/listkeeper/internal/models"
)

func (a *App) refreshItems(ctx context.Context) error {
	items, err := a.items.GetItems(ctx, a.currentList.ID)
	if err != nil {
		return err
	}
	a.itemCache = items
	return nil
}

// requireOpenList gates the item commands on a selected list.
func (a *App) requireOpenList() bool {
	if a.currentList == nil {
		printlnFn("Open a list first: open <n>")
		return false
	}
	return true
}

func (a *App) showItems(ctx context.Context) {
	if !a.requireLogin() || !a.requireOpenList() {
		return
	}

	if err := a.refreshItems(ctx); err != nil {
		if !a.handleSessionLoss(err) {
			printlnFn(err.Error())
		}
		return
	}

	if len(a.itemCache) == 0 {
		printlnFn("No items yet")
		return
	}
	for i, item := range a.itemCache {
		printlnFn(fmt.Sprintf("%d. %s [%s]", i+1, item.Description, item.Status))
	}
}

func (a *App) addItem(ctx context.Context) {
	if !a.requireLogin() || !a.requireOpenList() {
		return
	}

	a.itemForm.OpenAddForm()

	desc, err := GetSimpleText(a.reader, "Enter item description", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	status, err := GetSimpleText(a.reader, "Enter status (pending / in-progress / completed, empty for pending)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	a.itemForm.SetAddDraft(itemDraft{Desc: desc, Status: models.ItemStatus(status)})

	if !a.itemForm.BeginSubmit(forms.SlotAdd) {
		return
	}
	draft := a.itemForm.AddDraft()
	msg, err := a.items.AddItem(ctx, a.currentList.ID, draft.Desc, draft.Status)
	a.itemForm.FinishSubmit(forms.SlotAdd, msg, err)
	showBanner(a.itemForm.Banner())

	if a.handleSessionLoss(err) || err != nil {
		return
	}
	if err := a.refreshItems(ctx); err != nil {
		printlnFn(err.Error())
	}
}

func (a *App) editItem(ctx context.Context, args []string) {
	if !a.requireLogin() || !a.requireOpenList() {
		return
	}

	i, ok := indexArg(args, len(a.itemCache))
	if !ok {
		return
	}
	target := a.itemCache[i]

	a.itemForm.StartEdit(target.ID, itemDraft{Desc: target.Description, Status: target.Status})

	desc, err := GetSimpleText(a.reader, "Enter new description", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	a.itemForm.SetEditDraft(itemDraft{Desc: desc, Status: target.Status})

	if !a.itemForm.BeginSubmit(forms.SlotEdit) {
		return
	}
	msg, err := a.items.EditItem(ctx, target.ID, desc)
	a.itemForm.FinishSubmit(forms.SlotEdit, msg, err)
	showBanner(a.itemForm.Banner())

	if a.handleSessionLoss(err) || err != nil {
		return
	}
	if err := a.refreshItems(ctx); err != nil {
		printlnFn(err.Error())
	}
}

// deleteItem is idempotent from the user's point of view: an already-gone
// item is logged and reported as deleted, and interaction continues.
func (a *App) deleteItem(ctx context.Context, args []string) {
	if !a.requireLogin() || !a.requireOpenList() {
		return
	}

	i, ok := indexArg(args, len(a.itemCache))
	if !ok {
		return
	}
	target := a.itemCache[i]

	msg, err := a.items.DeleteItem(ctx, target.ID)
	if a.handleSessionLoss(err) {
		return
	}
	if errors.Is(err, common.ErrorNotFound) {
		log.Println(err.Error())
		msg, err = "Item deleted successfully", nil
	}
	if err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn(msg)
	if err := a.refreshItems(ctx); err != nil {
		printlnFn(err.Error())
	}
}
