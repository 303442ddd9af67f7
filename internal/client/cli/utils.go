package cli

import (
	"errors"
	"strconv"

	"github.com/mkochanov/listkeeper/internal/client/forms"
	"github.com/mkochanov/listkeeper/internal/common"
)

// requireLogin gates the store commands behind a live session.
func (a *App) requireLogin() bool {
	if !a.isLoggedIn() {
		printlnFn("Please log in first")
		return false
	}
	return true
}

// handleSessionLoss redirects the user to the login prompt when the server
// reports the session gone. Returns true when the error was a session loss.
func (a *App) handleSessionLoss(err error) bool {
	if err == nil || !errors.Is(err, common.ErrAuthRequired) {
		return false
	}
	a.userName = ""
	a.currentList = nil
	printlnFn("Session expired, please log in again")
	return true
}

func showBanner(b forms.Banner) {
	if b.Kind != forms.BannerNone {
		printlnFn(b.Text)
	}
}

// indexArg parses a 1-based index argument into a slice offset.
func indexArg(args []string, length int) (int, bool) {
	if len(args) == 0 {
		printlnFn("Usage: <command> <n>")
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > length {
		printlnFn("No such entry:", args[0])
		return 0, false
	}
	return n - 1, true
}
