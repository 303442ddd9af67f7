package cli

import (
	"context"
	"os"
	"time"
)

// logoutDelay keeps the confirmation on screen before the prompt returns to
// the unauthenticated state. sleepFn is a test seam.
var (
	logoutDelay = time.Second
	sleepFn     = time.Sleep
)

func (a *App) Register(ctx context.Context) {

	name, err := GetSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	confirm, err := GetPassword("Confirm password", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	msg, err := a.auth.Register(ctx, name, userName, password, confirm)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn(msg)
}

func (a *App) Login(ctx context.Context) {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	password, err := GetPassword("Enter password", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	msg, err := a.auth.Login(ctx, userName, password)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	a.userName = userName
	printlnFn(msg)
}

// Logout drops the local session no matter what the server said, shows the
// confirmation, and pauses briefly so it can be read before the prompt
// switches back to the unauthenticated state.
func (a *App) Logout(ctx context.Context) {

	msg, err := a.auth.Logout(ctx)

	a.userName = ""
	a.currentList = nil
	a.listCache = nil
	a.itemCache = nil

	if err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn(msg)
	sleepFn(logoutDelay)
}
