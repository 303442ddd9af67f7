package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName
		if a.currentList != nil {
			s = s + " / " + a.currentList.Title
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root runs the read–eval–print loop. It reads a line, parses the first
// token as the command, and dispatches to the handlers. The loop exits on
// input EOF or when the user types "exit" or "quit".
func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to ListKeeper CLI (type 'help' for commands)")

	for {
		fmt.Printf("lk %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ists, addlist, editlist <n>, dellist <n>, open <n>, items, additem, edititem <n>, delitem <n>, close, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)

		case "l", "lists":
			a.showLists(ctx)
		case "addlist":
			a.addList(ctx)
		case "editlist":
			a.editList(ctx, args)
		case "dellist":
			a.deleteList(ctx, args)

		case "open":
			a.openList(ctx, args)
		case "close":
			a.closeList()
		case "items":
			a.showItems(ctx)
		case "additem":
			a.addItem(ctx)
		case "edititem":
			a.editItem(ctx, args)
		case "delitem":
			a.deleteItem(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
