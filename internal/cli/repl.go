package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Contact(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands
//
//	Signed out:
//	  - help             show available commands
//	  - register         create an account
//	  - login            sign in
//	  - contact          send a message
//	  - exit | quit      leave the program
//
//	Signed in:
//	  - help             show available commands
//	  - whoami           show the signed-in account
//	  - contact          send a message
//	  - logout           sign out
//	  - exit | quit      leave the program
//
// Handler errors are ignored here; the controllers already reported them
// through the UI hooks.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portfolio %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, contact, logout, exit")
			} else {
				printlnFn("Available commands: register, login, contact, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "contact":
			_ = a.Contact(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
