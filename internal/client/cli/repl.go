package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAuthenticated() bool
	inHostRuntime() bool
	Register(ctx context.Context)
	Login(ctx context.Context)
	Logout(ctx context.Context)
	List(ctx context.Context)
	Add(ctx context.Context)
	Edit(ctx context.Context)
	Delete(ctx context.Context)
	Share(ctx context.Context)
	Refresh(ctx context.Context)
	Upload(ctx context.Context)
	View(ctx context.Context)
}

// runREPL starts a simple read-eval-print loop for the wishlist CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Inside a host runtime the anonymous help omits the register and login
// commands, since the host identity is signed in automatically and no
// explicit sign-in affordance should be offered.
//
// Any errors inside command handlers are reported by the handlers themselves.
// This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wl> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				printlnFn("Available commands: (l)ist, add, edit, delete, upload, share, view, refresh, logout, exit")
			} else if a.inHostRuntime() {
				printlnFn("Available commands: (l)ist, view, refresh, exit")
			} else {
				printlnFn("Available commands: register, login, view, exit")
			}

		case "register":
			a.Register(ctx)

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "l", "list":
			a.List(ctx)

		case "add":
			a.Add(ctx)

		case "edit":
			a.Edit(ctx)

		case "delete":
			a.Delete(ctx)

		case "share":
			a.Share(ctx)

		case "upload":
			a.Upload(ctx)

		case "view":
			a.View(ctx)

		case "refresh":
			a.Refresh(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
