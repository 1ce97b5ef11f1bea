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
	isLoggedIn(ctx context.Context) bool
	Home(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Blog(ctx context.Context) error
	NewPost(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Print(ctx context.Context, id string) error
	ToggleTheme(ctx context.Context) error
	Dump(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the myblog client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the session user and current view (from statusFn):
//
//	Always:
//	  - help             show available commands
//	  - home             go to the index view
//	  - blog | list      show your posts
//	  - theme            toggle light/dark theme
//	  - whoami           show the logged-in user
//	  - dump             print every stored key and value
//	  - reset            remove all stored data (asks first)
//	  - exit | quit      leave the program
//
//	Not logged in:
//	  - register         create an account
//	  - login            authenticate
//
//	Logged in:
//	  - new              write a post
//	  - edit <id>        edit a post
//	  - delete <id>      delete (hide) a post
//	  - print <id>       save a printable HTML page of a post
//	  - logout           log out
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("myblog %s> ", statusFn()))
		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		withID := func(fn func(context.Context, string) error) {
			if len(args) == 0 {
				printlnFn(fmt.Sprintf("Usage: %s <id>", cmd))
				return
			}
			_ = fn(ctx, args[0])
		}

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: blog, new, edit <id>, delete <id>, print <id>, theme, whoami, home, dump, reset, logout, exit")
			} else {
				printlnFn("Available commands: register, login, blog, theme, whoami, home, dump, reset, exit")
			}

		case "home":
			_ = a.Home(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "blog", "list":
			_ = a.Blog(ctx)

		case "new":
			_ = a.NewPost(ctx)

		case "edit":
			withID(a.Edit)

		case "delete":
			withID(a.Delete)

		case "print":
			withID(a.Print)

		case "theme":
			_ = a.ToggleTheme(ctx)

		case "dump":
			_ = a.Dump(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}
