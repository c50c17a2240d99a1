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
	onLogin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Avatar(ctx context.Context) error
	Password(ctx context.Context) error
	Check(ctx context.Context, username string) error
}

// publicCommands may run while the router is on the login screen.
var publicCommands = map[string]bool{
	"help":     true,
	"register": true,
	"login":    true,
	"check":    true,
	"exit":     true,
	"quit":     true,
}

// runREPL starts a simple read–eval–print loop for the portal CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, on context cancellation, or when the user
// types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	On the login screen:
//	  - help               show available commands
//	  - register           create an account
//	  - login              authenticate
//	  - check <username>   ask whether a username is free
//	  - exit | quit        leave the program
//
//	Logged in, additionally:
//	  - whoami             show the cached profile and credential details
//	  - profile            reload the profile from the server
//	  - edit               change username, email and phone
//	  - avatar             change the avatar URL
//	  - password           change the password
//	  - logout             log out
//
// A forced logout (the server answered 401) moves the router to the login
// screen, so the next prompt only offers the login-screen commands.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("portal %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if a.onLogin() && !publicCommands[cmd] && isCommand(cmd) {
			printlnFn("Please log in first (type 'help' for commands)")
			continue
		}

		switch cmd {
		case "help":
			if a.onLogin() {
				printlnFn("Available commands: register, login, check <username>, exit")
			} else {
				printlnFn("Available commands: whoami, profile, edit, avatar, password, check <username>, logout, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "avatar":
			_ = a.Avatar(ctx)

		case "password":
			_ = a.Password(ctx)

		case "check":
			if len(args) == 0 {
				printlnFn("Usage: check <username>")
				continue
			}
			_ = a.Check(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isCommand(cmd string) bool {
	switch cmd {
	case "whoami", "profile", "edit", "avatar", "password", "logout":
		return true
	}
	return publicCommands[cmd]
}
