package cli

import (
	"context"
	"fmt"
)

// getStatus renders the prompt status: the signed-in username, if any, and
// the current route.
func (a *App) getStatus() string {
	s := ""
	if p := a.store.Profile(); p.Username != "" && !a.router.OnLogin() {
		s = p.Username + " "
	}
	s += a.router.Current()
	return fmt.Sprintf("(%s)", s)
}

// Root prints the banner and runs the REPL on the app's input.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the portal CLI (type 'help' for commands)")
	if a.router.OnLogin() {
		fmt.Fprintln(a.out, "You are not logged in: use 'login' or 'register'")
	} else if p := a.store.Profile(); p.Username != "" {
		fmt.Fprintf(a.out, "Session restored for %s\n", p.Username)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}
