// Package nav moves the client between its screens. The only screen the
// request layer ever asks for is the login entry point.
package nav

import (
	"context"
	"sync"
)

const (
	LoginPath = "/login"
	HomePath  = "/home/main"
)

// Redirector routes the user interface to path. It is fire-and-forget: it
// must not fail and must tolerate being asked for the current route.
type Redirector interface {
	Redirect(ctx context.Context, path string)
}

// Func adapts a function to Redirector.
type Func func(ctx context.Context, path string)

func (f Func) Redirect(ctx context.Context, path string) { f(ctx, path) }

// Router tracks the current route of the CLI.
type Router struct {
	mu      sync.RWMutex
	current string
	history []string
}

func NewRouter(start string) *Router {
	return &Router{current: start, history: []string{start}}
}

// Redirect switches to path. Redirecting to the current route is a no-op.
func (r *Router) Redirect(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == path {
		return
	}
	r.current = path
	r.history = append(r.history, path)
}

func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// OnLogin reports whether the login screen is showing.
func (r *Router) OnLogin() bool {
	return r.Current() == LoginPath
}

func (r *Router) History() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.history...)
}
