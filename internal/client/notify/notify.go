// Package notify delivers short, non-blocking messages to the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Notifier shows a transient error message. Implementations must not block
// for long and must not panic.
type Notifier interface {
	Error(ctx context.Context, msg string)
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, msg string)

func (f Func) Error(ctx context.Context, msg string) { f(ctx, msg) }

// Writer prints messages to an io.Writer, one per line.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) Error(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "! %s\n", msg)
}

// Recorder keeps every message. Handy in tests.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *Recorder) Error(_ context.Context, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
