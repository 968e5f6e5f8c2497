// Package notify provides ports.Notifier implementations for terminals, logs and tests.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/aretw0/pastebutton/pkg/domain"
)

// Renderer turns Markdown into display text.
type Renderer func(markdown string) (string, error)

// Terminal writes notifications to w, rendered through an optional Markdown renderer.
type Terminal struct {
	w      io.Writer
	render Renderer
	mu     sync.Mutex
}

// NewTerminal creates a Terminal notifier. A nil render prints the Markdown as-is.
func NewTerminal(w io.Writer, render Renderer) *Terminal {
	return &Terminal{w: w, render: render}
}

// Notify prints the notification prefixed with its icon.
func (t *Terminal) Notify(ctx context.Context, n domain.Notification) {
	text := n.Icon + " " + n.Markdown
	if t.render != nil {
		if out, err := t.render(text); err == nil {
			text = strings.TrimRight(out, "\n")
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, text)
}

// Log emits notifications as structured log records.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a Log notifier.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Notify logs the notification at error level.
func (l *Log) Notify(ctx context.Context, n domain.Notification) {
	l.logger.ErrorContext(ctx, "Paste button error", "icon", n.Icon, "message", n.Markdown)
}

// Recorder keeps every notification in memory.
type Recorder struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

// Notify records n.
func (r *Recorder) Notify(ctx context.Context, n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return domain.Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}
