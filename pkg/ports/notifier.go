package ports

import (
	"context"

	"github.com/aretw0/pastebutton/pkg/domain"
)

// Notifier displays a user-facing notification. It has no return value:
// a notification is a side effect and never changes the widget result.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(ctx context.Context, n domain.Notification)

// Notify calls f(ctx, n).
func (f NotifierFunc) Notify(ctx context.Context, n domain.Notification) {
	f(ctx, n)
}
