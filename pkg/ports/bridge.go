package ports

import (
	"context"

	"github.com/aretw0/pastebutton/pkg/domain"
)

// Bridge connects the widget to its browser-side counterpart.
// Invoke renders the widget with the given params and returns the latest value
// the browser reported for it, or nil when there has been no interaction yet.
// The returned value is weakly typed: nil, a map with a "type" field, or a
// legacy string.
type Bridge interface {
	Invoke(ctx context.Context, params domain.BridgeParams) (any, error)
}

// BridgeFunc adapts a plain function to the Bridge interface.
type BridgeFunc func(ctx context.Context, params domain.BridgeParams) (any, error)

// Invoke calls f(ctx, params).
func (f BridgeFunc) Invoke(ctx context.Context, params domain.BridgeParams) (any, error) {
	return f(ctx, params)
}
