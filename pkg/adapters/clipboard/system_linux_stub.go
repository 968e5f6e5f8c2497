//go:build linux && !clipboard_x11

package clipboard

import (
	"context"
	"errors"
)

// SystemReader needs X11; build with -tags clipboard_x11 to enable it on Linux.
func SystemReader(ctx context.Context) ([]byte, error) {
	return nil, errors.New("clipboard unavailable: built without clipboard_x11 tag")
}
