//go:build !linux || clipboard_x11

package clipboard

import (
	"context"
	"fmt"
	"sync"

	xclipboard "golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

// SystemReader reads the image slot of the system clipboard.
func SystemReader(ctx context.Context) ([]byte, error) {
	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("clipboard unavailable: %w", initErr)
	}
	data := xclipboard.Read(xclipboard.FmtImage)
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	return data, nil
}
