// Package clipboard implements ports.Bridge on top of the local system clipboard.
//
// It is the headless counterpart of the browser component: every Invoke is a
// click on the paste button. It replies with the same records the browser
// sends, so the widget cannot tell the two apart.
package clipboard

import (
	"context"
	"errors"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/response"
)

// ErrNoImage is returned by a Reader when the clipboard holds no image.
var ErrNoImage = errors.New("no image on clipboard")

// Reader returns PNG-encoded bytes from a clipboard.
type Reader func(ctx context.Context) ([]byte, error)

// Bridge answers every Invoke with the current clipboard image.
type Bridge struct {
	read Reader
}

// NewBridge creates a Bridge. A nil reader means SystemReader.
func NewBridge(read Reader) *Bridge {
	if read == nil {
		read = SystemReader
	}
	return &Bridge{read: read}
}

// Invoke reads the clipboard. Clipboard failures are reported in-band as
// {type: "error"} records, never as Go errors.
func (b *Bridge) Invoke(ctx context.Context, params domain.BridgeParams) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := b.read(ctx)
	if errors.Is(err, ErrNoImage) || (err == nil && len(data) == 0) {
		return map[string]any{
			domain.FieldType:    domain.TypeError,
			domain.FieldMessage: domain.NoImageBrowserReason,
		}, nil
	}
	if err != nil {
		return map[string]any{
			domain.FieldType:    domain.TypeError,
			domain.FieldMessage: "ClipboardError: " + err.Error(),
		}, nil
	}

	return map[string]any{
		domain.FieldType: domain.TypeImage,
		domain.FieldData: response.PNGDataURL(data),
	}, nil
}
