package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedBridge(value any) ports.Bridge {
	return ports.BridgeFunc(func(ctx context.Context, p domain.BridgeParams) (any, error) {
		return value, nil
	})
}

func TestRunPaste_WritesImage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "shot.png")
	var stdout, stderr bytes.Buffer

	opts := PasteOptions{
		Options: Options{ConfigPath: filepath.Join(dir, "missing.yaml")},
		Out:     out,
	}
	err := runPaste(context.Background(), opts, fixedBridge(map[string]any{"type": "image", "data": redDataURL(t)}), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, out+"\tpng\t2x2\n", stdout.String())
	_, err = os.Stat(out)
	assert.NoError(t, err)
}

func TestRunPaste_NoImage(t *testing.T) {
	dir := t.TempDir()
	noImage := map[string]any{"type": "error", "message": "No image found in clipboard"}

	t.Run("ignore", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		opts := PasteOptions{Options: Options{ConfigPath: filepath.Join(dir, "missing.yaml")}}

		err := runPaste(context.Background(), opts, fixedBridge(noImage), &stdout, &stderr)
		assert.ErrorIs(t, err, ErrNothingPasted)
		assert.Empty(t, stderr.String())
	})

	t.Run("raise", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		opts := PasteOptions{
			Options: Options{ConfigPath: filepath.Join(dir, "missing.yaml")},
			Errors:  domain.ErrorsRaise,
		}

		err := runPaste(context.Background(), opts, fixedBridge(noImage), &stdout, &stderr)
		assert.ErrorIs(t, err, ErrNothingPasted)
		assert.Equal(t, "🚨 **Error**: No image found in clipboard\n", stderr.String())
	})
}

func TestRunPaste_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("session:\n  backend: etcd\n"), 0644))

	err := runPaste(context.Background(), PasteOptions{Options: Options{ConfigPath: path}}, fixedBridge(nil), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "session backend")
}
