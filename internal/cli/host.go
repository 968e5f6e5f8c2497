package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/pastebutton"
	"github.com/aretw0/pastebutton/internal/config"
	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/ports"
	"github.com/aretw0/pastebutton/pkg/response"
)

// host plays the part of the notebook application: it renders the button,
// keeps the session marker current and stores pasted images on disk.
type host struct {
	widget  *pastebutton.Widget
	button  config.Button
	session ports.SessionStore
	outDir  string
	out     io.Writer
	logger  *slog.Logger
	now     func() time.Time
}

// render runs one widget invocation and applies its result to the session.
// It returns the path of the saved image, if any.
func (h *host) render(ctx context.Context) (domain.PasteResult, string, error) {
	result, err := h.widget.Button(ctx, h.button.Label,
		pastebutton.WithStyle(h.button.Style()),
		pastebutton.WithErrors(h.button.Errors),
	)
	if err != nil {
		return result, "", err
	}

	if err := pastebutton.RecordResult(ctx, h.session, result); err != nil {
		h.logger.Warn("Session update failed", "error", err)
	}

	if !result.IsPaste() {
		return result, "", nil
	}

	path, err := savePNG(h.outDir, h.button.Key, result, h.now())
	if err != nil {
		return result, "", err
	}
	return result, path, nil
}

// rerun is the bridge value hook.
func (h *host) rerun(ctx context.Context, key string) {
	if key != h.button.Key {
		h.logger.Debug("Ignoring value for unknown widget", "key", key)
		return
	}

	result, path, err := h.render(ctx)
	if err != nil {
		h.logger.Error("Render failed", "key", key, "error", err)
		return
	}

	switch {
	case result.IsPaste():
		b := result.Image.Bounds()
		printSystemMessage(h.out, "Pasted %s image (%dx%d) saved to %s", result.Format, b.Dx(), b.Dy(), path)
	case result.IsClear():
		printSystemMessage(h.out, "Pasted image cleared")
	default:
		return
	}

	// The session changed after the bridge saw has_image; render again so the
	// browser picks up the new value.
	if _, err := h.widget.Button(ctx, h.button.Label,
		pastebutton.WithStyle(h.button.Style()),
		pastebutton.WithErrors(domain.ErrorsIgnore),
	); err != nil {
		h.logger.Debug("Refresh render failed", "key", key, "error", err)
	}
}

// savePNG writes the pasted image to dir as "<key>-<timestamp>.png".
func savePNG(dir, key string, result domain.PasteResult, at time.Time) (string, error) {
	data, err := response.EncodePNG(result.Image)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", key, at.UTC().Format("20060102T150405.000")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}
