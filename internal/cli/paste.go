package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/pastebutton"
	"github.com/aretw0/pastebutton/internal/presentation/tui"
	"github.com/aretw0/pastebutton/pkg/adapters/clipboard"
	"github.com/aretw0/pastebutton/pkg/adapters/notify"
	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/ports"
)

// ErrNothingPasted is returned by RunPaste when the clipboard yielded no image.
var ErrNothingPasted = errors.New("nothing pasted")

// PasteOptions configures RunPaste.
type PasteOptions struct {
	Options
	Out    string           // output file; defaults to a timestamped file in server.output_dir
	Errors domain.ErrorMode // overrides button.errors when set
}

// RunPaste presses the button once against the local clipboard.
func RunPaste(opts PasteOptions) error {
	return runPaste(context.Background(), opts, clipboard.NewBridge(nil), os.Stdout, os.Stderr)
}

func runPaste(ctx context.Context, opts PasteOptions, bridge ports.Bridge, stdout, stderr io.Writer) error {
	cfg, logger, err := opts.load()
	if err != nil {
		return err
	}
	if opts.Errors != "" {
		cfg.Button.Errors = opts.Errors
	}

	session, closer := openSession(cfg.Session, logger)
	defer closer.Close()

	styled := isTerminal(stderr)
	var render notify.Renderer
	if styled {
		render = tui.NewRenderer()
	}

	h := &host{
		widget: pastebutton.New(bridge,
			pastebutton.WithSessionState(session),
			pastebutton.WithNotifier(notify.NewTerminal(stderr, render)),
			pastebutton.WithLogger(logger),
		),
		button:  cfg.Button,
		session: session,
		outDir:  cfg.Server.OutputDir,
		out:     stdout,
		logger:  logger,
		now:     time.Now,
	}
	if opts.Out != "" {
		h.outDir = filepath.Dir(opts.Out)
	}

	if styled {
		fmt.Fprintln(stderr, tui.Swatch(cfg.Button.Style()))
	}

	result, path, err := h.render(ctx)
	if err != nil {
		return err
	}
	if !result.IsPaste() {
		return ErrNothingPasted
	}

	if opts.Out != "" {
		if err := os.Rename(path, opts.Out); err != nil {
			return fmt.Errorf("failed to move image: %w", err)
		}
		path = opts.Out
	}

	b := result.Image.Bounds()
	fmt.Fprintf(stdout, "%s\t%s\t%dx%d\n", path, result.Format, b.Dx(), b.Dy())
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && tui.IsTerminal(f)
}
