package pastebutton

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/pastebutton/internal/logging"
	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/observability"
	"github.com/aretw0/pastebutton/pkg/ports"
	"github.com/aretw0/pastebutton/pkg/response"
)

// Widget is the high-level entry point of the library.
// It renders the paste button through a Bridge and decodes what comes back.
type Widget struct {
	bridge   ports.Bridge
	session  ports.SessionState
	notifier ports.Notifier
	metrics  *observability.Metrics
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Widget.
type Option func(*Widget)

// WithSessionState sets the host session state used to compute has_image.
// Without it, has_image is always false.
func WithSessionState(s ports.SessionState) Option {
	return func(w *Widget) {
		w.session = s
	}
}

// WithNotifier sets where error notifications go when errors are raised.
func WithNotifier(n ports.Notifier) Option {
	return func(w *Widget) {
		w.notifier = n
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(w *Widget) {
		w.metrics = m
	}
}

// WithLogger sets a custom structured logger for the widget.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Widget) {
		w.logger = logger
	}
}

// New creates a Widget that talks to the browser side through bridge.
func New(bridge ports.Bridge, opts ...Option) *Widget {
	w := &Widget{
		bridge: bridge,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Button renders a paste button with the given label and returns what the user did.
//
// The result is empty when nothing happened yet, when the browser reported an
// error, or when the reply could not be classified. Browser errors are never
// returned as err: with WithErrors(domain.ErrorsRaise) they are shown through
// the Notifier instead. err is only set when the bridge call fails or a pasted
// payload cannot be decoded.
func (w *Widget) Button(ctx context.Context, label string, opts ...ButtonOption) (domain.PasteResult, error) {
	cfg := newButtonConfig(label, opts...)
	cfg.params.HasImage = HasImage(ctx, w.session)

	start := time.Now()
	raw, err := w.bridge.Invoke(ctx, cfg.params)
	w.metrics.ObserveBridge(time.Since(start))
	if err != nil {
		return domain.PasteResult{}, fmt.Errorf("bridge invoke failed for %q: %w", cfg.params.Key, err)
	}

	resp := response.Normalize(raw)
	w.metrics.ObserveResult(resp.Kind.String())
	w.logger.Debug("Bridge response", "key", cfg.params.Key, "kind", resp.Kind.String(), "legacy", resp.Legacy, "has_image", cfg.params.HasImage)

	switch resp.Kind {
	case domain.ResponseClear:
		return domain.PasteResult{Action: domain.ActionClear}, nil

	case domain.ResponseError:
		w.raise(ctx, cfg, resp)
		return domain.PasteResult{}, nil

	case domain.ResponseImage:
		img, format, err := response.DecodeDataURL(resp.DataURL)
		if err != nil {
			w.metrics.ObserveDecodeFailure()
			return domain.PasteResult{}, fmt.Errorf("failed to decode pasted image: %w", err)
		}
		return domain.PasteResult{Image: img, Format: format, Action: domain.ActionPaste}, nil

	default:
		return domain.PasteResult{}, nil
	}
}

func (w *Widget) raise(ctx context.Context, cfg buttonConfig, resp domain.Response) {
	w.logger.Debug("Browser reported error", "key", cfg.params.Key, "message", resp.Message, "mode", string(cfg.errors))
	if !cfg.errors.Raise() || w.notifier == nil {
		return
	}
	w.notifier.Notify(ctx, response.FormatNotification(resp))
	w.metrics.ObserveNotification()
}
