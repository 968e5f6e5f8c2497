package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aretw0/pastebutton"
	"github.com/aretw0/pastebutton/internal/presentation/tui"
	httpAdapter "github.com/aretw0/pastebutton/pkg/adapters/http"
	"github.com/aretw0/pastebutton/pkg/adapters/notify"
	"github.com/aretw0/pastebutton/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServeOptions configures RunServe.
type ServeOptions struct {
	Options
	Addr string // overrides server.addr when set
}

// RunServe starts the HTTP bridge with a demo host that saves pasted images.
func RunServe(opts ServeOptions) error {
	cfg, logger, err := opts.load()
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}

	session, closer := openSession(cfg.Session, logger)
	defer closer.Close()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	h := &host{
		button:  cfg.Button,
		session: session,
		outDir:  cfg.Server.OutputDir,
		out:     os.Stdout,
		logger:  logger,
		now:     time.Now,
	}

	serverOpts := []httpAdapter.Option{
		httpAdapter.WithLogger(logger),
		httpAdapter.WithValueHook(h.rerun),
	}
	if cfg.Server.AllowedOrigin != "" {
		serverOpts = append(serverOpts, httpAdapter.WithAllowedOrigin(cfg.Server.AllowedOrigin))
	}
	if cfg.Server.MaxValueBytes > 0 {
		serverOpts = append(serverOpts, httpAdapter.WithMaxValueBytes(cfg.Server.MaxValueBytes))
	}
	if cfg.Server.Metrics {
		serverOpts = append(serverOpts, httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}
	bridge := httpAdapter.NewServer(serverOpts...)

	h.widget = pastebutton.New(bridge,
		pastebutton.WithSessionState(session),
		pastebutton.WithNotifier(notify.NewLog(logger)),
		pastebutton.WithMetrics(metrics),
		pastebutton.WithLogger(logger),
	)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	// First render registers the component so its page can be served.
	if _, _, err := h.render(sigCtx); err != nil {
		return fmt.Errorf("initial render failed: %w", err)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: bridge.Handler(),
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		tui.PrintBanner(os.Stdout, strings.TrimSpace(pastebutton.Version))
		printSystemMessage(os.Stdout, "Paste button at http://localhost%s/component/%s/", displayAddr(srv.Addr), cfg.Button.Key)
		logger.Info("Starting bridge server", "addr", srv.Addr, "metrics", cfg.Server.Metrics)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-sigCtx.Done():
		logger.Info("Start shutdown", "signal", sigCtx.Signal())

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("Bridge server stopped gracefully")
		return nil
	}
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return addr
	}
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":" + addr
}
