package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/pastebutton/internal/config"
	"github.com/aretw0/pastebutton/internal/logging"
	"github.com/aretw0/pastebutton/pkg/adapters/memory"
	"github.com/aretw0/pastebutton/pkg/adapters/redis"
	"github.com/aretw0/pastebutton/pkg/ports"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// Options are the settings shared by every command.
type Options struct {
	ConfigPath string
	LogLevel   string // overrides the config file when set
}

func (o Options) load() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return cfg, logging.NewNop(), err
	}
	level := cfg.LogLevel
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	return cfg, logging.New(logging.ParseLevel(level)), nil
}

// openSession builds the configured session store. The returned closer is never nil.
func openSession(cfg config.Session, logger *slog.Logger) (ports.SessionStore, io.Closer) {
	switch cfg.Backend {
	case "redis":
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.ID,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.TTL),
			redis.WithLogger(logger),
		)
		logger.Info("Using redis session state", "addr", cfg.Redis.Addr, "session_id", cfg.ID)
		return store, store
	default:
		logger.Debug("Using in-memory session state", "session_id", cfg.ID)
		return memory.NewSessionStore(), io.NopCloser(nil)
	}
}

// printSystemMessage prints a standardized system message to w.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
