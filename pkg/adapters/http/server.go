package http

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/pastebutton"
	"github.com/aretw0/pastebutton/internal/logging"
	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/go-chi/chi/v5"
)

//go:embed frontend
var frontend embed.FS

var pageTemplate = template.Must(template.ParseFS(frontend, "frontend/index.html"))

// DefaultMaxValueBytes bounds a reported value. It fits a 4K screenshot as a
// base64 PNG data URL with room to spare.
const DefaultMaxValueBytes = 32 << 20

// ValueHook runs after the browser reported a new value for a widget.
// Hosts use it to re-render, the same way a notebook reruns on widget events.
type ValueHook func(ctx context.Context, key string)

// Server is the HTTP side of the widget bridge.
// It serves the browser component, receives the values it reports and
// implements ports.Bridge so the widget can read them back.
type Server struct {
	mu      sync.RWMutex
	values  map[string]any
	params  map[string]domain.BridgeParams
	onValue ValueHook
	metrics http.Handler
	logger  *slog.Logger

	maxValueBytes int64
	allowOrigin   string
}

// Option configures the Server.
type Option func(*Server)

// WithValueHook registers a hook fired after every reported value.
func WithValueHook(hook ValueHook) Option {
	return func(s *Server) {
		s.onValue = hook
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithMaxValueBytes bounds the body of a value POST. Larger bodies get 413.
func WithMaxValueBytes(n int64) Option {
	return func(s *Server) {
		s.maxValueBytes = n
	}
}

// WithAllowedOrigin enables CORS for origin ("*" for any).
// The component page is same-origin and needs none.
func WithAllowedOrigin(origin string) Option {
	return func(s *Server) {
		s.allowOrigin = origin
	}
}

// WithLogger configures a logger for request errors.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a bridge server with no widget values yet.
func NewServer(opts ...Option) *Server {
	s := &Server{
		values: make(map[string]any),
		params: make(map[string]domain.BridgeParams),
		logger: logging.NewNop(),

		maxValueBytes: DefaultMaxValueBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Invoke records the render params for the widget and returns the last value
// the browser reported for it. Values persist until the browser replaces them.
func (s *Server) Invoke(ctx context.Context, params domain.BridgeParams) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params[params.Key] = params
	return s.values[params.Key], nil
}

// Handler returns the HTTP routes of the bridge.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.health)
	r.Get("/info", s.info)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	assets, _ := fs.Sub(frontend, "frontend")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assets))))

	r.Route("/component/{key}", func(r chi.Router) {
		r.Get("/", s.page)
		r.Get("/args", s.args)
		r.Post("/value", s.setValue)
	})

	if s.allowOrigin == "" {
		return r
	}
	return enableCORS(s.allowOrigin, r)
}

func enableCORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":     "pastebutton-http",
		"version": strings.TrimSpace(pastebutton.Version),
	})
}

type pageData struct {
	Key  string              `json:"key"`
	Args domain.BridgeParams `json:"args"`
}

func (s *Server) lookupParams(key string) (domain.BridgeParams, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.params[key]
	return p, ok
}

// page serves the browser component for a widget the host already rendered.
func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	params, ok := s.lookupParams(key)
	if !ok {
		http.Error(w, "Component not rendered", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, pageData{Key: key, Args: params}); err != nil {
		s.logger.Error("Component page render failed", "key", key, "error", err)
	}
}

func (s *Server) args(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	params, ok := s.lookupParams(key)
	if !ok {
		http.Error(w, "Component not rendered", http.StatusNotFound)
		return
	}
	writeJSON(w, s.logger, params)
}

// setValue stores whatever JSON the browser sent. The shape is not checked
// here; classification is the widget's job.
func (s *Server) setValue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	body := http.MaxBytesReader(w, r.Body, s.maxValueBytes)

	var value any
	if err := json.NewDecoder(body).Decode(&value); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			s.logger.Warn("SetValue: Request body too large", "key", key, "limit", tooLarge.Limit)
			return
		}
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("SetValue: Invalid request body", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	s.values[key] = value
	s.mu.Unlock()

	s.logger.Debug("Component value received", "key", key)
	if s.onValue != nil {
		s.onValue(r.Context(), key)
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "error", err)
	}
}
