package mcp

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/pastebutton"
	"github.com/aretw0/pastebutton/internal/logging"
	"github.com/aretw0/pastebutton/pkg/adapters/notify"
	"github.com/aretw0/pastebutton/pkg/domain"
	"github.com/aretw0/pastebutton/pkg/observability"
	"github.com/aretw0/pastebutton/pkg/ports"
	"github.com/aretw0/pastebutton/pkg/response"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server exposes the paste button as an MCP tool, so agents can ask the user
// for a screenshot through the same bridge a notebook would use.
type Server struct {
	bridge    ports.Bridge
	session   ports.SessionStore
	metrics   *observability.Metrics
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithSessionStore tracks pasted images across tool calls.
func WithSessionStore(store ports.SessionStore) Option {
	return func(s *Server) {
		s.session = store
	}
}

// WithMetrics enables widget instrumentation.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(bridge ports.Bridge, opts ...Option) *Server {
	s := &Server{
		bridge:    bridge,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("pastebutton-mcp", strings.TrimSpace(pastebutton.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: paste_image
	pasteTool := mcp.NewTool("paste_image",
		mcp.WithDescription("Paste the image currently on the user's clipboard."),
		mcp.WithString("label", mcp.Description("Button label shown to the user (optional)")),
		mcp.WithString("key", mcp.Description("Widget instance key (optional)")),
		mcp.WithString("errors",
			mcp.Description("How to report clipboard errors: 'ignore' returns an empty result, 'raise' returns a tool error"),
			mcp.Enum(string(domain.ErrorsIgnore), string(domain.ErrorsRaise)),
		),
	)
	s.mcpServer.AddTool(pasteTool, s.handlePasteImage)
}

func (s *Server) handlePasteImage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label := request.GetString("label", "Paste image")
	key := request.GetString("key", domain.DefaultKey)
	mode := domain.ErrorMode(request.GetString("errors", string(domain.DefaultErrorMode)))

	rec := &notify.Recorder{}
	widget := pastebutton.New(s.bridge,
		pastebutton.WithSessionState(s.session),
		pastebutton.WithNotifier(rec),
		pastebutton.WithMetrics(s.metrics),
		pastebutton.WithLogger(s.logger),
	)

	result, err := widget.Button(ctx, label, pastebutton.WithKey(key), pastebutton.WithErrors(mode))
	if err != nil {
		s.logger.Error("paste_image failed", "key", key, "error", err)
		return nil, fmt.Errorf("paste_image failed: %w", err)
	}

	if err := pastebutton.RecordResult(ctx, s.session, result); err != nil {
		s.logger.Warn("Session update failed", "key", key, "error", err)
	}

	if n, ok := rec.Last(); ok {
		return mcp.NewToolResultError(n.Markdown), nil
	}

	switch {
	case result.IsPaste():
		data, err := response.EncodePNG(result.Image)
		if err != nil {
			return nil, err
		}
		b := result.Image.Bounds()
		text := fmt.Sprintf("Pasted %s image (%dx%d)", result.Format, b.Dx(), b.Dy())
		return mcp.NewToolResultImage(text, base64.StdEncoding.EncodeToString(data), "image/png"), nil
	case result.IsClear():
		return mcp.NewToolResultText("Pasted image cleared"), nil
	default:
		return mcp.NewToolResultText("No image pasted"), nil
	}
}
