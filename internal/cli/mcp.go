package cli

import (
	"log"
	"os"

	"github.com/aretw0/pastebutton/pkg/adapters/clipboard"
	"github.com/aretw0/pastebutton/pkg/adapters/mcp"
)

// RunMCP serves the paste_image tool over stdio.
func RunMCP(opts Options) error {
	cfg, logger, err := opts.load()
	if err != nil {
		return err
	}

	session, closer := openSession(cfg.Session, logger)
	defer closer.Close()

	srv := mcp.NewServer(clipboard.NewBridge(nil),
		mcp.WithSessionStore(session),
		mcp.WithLogger(logger),
	)

	// Ensure logs don't corrupt JSON-RPC on Stdout
	log.SetOutput(os.Stderr)
	logger.Info("Starting pastebutton MCP Server (Stdio)")
	return srv.ServeStdio()
}
