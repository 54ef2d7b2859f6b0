// ABOUTME: MCP server setup for the workout store.
// ABOUTME: Wraps the MCP server with storage and the progression engine.
package mcp

import (
	"context"
	"log/slog"
	"os"

	"github.com/liftlab/meso/internal/progression"
	"github.com/liftlab/meso/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	engine    *progression.Engine
}

// NewServer creates a new MCP server over the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "meso",
			Version: "1.0.0",
		},
		nil,
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		engine:    progression.NewEngine(repo, logger),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
