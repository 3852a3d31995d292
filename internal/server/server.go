// Package server wires the trading tools into an MCP server.
package server

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/tools"
)

const (
	// Name identifies the server in the initialize handshake.
	Name = "ethereum-trading-mcp"

	// Version is the server version reported to clients.
	Version = "0.1.0"

	instructions = "Ethereum Trading MCP Server - Provides tools for querying balances, " +
		"getting token prices, and simulating swaps on Ethereum"
)

// Server hosts the trading tools over the MCP protocol.
type Server struct {
	srv *mcp.Server
	log *slog.Logger
}

// New creates a server with the given tools registered.
// A nil logger disables logging.
func New(log *slog.Logger, toolset ...tools.Tool) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	srv := mcp.NewServer(
		&mcp.Implementation{Name: Name, Version: Version},
		&mcp.ServerOptions{Instructions: instructions},
	)

	s := &Server{
		srv: srv,
		log: log.With("component", "mcp_server"),
	}

	for _, t := range toolset {
		srv.AddTool(&mcp.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
		}, s.dispatch(t))
	}

	return s
}

// dispatch wraps a tool with per-call logging. Every invocation gets a ULID
// so concurrent calls can be told apart in the logs.
func (s *Server) dispatch(t tools.Tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.log.With("tool", t.Name(), "call_id", ulid.Make().String())
		log.Info("Dispatching tool call")

		start := time.Now()

		res, err := t.Call(ctx, req)
		if err != nil {
			log.Error("Tool call failed", "error", err, "duration", time.Since(start))

			return nil, err
		}

		log.Debug("Tool call completed", "duration", time.Since(start), "is_error", res.IsError)

		return res, nil
	}
}

// Run serves MCP over the given transport until the client disconnects or the
// context is cancelled.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	s.log.Info("Server ready", "name", Name, "version", Version)

	return s.srv.Run(ctx, t)
}

// Connect attaches the server to a single transport without blocking.
// Used by tests driving the server over in-memory transports.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.srv.Connect(ctx, t, nil)
}
