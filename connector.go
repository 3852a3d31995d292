package ethtrading

import (
	"context"
	"log/slog"
	"os"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/launch"
	"github.com/HONGJICAI/ethereum-trading-mcp/internal/server"
)

// clientName identifies this driver in the initialize handshake.
const clientName = "trading-client"

// commandConnector returns the default connector: locate the server binary,
// launch it as a subprocess, and handshake over its stdio.
func commandConnector(log *slog.Logger) Connector {
	return func(ctx context.Context, cfg *LaunchConfig) (Session, error) {
		path, err := launch.Find(log, cfg.Command)
		if err != nil {
			return nil, err
		}

		cmd := exec.CommandContext(ctx, path, cfg.Args...)
		cmd.Env = cfg.Environ()
		cmd.Stderr = os.Stderr

		log.Info("Launching trading server", "path", path)

		client := mcp.NewClient(&mcp.Implementation{
			Name:    clientName,
			Version: server.Version,
		}, nil)

		session, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
		if err != nil {
			return nil, &ConnectionError{Err: err}
		}

		return session, nil
	}
}
