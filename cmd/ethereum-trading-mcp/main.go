// Command ethereum-trading-mcp serves Ethereum trading tools over the
// Model Context Protocol on stdio.
//
// Configuration comes from the environment: ETH_RPC_URL and PRIVATE_KEY are
// required, CHAIN_ID defaults to mainnet.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/HONGJICAI/ethereum-trading-mcp/internal/config"
	"github.com/HONGJICAI/ethereum-trading-mcp/internal/eth"
	"github.com/HONGJICAI/ethereum-trading-mcp/internal/server"
	"github.com/HONGJICAI/ethereum-trading-mcp/internal/tools"
)

func main() {
	// Stdout carries the protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(context.Background(), log); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	client, err := eth.NewRPCClient(ctx, cfg.RPCURL, cfg.PrivateKey, cfg.ChainID, log)
	if err != nil {
		return err
	}

	router := eth.NewUniswapV2Router(client.Backend(), log)

	srv := server.New(log,
		tools.NewGetBalance(client),
		tools.NewGetTokenPrice(router),
		tools.NewSwapTokens(client, router),
	)

	log.Info("Starting Ethereum Trading MCP server", "chain_id", cfg.ChainID)

	return srv.Run(ctx, &mcp.StdioTransport{})
}
