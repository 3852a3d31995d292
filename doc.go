// Package ethtrading provides a client for the Ethereum Trading MCP server.
//
// The server exposes three tools over the Model Context Protocol: balance
// queries, token price lookups, and swap simulations. This package launches
// the server as a subprocess, speaks MCP to it over stdio, and drives a
// fixed demonstration sequence against those tools.
//
// # Basic Usage
//
//	ctx := context.Background()
//	err := ethtrading.Run(ctx,
//	    ethtrading.WithRPCURL("https://eth.llamarpc.com"),
//	    ethtrading.WithChainID(1),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Run locates the server binary (explicit path, then PATH, then common
// installation directories), starts it with the RPC endpoint, private key,
// and chain id in its environment, performs the initialize handshake, lists
// the available tools, and invokes each of the three tools once with fixed
// example arguments, printing the results.
//
// # Configuration
//
// Every connection value has a default and an environment override:
// ETH_RPC_URL, PRIVATE_KEY, and CHAIN_ID. Explicit options win over the
// environment.
//
// # Logging
//
// For operation tracking, pass a logger with WithLogger:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	err := ethtrading.Run(ctx, ethtrading.WithLogger(logger))
//
// Without it, the driver is silent apart from its printed results.
//
// # Error Handling
//
// The run is fail-fast: the first failed step terminates it and the error
// propagates to the caller. Typed errors identify the failure:
//
//	var nfe *ethtrading.ServerNotFoundError
//	if errors.As(err, &nfe) {
//	    log.Fatalf("server not installed, searched: %v", nfe.SearchedPaths)
//	}
package ethtrading
