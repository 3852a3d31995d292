package ethtrading

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Session is the subset of the MCP client session the driver uses.
// *mcp.ClientSession satisfies it; tests substitute fakes.
type Session interface {
	ListTools(ctx context.Context, params *mcp.ListToolsParams) (*mcp.ListToolsResult, error)
	CallTool(ctx context.Context, params *mcp.CallToolParams) (*mcp.CallToolResult, error)
	Close() error
}

// Connector establishes a session to a trading server described by the launch
// configuration. The returned session has completed the initialize handshake.
type Connector func(ctx context.Context, cfg *LaunchConfig) (Session, error)

// Example arguments for the demonstration calls. The wallet is Vitalik's
// address; the swap quotes 1 WETH into USDC.
const (
	demoWalletAddress = "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"
	demoTokenAddress  = "0x1f9840a85d5aF5bf1D1762F925BDADdC4201F984"
	demoFromToken     = "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"
	demoToToken       = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

type demoCall struct {
	label string
	name  string
	args  map[string]any
}

// demoCalls returns the fixed invocation sequence. Arguments are literals;
// nothing flows from one call into the next.
func demoCalls() []demoCall {
	return []demoCall{
		{
			label: "Getting ETH balance...",
			name:  "get_balance",
			args: map[string]any{
				"address": demoWalletAddress,
			},
		},
		{
			label: "Getting UNI token price in USD...",
			name:  "get_token_price",
			args: map[string]any{
				"token_address":  demoTokenAddress,
				"quote_currency": "USD",
			},
		},
		{
			label: "Simulating token swap (1 WETH -> USDC)...",
			name:  "swap_tokens",
			args: map[string]any{
				"from_token":         demoFromToken,
				"to_token":           demoToToken,
				"amount":             "1.0",
				"slippage_tolerance": 0.5,
			},
		},
	}
}

// Run executes one end-to-end demonstration against the trading server. It
// connects, prints the available tools, then invokes the three example calls
// in order and prints each textual result.
//
// The run is strictly sequential and fail-fast. The session is closed exactly
// once on every exit path.
func Run(ctx context.Context, opts ...Option) error {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	out := options.Output
	if out == nil {
		out = os.Stdout
	}

	connect := options.Connector
	if connect == nil {
		connect = commandConnector(log)
	}

	cfg := newLaunchConfig(options)
	log.Info("Connecting to trading server", "chain_id", cfg.Env[envChainID])

	session, err := connect(ctx, cfg)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn("Failed to close session", "error", closeErr)
		}
	}()

	fmt.Fprintf(out, "Connected to Ethereum Trading MCP Server\n\n")

	list, err := session.ListTools(ctx, nil)
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}

	fmt.Fprintln(out, "Available tools:")

	for _, tool := range list.Tools {
		fmt.Fprintf(out, "  - %s: %s\n", tool.Name, tool.Description)
	}

	fmt.Fprintln(out)

	for _, call := range demoCalls() {
		log.Debug("Calling tool", "tool", call.name)
		fmt.Fprintln(out, call.label)

		res, err := session.CallTool(ctx, &mcp.CallToolParams{
			Name:      call.name,
			Arguments: call.args,
		})
		if err != nil {
			return &ToolCallError{Tool: call.name, Err: err}
		}

		text, err := firstText(res)
		if err != nil {
			return &ToolCallError{Tool: call.name, Err: err}
		}

		fmt.Fprintf(out, "Result: %s\n\n", text)
	}

	log.Info("Demonstration run completed")

	return nil
}

// firstText returns the first text content item of a result.
func firstText(res *mcp.CallToolResult) (string, error) {
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			return text.Text, nil
		}
	}

	return "", ErrNoTextContent
}
