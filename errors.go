package ethtrading

import "github.com/HONGJICAI/ethereum-trading-mcp/internal/errors"

// Re-export error types from the internal package.

// ServerNotFoundError indicates the trading server binary was not found.
type ServerNotFoundError = errors.ServerNotFoundError

// ConnectionError indicates the session with the trading server could not be
// established.
type ConnectionError = errors.ConnectionError

// ToolCallError indicates a remote tool invocation failed at the protocol
// level.
type ToolCallError = errors.ToolCallError

// TradingError is the base interface for all errors raised by this module.
type TradingError = errors.TradingError

// Re-export sentinel errors from the internal package.
var (
	// ErrNoTextContent indicates a tool result carried no text content item.
	ErrNoTextContent = errors.ErrNoTextContent
)
