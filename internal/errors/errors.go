package errors

import (
	"errors"
	"fmt"
)

// TradingError is the base interface for all errors raised by this module.
type TradingError interface {
	error
	IsTradingError() bool
}

// Compile-time verification that all error types implement TradingError.
var (
	_ TradingError = (*ServerNotFoundError)(nil)
	_ TradingError = (*ConnectionError)(nil)
	_ TradingError = (*ToolCallError)(nil)
)

// Sentinel errors for commonly checked conditions.
var (
	// ErrNoTextContent indicates a tool result carried no text content item.
	ErrNoTextContent = errors.New("tool result contains no text content")

	// ErrMissingToken indicates neither a token address nor a token symbol was given.
	ErrMissingToken = errors.New("either token_address or token_symbol must be provided")
)

// ServerNotFoundError indicates the trading server binary was not found.
type ServerNotFoundError struct {
	SearchedPaths []string
}

func (e *ServerNotFoundError) Error() string {
	return fmt.Sprintf("trading server binary not found in: %v", e.SearchedPaths)
}

// IsTradingError implements TradingError.
func (e *ServerNotFoundError) IsTradingError() bool { return true }

// ConnectionError indicates the session with the trading server could not be
// established. The handshake is part of session setup, so a failed initialize
// exchange surfaces here as well.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to trading server: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsTradingError implements TradingError.
func (e *ConnectionError) IsTradingError() bool { return true }

// ToolCallError indicates a remote tool invocation failed at the protocol
// level. Tool-level failures (bad arguments, RPC errors) come back as error
// results instead and do not produce a ToolCallError.
type ToolCallError struct {
	Tool string
	Err  error
}

func (e *ToolCallError) Error() string {
	return fmt.Sprintf("tool call %q failed: %v", e.Tool, e.Err)
}

func (e *ToolCallError) Unwrap() error {
	return e.Err
}

// IsTradingError implements TradingError.
func (e *ToolCallError) IsTradingError() bool { return true }
