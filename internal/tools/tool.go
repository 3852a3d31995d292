// Package tools implements the MCP tools exposed by the trading server:
// balance queries, token price lookups, and swap simulations.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool is a named operation the server exposes over MCP.
//
// Invalid arguments and upstream failures are reported as error results, not
// Go errors: a non-nil error from Call is reserved for faults the caller
// cannot attribute to its input.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description.
	Description() string

	// InputSchema returns the JSON Schema for the tool input.
	InputSchema() *jsonschema.Schema

	// Call executes the tool.
	Call(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// TextResult creates a CallToolResult with a single text content item.
func TextResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// ErrorResult creates a CallToolResult indicating an error.
func ErrorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}

// jsonResult marshals v as indented JSON into a text result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	return TextResult(string(data)), nil
}

// decodeParams unmarshals the raw request arguments into v.
// Absent arguments decode as an empty object.
func decodeParams(req *mcp.CallToolRequest, v any) error {
	args := req.Params.Arguments
	if len(args) == 0 {
		args = []byte("{}")
	}

	return json.Unmarshal(args, v)
}
