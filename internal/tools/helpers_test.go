package tools

import (
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// callReq builds a raw tool request the way the MCP server hands it to
// handlers.
func callReq(t *testing.T, name string, args map[string]any) *mcp.CallToolRequest {
	t.Helper()

	raw, err := json.Marshal(args)
	require.NoError(t, err)

	return &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Name: name, Arguments: raw},
	}
}

// resultText extracts the first text content item from a result.
func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "first content item is not text")

	return text.Text
}

// resultJSON unmarshals the first text content item as a JSON object.
func resultJSON(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()

	require.False(t, res.IsError, "unexpected error result: %s", resultText(t, res))

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &m))

	return m
}
