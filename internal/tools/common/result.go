package common

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/okibi/sheets-mcp/internal/google"
)

// ErrorResult converts an error into an MCP tool error result carrying the
// structured {kind, message} payload. Errors that are not already classified
// are folded into the taxonomy first, so callers can pass any error.
func ErrorResult(err error) *mcp.CallToolResult {
	gerr := google.MapAPIError(err)
	return mcp.NewToolResultError(gerr.JSON())
}

// JSONResult marshals v and returns it as an MCP text result.
// A marshalling failure is reported as a transient error result.
func JSONResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ErrorResult(google.Errorf(google.KindTransient, "failed to serialize result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// ResultText extracts the text payload from a tool result.
// Returns the empty string when the result carries no text content.
func ResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	switch c := result.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	return ""
}

// ErrorKindFromResult extracts the taxonomy kind from an error result
// produced by ErrorResult. Returns the empty string for non-error results
// or payloads that do not carry a kind.
func ErrorKindFromResult(result *mcp.CallToolResult) string {
	if result == nil || !result.IsError {
		return ""
	}
	var gerr google.Error
	if err := json.Unmarshal([]byte(ResultText(result)), &gerr); err != nil {
		return ""
	}
	return string(gerr.Kind)
}
