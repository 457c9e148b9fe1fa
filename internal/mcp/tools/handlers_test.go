package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/tidwall/gjson"
)

// fakeFetcher records every outbound call and replies with a canned envelope
// or error.
type fakeFetcher struct {
	envelope string
	err      error
	calls    []map[string]string
}

func (f *fakeFetcher) Fetch(ctx context.Context, params map[string]string) (gjson.Result, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return gjson.Result{}, f.err
	}
	return gjson.Parse(f.envelope), nil
}

func callRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil || len(result.Content) == 0 {
		t.Fatalf("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}
