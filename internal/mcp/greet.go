package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type greetParams struct {
	Name string `json:"name" jsonschema:"who to greet"`
}

func (h *handler) greetHandler(_ context.Context, _ *mcp.CallToolRequest, params greetParams) (*mcp.CallToolResult, any, error) {
	return textResult(Greet(params.Name))
}

// Greet returns a greeting for name.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
