package mcp

import (
	"context"

	"github.com/deixis/shellbar/internal/runner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type runShellScriptParams struct {
	Script string `json:"script" jsonschema:"path of the executable or script to run"`
}

// runShellScriptHandler returns the Output as structured content. A spawn
// failure is returned as a plain error, which the SDK reports as a tool
// error carrying the message text.
func (h *handler) runShellScriptHandler(_ context.Context, _ *mcp.CallToolRequest, params runShellScriptParams) (*mcp.CallToolResult, runner.Output, error) {
	out, err := h.runner.Run(params.Script)
	if err != nil {
		return nil, runner.Output{}, err
	}
	return nil, *out, nil
}
