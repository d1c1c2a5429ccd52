// Package mcp routes front-end invocations to shellbar's commands over the
// Model Context Protocol.
package mcp

import (
	"context"
	_ "embed"

	"github.com/deixis/shellbar"
	"github.com/deixis/shellbar/internal/runner"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
)

//go:embed instructions.md
var Instructions string

// handler holds shared dependencies for all tool handlers.
type handler struct {
	runner *runner.Runner
	logger zerolog.Logger
}

// NewServer creates an MCP server with the greet and run_shell_script tools
// registered.
func NewServer(r *runner.Runner, logger zerolog.Logger) *mcp.Server {
	h := &handler{
		runner: r,
		logger: logger.With().Str("component", "mcp").Logger(),
	}

	mcpOpts := &mcp.ServerOptions{
		Instructions: Instructions,
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
		InitializedHandler: func(ctx context.Context, req *mcp.InitializedRequest) {
			h.logger.Debug().Msg("session initialized")
		},
	}
	s := mcp.NewServer(&mcp.Implementation{Name: "shellbar", Version: shellbar.Version}, mcpOpts)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "greet",
		Description: "Return a greeting for the given name.",
	}, h.greetHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name: "run_shell_script",
		Description: `Run an executable or script path with no arguments and wait for it to exit.

Returns the captured stdout, stderr and exit status. A non-zero status is a normal result;
only a failure to start the process is reported as an error.`,
	}, h.runShellScriptHandler)

	return s
}

// textResult is a helper to build a text-only tool result.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}
