// Package mcp exposes the managed window population over the Model Context
// Protocol so agents can inspect and steer the desktop. The server runs as a
// separate X client: its requests flow through the normal redirection
// machinery of the running manager.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "framewm"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window inspection and control.
type Server struct {
	mcpServer *mcpsdk.Server
	inspector Inspector
}

// NewServer creates an MCP server backed by the given inspector.
func NewServer(inspector Inspector) *Server {
	s := &Server{inspector: inspector}
	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves on stdio transport, blocking until the context is done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List the top-level windows with their ids, names and geometry. Frame windows report the client window they wrap.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "focus_window",
		Description: "Raise a window and give it the input focus.",
	}, s.handleFocusWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_resize_window",
		Description: "Move and resize a window to the given root-coordinate rectangle.",
	}, s.handleMoveResizeWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "kill_window",
		Description: "Forcibly disconnect the client owning a window.",
	}, s.handleKillWindow)
}
