package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.inspector.Windows()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	return nil, ListWindowsOutput{Windows: windows}, nil
}

func (s *Server) handleFocusWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FocusWindowInput) (*mcpsdk.CallToolResult, FocusWindowOutput, error) {
	if err := s.inspector.FocusWindow(args.ID); err != nil {
		return nil, FocusWindowOutput{}, err
	}
	return nil, FocusWindowOutput{ID: args.ID}, nil
}

func (s *Server) handleMoveResizeWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveResizeWindowInput) (*mcpsdk.CallToolResult, MoveResizeWindowOutput, error) {
	if err := s.inspector.MoveResizeWindow(args.ID, args.X, args.Y, args.Width, args.Height); err != nil {
		return nil, MoveResizeWindowOutput{}, err
	}
	return nil, MoveResizeWindowOutput{ID: args.ID}, nil
}

func (s *Server) handleKillWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args KillWindowInput) (*mcpsdk.CallToolResult, KillWindowOutput, error) {
	if err := s.inspector.KillWindow(args.ID); err != nil {
		return nil, KillWindowOutput{}, err
	}
	return nil, KillWindowOutput{ID: args.ID}, nil
}
