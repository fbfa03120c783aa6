package mcp

// WindowInfo describes one managed top-level window.
type WindowInfo struct {
	ID     uint32 `json:"id"`
	Client uint32 `json:"client,omitempty"`
	Name   string `json:"name,omitempty"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// FocusWindowInput is the input for the focus_window tool.
type FocusWindowInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window id from list_windows"`
}

// FocusWindowOutput is the output for the focus_window tool.
type FocusWindowOutput struct {
	ID uint32 `json:"id"`
}

// MoveResizeWindowInput is the input for the move_resize_window tool.
type MoveResizeWindowInput struct {
	ID     uint32 `json:"id" jsonschema:"required,Window id from list_windows"`
	X      int    `json:"x" jsonschema:"required,Target x position in root coordinates"`
	Y      int    `json:"y" jsonschema:"required,Target y position in root coordinates"`
	Width  int    `json:"width" jsonschema:"required,Target width in pixels"`
	Height int    `json:"height" jsonschema:"required,Target height in pixels"`
}

// MoveResizeWindowOutput is the output for the move_resize_window tool.
type MoveResizeWindowOutput struct {
	ID uint32 `json:"id"`
}

// KillWindowInput is the input for the kill_window tool.
type KillWindowInput struct {
	ID uint32 `json:"id" jsonschema:"required,Window id from list_windows"`
}

// KillWindowOutput is the output for the kill_window tool.
type KillWindowOutput struct {
	ID uint32 `json:"id"`
}
