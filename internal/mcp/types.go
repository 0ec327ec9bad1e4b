package mcp

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	Pattern string `json:"pattern,omitempty" jsonschema:"Regular expression matched against window names. Empty matches every window."`
}

// WindowInfo describes a single resolved window.
type WindowInfo struct {
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []WindowInfo `json:"windows"`
}

// ResizeWindowsInput is the input for the resize_windows tool.
type ResizeWindowsInput struct {
	Pattern string `json:"pattern" jsonschema:"required,Regular expression matched against window names"`
	Width   int    `json:"width" jsonschema:"required,New width in pixels"`
	Height  int    `json:"height" jsonschema:"required,New height in pixels"`
}

// MoveWindowsInput is the input for the move_windows tool.
type MoveWindowsInput struct {
	Pattern string `json:"pattern" jsonschema:"required,Regular expression matched against window names"`
	X       int    `json:"x" jsonschema:"required,New x position in pixels"`
	Y       int    `json:"y" jsonschema:"required,New y position in pixels"`
}

// PatternInput is the input for the show/hide/raise tools.
type PatternInput struct {
	Pattern string `json:"pattern" jsonschema:"required,Regular expression matched against window names"`
}

// TransformOutput reports how many windows an operation touched.
type TransformOutput struct {
	Matched int `json:"matched"`
}
