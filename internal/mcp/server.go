// Package mcp exposes winctl's window operations to MCP clients over
// stdio.
package mcp

import (
	"context"
	"fmt"
	"regexp"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winctl/internal/config"
	"github.com/1broseidon/winctl/internal/engine"
	"github.com/1broseidon/winctl/internal/x11"
)

const (
	ServerName    = "winctl"
	ServerVersion = "0.1.0"
)

// Server is the MCP server for window inspection and manipulation. Each
// tool call opens its own X11 connection and takes a fresh snapshot of
// the window tree.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
}

// NewServer creates a new MCP server using the given configuration for
// display selection and traversal mode.
func NewServer(cfg *config.Config) *Server {
	s := &Server{config: cfg}
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

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List X11 windows whose name matches a regular expression, with window id, name and geometry. An empty pattern matches every window.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_windows",
		Description: "Resize every window whose name matches the pattern, keeping each window's position. Returns the number of windows affected.",
	}, s.handleResizeWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_windows",
		Description: "Move every window whose name matches the pattern, keeping each window's size. Returns the number of windows affected.",
	}, s.handleMoveWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "show_windows",
		Description: "Map (show) every window whose name matches the pattern.",
	}, s.handleShowWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "hide_windows",
		Description: "Unmap (hide) every window whose name matches the pattern.",
	}, s.handleHideWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "raise_windows",
		Description: "Raise every window whose name matches the pattern to the top of its stacking order.",
	}, s.handleRaiseWindows)
}

// snapshot opens a connection and enumerates the window tree per config.
// The caller must Release the returned connection after draining.
func (s *Server) snapshot() (*x11.Connection, *x11.Iter, error) {
	conn, err := x11.OpenDisplay(s.config.Display)
	if err != nil {
		return nil, nil, err
	}
	it, err := x11.Enumerate(conn, s.config.Mode())
	if err != nil {
		conn.Release()
		return nil, nil, err
	}
	return conn, it, nil
}

// transform applies act to every window matching pattern and returns the
// match count.
func (s *Server) transform(pattern string, act engine.Action) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	conn, it, err := s.snapshot()
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	return engine.Run(it, re.MatchString, act), nil
}
