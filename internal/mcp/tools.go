package mcp

import (
	"context"
	"fmt"
	"regexp"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winctl/internal/engine"
)

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	match := func(string) bool { return true }
	if args.Pattern != "" {
		re, err := regexp.Compile(args.Pattern)
		if err != nil {
			return nil, ListWindowsOutput{}, fmt.Errorf("invalid pattern %q: %w", args.Pattern, err)
		}
		match = re.MatchString
	}

	conn, it, err := s.snapshot()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	defer conn.Release()

	windows := []WindowInfo{}
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		if match(w.Name) {
			windows = append(windows, WindowInfo{
				ID:     uint32(w.ID),
				Name:   w.Name,
				X:      w.Geom.X,
				Y:      w.Geom.Y,
				Width:  w.Geom.Width,
				Height: w.Geom.Height,
			})
		}
		w.Release()
	}

	return nil, ListWindowsOutput{Windows: windows}, nil
}

func (s *Server) handleResizeWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowsInput) (*mcpsdk.CallToolResult, TransformOutput, error) {
	matched, err := s.transform(args.Pattern, engine.Resize{Width: args.Width, Height: args.Height})
	if err != nil {
		return nil, TransformOutput{}, err
	}
	return nil, TransformOutput{Matched: matched}, nil
}

func (s *Server) handleMoveWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowsInput) (*mcpsdk.CallToolResult, TransformOutput, error) {
	matched, err := s.transform(args.Pattern, engine.Move{X: args.X, Y: args.Y})
	if err != nil {
		return nil, TransformOutput{}, err
	}
	return nil, TransformOutput{Matched: matched}, nil
}

func (s *Server) handleShowWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args PatternInput) (*mcpsdk.CallToolResult, TransformOutput, error) {
	matched, err := s.transform(args.Pattern, engine.Show{})
	if err != nil {
		return nil, TransformOutput{}, err
	}
	return nil, TransformOutput{Matched: matched}, nil
}

func (s *Server) handleHideWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args PatternInput) (*mcpsdk.CallToolResult, TransformOutput, error) {
	matched, err := s.transform(args.Pattern, engine.Hide{})
	if err != nil {
		return nil, TransformOutput{}, err
	}
	return nil, TransformOutput{Matched: matched}, nil
}

func (s *Server) handleRaiseWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args PatternInput) (*mcpsdk.CallToolResult, TransformOutput, error) {
	matched, err := s.transform(args.Pattern, engine.Raise{})
	if err != nil {
		return nil, TransformOutput{}, err
	}
	return nil, TransformOutput{Matched: matched}, nil
}
