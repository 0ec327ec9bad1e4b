package x11

import "github.com/BurntSushi/xgb/xproto"

// Rect is a window geometry in parent-relative coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Client is the windowing capability set consumed by the tree walker and
// the command engine. Mutation requests are fire-and-forget: the server
// reports neither success nor failure back through this interface.
//
// Implementations hand out shared references to the underlying connection
// via Retain/Release so the connection outlives every Window derived from
// it. Not safe for concurrent use without external synchronization.
type Client interface {
	Root() xproto.Window
	QueryChildren(win xproto.Window) ([]xproto.Window, error)
	WindowName(win xproto.Window) (string, error)
	WindowGeometry(win xproto.Window) (Rect, error)
	MoveResizeWindow(win xproto.Window, x, y, width, height int)
	RaiseWindow(win xproto.Window)
	MapWindow(win xproto.Window)
	UnmapWindow(win xproto.Window)
	Retain()
	Release()
}
