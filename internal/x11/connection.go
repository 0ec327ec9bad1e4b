package x11

import (
	"fmt"
	"sync/atomic"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Connection manages the X11 connection and core X resources. It is
// reference counted: Open returns a connection holding one reference,
// every derived Window retains another, and the socket is closed exactly
// once when the count drops to zero.
type Connection struct {
	XUtil  *xgbutil.XUtil
	Screen int

	root xproto.Window
	refs int32
}

var _ Client = (*Connection)(nil)

// Open establishes a connection to the X server named by $DISPLAY and
// resolves the default screen's root window.
func Open() (*Connection, error) {
	return OpenDisplay("")
}

// OpenDisplay connects to a specific display, or $DISPLAY when empty.
func OpenDisplay(display string) (*Connection, error) {
	var xu *xgbutil.XUtil
	var err error
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}

	return &Connection{
		XUtil:  xu,
		Screen: xu.Conn().DefaultScreen,
		root:   xu.RootWin(),
		refs:   1,
	}, nil
}

// Root returns the default screen's root window.
func (c *Connection) Root() xproto.Window {
	return c.root
}

// Retain adds a reference to the connection.
func (c *Connection) Retain() {
	atomic.AddInt32(&c.refs, 1)
}

// Release drops a reference, disconnecting from the X server when the
// last one is gone.
func (c *Connection) Release() {
	if atomic.AddInt32(&c.refs, -1) == 0 && c.XUtil != nil {
		c.XUtil.Conn().Close()
	}
}

// QueryChildren returns the direct children of win in the order reported
// by the server (bottom to top in stacking order).
func (c *Connection) QueryChildren(win xproto.Window) ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(c.XUtil.Conn(), win).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query tree for window 0x%08x: %w", win, err)
	}
	return reply.Children, nil
}

// WindowName fetches the WM_NAME property. It fails when the property
// cannot be read, is absent or empty, or is not stored as 8-bit text.
func (c *Connection) WindowName(win xproto.Window) (string, error) {
	reply, err := xprop.GetProperty(c.XUtil, win, "WM_NAME")
	if err != nil {
		return "", err
	}
	if reply.Format != 8 || len(reply.Value) == 0 {
		return "", fmt.Errorf("window 0x%08x has no 8-bit WM_NAME", win)
	}
	return string(reply.Value), nil
}

// WindowGeometry fetches win's position and size relative to its parent.
func (c *Connection) WindowGeometry(win xproto.Window) (Rect, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return Rect{}, fmt.Errorf("failed to get geometry for window 0x%08x: %w", win, err)
	}
	return Rect{
		X:      int(geom.X),
		Y:      int(geom.Y),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// MoveResizeWindow issues a configure request for win.
func (c *Connection) MoveResizeWindow(win xproto.Window, x, y, width, height int) {
	xwindow.New(c.XUtil, win).MoveResize(x, y, width, height)
}

// RaiseWindow puts win on top of its sibling stacking order.
func (c *Connection) RaiseWindow(win xproto.Window) {
	xwindow.New(c.XUtil, win).Stack(xproto.StackModeAbove)
}

// MapWindow makes win visible.
func (c *Connection) MapWindow(win xproto.Window) {
	xwindow.New(c.XUtil, win).Map()
}

// UnmapWindow hides win.
func (c *Connection) UnmapWindow(win xproto.Window) {
	xwindow.New(c.XUtil, win).Unmap()
}
