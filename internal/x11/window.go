package x11

import "github.com/BurntSushi/xgb/xproto"

// Window is a resolved view over one X window: its decoded WM_NAME, its
// last known geometry, and a shared reference to the connection it came
// from. The geometry cache always reflects the last value this handle
// requested or queried, never a stale one relative to its own mutations.
type Window struct {
	Name string
	Geom Rect
	ID   xproto.Window

	client Client
}

// MoveResize updates the cached geometry, then issues the configure
// request. Dimensions are passed through unvalidated; any policy on
// degenerate sizes is the server's.
func (w *Window) MoveResize(x, y, width, height int) {
	w.Geom = Rect{X: x, Y: y, Width: width, Height: height}
	w.client.MoveResizeWindow(w.ID, x, y, width, height)
}

// Raise puts the window on top of its sibling stacking order.
func (w *Window) Raise() {
	w.client.RaiseWindow(w.ID)
}

// Show maps the window.
func (w *Window) Show() {
	w.client.MapWindow(w.ID)
}

// Hide unmaps the window.
func (w *Window) Hide() {
	w.client.UnmapWindow(w.ID)
}

// Release drops this handle's reference to the connection. The handle
// must not be used afterwards.
func (w *Window) Release() {
	w.client.Release()
}
