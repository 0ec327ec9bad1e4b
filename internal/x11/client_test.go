package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// fakeClient scripts the capability set for tests and records every
// mutation request in order.
type fakeClient struct {
	root     xproto.Window
	children map[xproto.Window][]xproto.Window
	childErr map[xproto.Window]bool
	names    map[xproto.Window]string
	geoms    map[xproto.Window]Rect
	calls    []string
	refs     int
	closes   int
}

func newFakeClient(root xproto.Window) *fakeClient {
	return &fakeClient{
		root:     root,
		children: map[xproto.Window][]xproto.Window{},
		childErr: map[xproto.Window]bool{},
		names:    map[xproto.Window]string{},
		geoms:    map[xproto.Window]Rect{},
		refs:     1,
	}
}

// addWindow makes id fully resolvable.
func (f *fakeClient) addWindow(id xproto.Window, name string, geom Rect) {
	f.names[id] = name
	f.geoms[id] = geom
}

func (f *fakeClient) Root() xproto.Window { return f.root }

func (f *fakeClient) QueryChildren(win xproto.Window) ([]xproto.Window, error) {
	if f.childErr[win] {
		return nil, errors.New("query tree failed")
	}
	return f.children[win], nil
}

func (f *fakeClient) WindowName(win xproto.Window) (string, error) {
	name, ok := f.names[win]
	if !ok {
		return "", errors.New("no 8-bit WM_NAME")
	}
	return name, nil
}

func (f *fakeClient) WindowGeometry(win xproto.Window) (Rect, error) {
	geom, ok := f.geoms[win]
	if !ok {
		return Rect{}, errors.New("no geometry")
	}
	return geom, nil
}

func (f *fakeClient) MoveResizeWindow(win xproto.Window, x, y, width, height int) {
	f.calls = append(f.calls, fmt.Sprintf("moveresize %d %d %d %d %d", win, x, y, width, height))
}

func (f *fakeClient) RaiseWindow(win xproto.Window) {
	f.calls = append(f.calls, fmt.Sprintf("raise %d", win))
}

func (f *fakeClient) MapWindow(win xproto.Window) {
	f.calls = append(f.calls, fmt.Sprintf("map %d", win))
}

func (f *fakeClient) UnmapWindow(win xproto.Window) {
	f.calls = append(f.calls, fmt.Sprintf("unmap %d", win))
}

func (f *fakeClient) Retain() { f.refs++ }

func (f *fakeClient) Release() {
	f.refs--
	if f.refs == 0 {
		f.closes++
	}
}
