// Package engine applies a single bulk mutation to every window in an
// enumeration snapshot whose name satisfies a predicate.
package engine

import "github.com/1broseidon/winctl/internal/x11"

// Action is one mutation applied to a matching window.
type Action interface {
	apply(w *x11.Window)
}

// Resize replaces the window's size and keeps its position.
type Resize struct {
	Width  int
	Height int
}

func (a Resize) apply(w *x11.Window) {
	w.MoveResize(w.Geom.X, w.Geom.Y, a.Width, a.Height)
}

// Move replaces the window's position and keeps its size.
type Move struct {
	X int
	Y int
}

func (a Move) apply(w *x11.Window) {
	w.MoveResize(a.X, a.Y, w.Geom.Width, w.Geom.Height)
}

// Show maps matching windows.
type Show struct{}

func (Show) apply(w *x11.Window) { w.Show() }

// Hide unmaps matching windows.
type Hide struct{}

func (Hide) apply(w *x11.Window) { w.Hide() }

// Raise lifts matching windows to the top of their stacking order.
type Raise struct{}

func (Raise) apply(w *x11.Window) { w.Raise() }

// Run drains the iterator in enumeration order, applying act to every
// window whose name satisfies match. Non-matching windows receive no
// requests at all, and there is no early termination on first match.
// Every produced handle is released. Returns the number of matches.
func Run(it *x11.Iter, match func(string) bool, act Action) int {
	matched := 0
	for {
		w, ok := it.Next()
		if !ok {
			return matched
		}
		if match(w.Name) {
			act.apply(w)
			matched++
		}
		w.Release()
	}
}
