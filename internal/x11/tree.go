package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog/log"
)

// Traversal selects how much of the window tree is enumerated.
type Traversal string

const (
	// TraverseTree walks every descendant of the root window.
	TraverseTree Traversal = "tree"
	// TraverseChildren visits only the root's direct children.
	TraverseChildren Traversal = "children"
)

// Enumerate takes a one-shot snapshot of the window identifiers under the
// root. In tree mode the order is: all direct children of the root first,
// then each child's full descendant list spliced in, branch by branch. A
// branch whose own child query fails contributes nothing; only a failure
// on the root itself is an error.
func Enumerate(c Client, mode Traversal) (*Iter, error) {
	level, err := c.QueryChildren(c.Root())
	if err != nil {
		return nil, fmt.Errorf("failed to query children of root: %w", err)
	}

	ids := append([]xproto.Window(nil), level...)
	if mode != TraverseChildren {
		for _, child := range level {
			ids = append(ids, descendants(c, child)...)
		}
	}

	return &Iter{client: c, ids: ids}, nil
}

// descendants returns win's subtree in the same level-then-branch order
// used at the root: all direct children first, then each child's own
// descendant list. An unreadable branch is dropped silently.
func descendants(c Client, win xproto.Window) []xproto.Window {
	level, err := c.QueryChildren(win)
	if err != nil {
		log.Debug().Uint32("window", uint32(win)).Err(err).Msg("dropping unreadable branch")
		return nil
	}

	out := append([]xproto.Window(nil), level...)
	for _, child := range level {
		out = append(out, descendants(c, child)...)
	}
	return out
}

// Iter lazily resolves a snapshot into Window handles, skipping every
// identifier whose metadata cannot be read. It is finite, forward-only
// and not restartable: draining it consumes the snapshot.
type Iter struct {
	client Client
	ids    []xproto.Window
	idx    int
}

// Next returns the next resolvable window, or ok=false once the snapshot
// is exhausted. Unresolvable identifiers are skipped without leaving a
// gap visible to the caller.
func (it *Iter) Next() (*Window, bool) {
	for it.idx < len(it.ids) {
		id := it.ids[it.idx]
		it.idx++

		w, err := Resolve(it.client, id)
		if err != nil {
			log.Debug().Uint32("window", uint32(id)).Err(err).Msg("skipping unresolvable window")
			continue
		}
		return w, true
	}
	return nil, false
}
