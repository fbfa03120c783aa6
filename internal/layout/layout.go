package layout

import "github.com/BurntSushi/xgb/xproto"

// Rect represents a window position and size in root coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Window is one top-level window in a geometry snapshot.
type Window struct {
	ID xproto.Window
	Rect
}

// Change is a frame-level geometry update computed by a layout operation.
// The manager applies it to the frame and propagates the size to the
// frame's client child.
type Change struct {
	Window xproto.Window
	Rect   Rect
}

// Snapshot is an immutable ordered view of the current top-level windows,
// captured once at the start of a directional operation. Neighbor lookups
// and tiling are computed from it without re-querying the server.
type Snapshot []Window

// Find returns the snapshot entry for id.
func (s Snapshot) Find(id xproto.Window) (Window, bool) {
	for _, w := range s {
		if w.ID == id {
			return w, true
		}
	}
	return Window{}, false
}

// RightNeighbor returns the first window whose left edge coincides with
// of's right edge.
func (s Snapshot) RightNeighbor(of Window) (Window, bool) {
	for _, w := range s {
		if w.ID == of.ID {
			continue
		}
		if w.X == of.X+of.Width {
			return w, true
		}
	}
	return Window{}, false
}

// LeftNeighbor returns the first window whose right edge coincides with
// of's left edge.
func (s Snapshot) LeftNeighbor(of Window) (Window, bool) {
	for _, w := range s {
		if w.ID == of.ID {
			continue
		}
		if w.X+w.Width == of.X {
			return w, true
		}
	}
	return Window{}, false
}
