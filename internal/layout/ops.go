package layout

import "github.com/BurntSushi/xgb/xproto"

// GrowRight expands the acting frame rightward by step at the expense of its
// right-neighbor: the neighbor's left edge moves right by step and its width
// shrinks by step. Only neighbors wider than minWidth qualify. Returns false
// when the acting window is absent from the snapshot or no neighbor qualifies.
func GrowRight(snap Snapshot, acting xproto.Window, step, minWidth int) ([]Change, bool) {
	a, ok := snap.Find(acting)
	if !ok {
		return nil, false
	}
	n, ok := snap.RightNeighbor(a)
	if !ok || n.Width <= minWidth {
		return nil, false
	}
	return []Change{
		{Window: n.ID, Rect: Rect{X: n.X + step, Y: n.Y, Width: n.Width - step, Height: n.Height}},
		{Window: a.ID, Rect: Rect{X: a.X, Y: a.Y, Width: a.Width + step, Height: a.Height}},
	}, true
}

// ShrinkLeft contracts the acting frame by step, handing the space to its
// right-neighbor: the neighbor's left edge moves left by step and its width
// grows by step. Permitted only while the acting window is wider than
// minWidth.
func ShrinkLeft(snap Snapshot, acting xproto.Window, step, minWidth int) ([]Change, bool) {
	a, ok := snap.Find(acting)
	if !ok || a.Width <= minWidth {
		return nil, false
	}
	n, ok := snap.RightNeighbor(a)
	if !ok {
		return nil, false
	}
	return []Change{
		{Window: n.ID, Rect: Rect{X: n.X - step, Y: n.Y, Width: n.Width + step, Height: n.Height}},
		{Window: a.ID, Rect: Rect{X: a.X, Y: a.Y, Width: a.Width - step, Height: a.Height}},
	}, true
}

// SwapRight exchanges position and size between the acting frame and its
// right-neighbor, so the two trade places exactly.
func SwapRight(snap Snapshot, acting xproto.Window) ([]Change, bool) {
	return swap(snap, acting, Snapshot.RightNeighbor)
}

// SwapLeft exchanges position and size between the acting frame and its
// left-neighbor.
func SwapLeft(snap Snapshot, acting xproto.Window) ([]Change, bool) {
	return swap(snap, acting, Snapshot.LeftNeighbor)
}

func swap(snap Snapshot, acting xproto.Window, neighbor func(Snapshot, Window) (Window, bool)) ([]Change, bool) {
	a, ok := snap.Find(acting)
	if !ok {
		return nil, false
	}
	n, ok := neighbor(snap, a)
	if !ok {
		return nil, false
	}
	return []Change{
		{Window: a.ID, Rect: n.Rect},
		{Window: n.ID, Rect: a.Rect},
	}, true
}

// Columns arranges the snapshot's windows in a single horizontal row of
// equal-width columns spanning the full screen height. Column width is
// screenW/N with integer division, matching the server's pixel grid.
func Columns(snap Snapshot, screenW, screenH int) []Change {
	n := len(snap)
	if n == 0 {
		return nil
	}
	colWidth := screenW / n
	changes := make([]Change, n)
	for i, w := range snap {
		changes[i] = Change{
			Window: w.ID,
			Rect:   Rect{X: i * colWidth, Y: 0, Width: colWidth, Height: screenH},
		}
	}
	return changes
}
