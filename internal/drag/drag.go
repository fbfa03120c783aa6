// Package drag tracks an in-progress pointer-driven move or resize between a
// button press and the matching release. A session records the pointer and
// frame geometry at press time; every motion event computes its target from
// those anchors, never from intermediate state.
package drag

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/framewm/internal/layout"
)

// Mode selects what a drag session manipulates.
type Mode int

const (
	// Move repositions the frame by the pointer delta.
	Move Mode = iota
	// Resize grows or shrinks the frame by the pointer delta.
	Resize
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Move:
		return "move"
	case Resize:
		return "resize"
	default:
		return "unknown"
	}
}

// Session is one pointer drag. At most one exists per manager; a new button
// press overwrites the previous session.
type Session struct {
	Mode           Mode
	Client         xproto.Window
	Frame          xproto.Window
	AnchorPointerX int
	AnchorPointerY int
	AnchorFrame    layout.Rect
}

// MoveTarget returns the frame position for the current pointer location:
// the anchor frame position displaced by the pointer delta.
func (s *Session) MoveTarget(pointerX, pointerY int) (x, y int) {
	return s.AnchorFrame.X + (pointerX - s.AnchorPointerX),
		s.AnchorFrame.Y + (pointerY - s.AnchorPointerY)
}

// ResizeTarget returns the frame size for the current pointer location. The
// delta is clamped independently per axis at the negative of the anchor size
// so the result never goes below zero on either axis.
func (s *Session) ResizeTarget(pointerX, pointerY int) (w, h int) {
	dx := pointerX - s.AnchorPointerX
	dy := pointerY - s.AnchorPointerY
	if dx < -s.AnchorFrame.Width {
		dx = -s.AnchorFrame.Width
	}
	if dy < -s.AnchorFrame.Height {
		dy = -s.AnchorFrame.Height
	}
	return s.AnchorFrame.Width + dx, s.AnchorFrame.Height + dy
}
