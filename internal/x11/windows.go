package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/icccm"

	"github.com/1broseidon/framewm/internal/layout"
)

// Attributes is the subset of window attributes the manager inspects when
// deciding whether to frame a window.
type Attributes struct {
	OverrideRedirect bool
	Viewable         bool
}

// TopLevelWindows lists the root window's direct children.
func (c *Conn) TopLevelWindows() ([]xproto.Window, error) {
	tree, err := xproto.QueryTree(c.X, c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to query root window tree: %w", err)
	}
	return tree.Children, nil
}

// FirstChild returns the first child of win, if any. Frames have exactly one
// child, the client they wrap.
func (c *Conn) FirstChild(win xproto.Window) (xproto.Window, bool) {
	tree, err := xproto.QueryTree(c.X, win).Reply()
	if err != nil || len(tree.Children) == 0 {
		return 0, false
	}
	return tree.Children[0], true
}

// GeometryOf returns win's position and size.
func (c *Conn) GeometryOf(win xproto.Window) (layout.Rect, error) {
	g, err := xproto.GetGeometry(c.X, xproto.Drawable(win)).Reply()
	if err != nil {
		return layout.Rect{}, fmt.Errorf("failed to get geometry of window %d: %w", win, err)
	}
	return layout.Rect{X: int(g.X), Y: int(g.Y), Width: int(g.Width), Height: int(g.Height)}, nil
}

// AttributesOf returns win's override-redirect flag and viewability.
func (c *Conn) AttributesOf(win xproto.Window) (Attributes, error) {
	reply, err := xproto.GetWindowAttributes(c.X, win).Reply()
	if err != nil {
		return Attributes{}, fmt.Errorf("failed to get attributes of window %d: %w", win, err)
	}
	return Attributes{
		OverrideRedirect: reply.OverrideRedirect,
		Viewable:         reply.MapState == xproto.MapStateViewable,
	}, nil
}

// WindowName returns win's ICCCM name, or an empty string when unset.
func (c *Conn) WindowName(win xproto.Window) string {
	name, err := icccm.WmNameGet(c.XUtil, win)
	if err != nil {
		return ""
	}
	return name
}

// CreateFrame creates a frame window at r with the configured border and
// background, subscribed to substructure events of its future child.
func (c *Conn) CreateFrame(r layout.Rect) (xproto.Window, error) {
	frame, err := xproto.NewWindowId(c.X)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate frame window id: %w", err)
	}
	err = xproto.CreateWindowChecked(c.X, c.screen.RootDepth, frame, c.root,
		int16(r.X), int16(r.Y), uint16(r.Width), uint16(r.Height),
		c.borderWidth, xproto.WindowClassInputOutput, c.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwBorderPixel,
		[]uint32{c.backgroundColor, c.borderColor}).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to create frame window: %w", err)
	}
	err = xproto.ChangeWindowAttributesChecked(c.X, frame, xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify}).Check()
	if err != nil {
		return 0, fmt.Errorf("failed to select events on frame window: %w", err)
	}
	return frame, nil
}

// DestroyWindow destroys win.
func (c *Conn) DestroyWindow(win xproto.Window) {
	xproto.DestroyWindow(c.X, win)
}

// MapWindow maps win.
func (c *Conn) MapWindow(win xproto.Window) {
	xproto.MapWindow(c.X, win)
}

// UnmapWindow unmaps win.
func (c *Conn) UnmapWindow(win xproto.Window) {
	xproto.UnmapWindow(c.X, win)
}

// ReparentWindow makes win a child of parent at the given offset.
func (c *Conn) ReparentWindow(win, parent xproto.Window, x, y int) {
	xproto.ReparentWindow(c.X, win, parent, int16(x), int16(y))
}

// AddToSaveSet registers win for restoration if the manager dies.
func (c *Conn) AddToSaveSet(win xproto.Window) {
	xproto.ChangeSaveSet(c.X, xproto.SetModeInsert, win)
}

// RemoveFromSaveSet drops win from the save set.
func (c *Conn) RemoveFromSaveSet(win xproto.Window) {
	xproto.ChangeSaveSet(c.X, xproto.SetModeDelete, win)
}

// ConfigureWindow forwards a raw configure request with its value mask.
func (c *Conn) ConfigureWindow(win xproto.Window, mask uint16, values []uint32) {
	xproto.ConfigureWindow(c.X, win, mask, values)
}

// MoveWindow repositions win.
func (c *Conn) MoveWindow(win xproto.Window, x, y int) {
	xproto.ConfigureWindow(c.X, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY,
		[]uint32{uint32(x), uint32(y)})
}

// ResizeWindow changes win's size.
func (c *Conn) ResizeWindow(win xproto.Window, w, h int) {
	xproto.ConfigureWindow(c.X, win,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(w), uint32(h)})
}

// MoveResizeWindow sets win's full geometry in one request.
func (c *Conn) MoveResizeWindow(win xproto.Window, r layout.Rect) {
	xproto.ConfigureWindow(c.X, win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(r.X), uint32(r.Y), uint32(r.Width), uint32(r.Height)})
}

// RaiseWindow brings win to the top of the stacking order.
func (c *Conn) RaiseWindow(win xproto.Window) {
	xproto.ConfigureWindow(c.X, win,
		xproto.ConfigWindowStackMode,
		[]uint32{xproto.StackModeAbove})
}

// FocusWindow gives win the input focus.
func (c *Conn) FocusWindow(win xproto.Window) {
	xproto.SetInputFocus(c.X, xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime)
}

// KillClient forcibly disconnects the client owning win.
func (c *Conn) KillClient(win xproto.Window) {
	xproto.KillClient(c.X, uint32(win))
}
