package wm

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/framewm/internal/layout"
	"github.com/1broseidon/framewm/internal/x11"
)

// Gateway is the X server surface the manager runs against. *x11.Conn is the
// production implementation; tests substitute a fake.
type Gateway interface {
	Root() xproto.Window
	ScreenSize() (w, h int)
	PointerPosition() (x, y int, err error)

	TopLevelWindows() ([]xproto.Window, error)
	FirstChild(win xproto.Window) (xproto.Window, bool)
	GeometryOf(win xproto.Window) (layout.Rect, error)
	AttributesOf(win xproto.Window) (x11.Attributes, error)

	CreateFrame(r layout.Rect) (xproto.Window, error)
	DestroyWindow(win xproto.Window)
	MapWindow(win xproto.Window)
	UnmapWindow(win xproto.Window)
	ReparentWindow(win, parent xproto.Window, x, y int)
	AddToSaveSet(win xproto.Window)
	RemoveFromSaveSet(win xproto.Window)

	ConfigureWindow(win xproto.Window, mask uint16, values []uint32)
	MoveWindow(win xproto.Window, x, y int)
	ResizeWindow(win xproto.Window, w, h int)
	MoveResizeWindow(win xproto.Window, r layout.Rect)
	RaiseWindow(win xproto.Window)
	FocusWindow(win xproto.Window)
	KillClient(win xproto.Window)

	GrabManagementInputs(client xproto.Window)
	GrabRootInputs()
	GrabServer()
	UngrabServer()
	SelectRedirect() error

	Keycode(name string) xproto.Keycode
	ModifierMask() uint16

	WaitEvent() (xgb.Event, xgb.Error)
	PollEvent() (xgb.Event, xgb.Error)
	Sync()
}

var _ Gateway = (*x11.Conn)(nil)
