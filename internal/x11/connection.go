// Package x11 wraps the X connection behind the operations the manager
// needs. All requests go through the raw xgb protocol bindings; xgbutil is
// used for connection setup and keysym resolution.
package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/1broseidon/framewm/internal/config"
)

// ErrWindowManagerRunning indicates another client already holds substructure
// redirection on the root window.
var ErrWindowManagerRunning = errors.New("another window manager is already running")

// managementKeys are the keysym names resolved to keycodes at connect time.
var managementKeys = []string{"q", "Tab", "Right", "Left", "d", "a", "t", "Return"}

// Conn is a live X connection bound to one screen's root window.
type Conn struct {
	X     *xgb.Conn
	XUtil *xgbutil.XUtil

	root   xproto.Window
	screen *xproto.ScreenInfo

	modMask         uint16
	borderWidth     uint16
	borderColor     uint32
	backgroundColor uint32

	keycodes map[string]xproto.Keycode
}

// NewConn connects to the X server named by cfg.Display ($DISPLAY when
// empty) and resolves the keycodes for the management bindings.
func NewConn(cfg *config.Config) (*Conn, error) {
	xu, err := xgbutil.NewConnDisplay(cfg.Display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	keybind.Initialize(xu)

	c := &Conn{
		X:               xu.Conn(),
		XUtil:           xu,
		root:            xu.RootWin(),
		screen:          xu.Screen(),
		modMask:         cfg.ModifierMask(),
		borderWidth:     uint16(cfg.BorderWidth),
		borderColor:     cfg.BorderColor,
		backgroundColor: cfg.BackgroundColor,
		keycodes:        make(map[string]xproto.Keycode, len(managementKeys)),
	}
	for _, name := range managementKeys {
		codes := keybind.StrToKeycodes(xu, name)
		if len(codes) == 0 {
			xu.Conn().Close()
			return nil, fmt.Errorf("no keycode mapped for keysym %q", name)
		}
		c.keycodes[name] = codes[0]
	}
	return c, nil
}

// Close tears down the X connection.
func (c *Conn) Close() {
	c.X.Close()
}

// Root returns the managed root window.
func (c *Conn) Root() xproto.Window {
	return c.root
}

// Keycode returns the keycode resolved for one of the management keysyms.
func (c *Conn) Keycode(name string) xproto.Keycode {
	return c.keycodes[name]
}

// ModifierMask returns the configured management modifier.
func (c *Conn) ModifierMask() uint16 {
	return c.modMask
}

// SelectRedirect claims substructure redirection on the root window. The
// request is checked so a competing window manager surfaces as
// ErrWindowManagerRunning before any window is touched.
func (c *Conn) SelectRedirect() error {
	err := xproto.ChangeWindowAttributesChecked(c.X, c.root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify}).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return ErrWindowManagerRunning
		}
		return fmt.Errorf("failed to select substructure redirection: %w", err)
	}
	return nil
}

// GrabServer locks out other clients until UngrabServer.
func (c *Conn) GrabServer() {
	xproto.GrabServer(c.X)
}

// UngrabServer releases a server grab.
func (c *Conn) UngrabServer() {
	xproto.UngrabServer(c.X)
}

// WaitEvent blocks for the next event. Both results nil means the
// connection closed.
func (c *Conn) WaitEvent() (xgb.Event, xgb.Error) {
	return c.X.WaitForEvent()
}

// PollEvent returns the next queued event without blocking, or nil.
func (c *Conn) PollEvent() (xgb.Event, xgb.Error) {
	return c.X.PollForEvent()
}

// Sync flushes the request queue and waits for the server to process it.
func (c *Conn) Sync() {
	c.X.Sync()
}

// ScreenSize returns the root window's current size. Queried per call so
// layout operations see resolution changes.
func (c *Conn) ScreenSize() (w, h int) {
	g, err := xproto.GetGeometry(c.X, xproto.Drawable(c.root)).Reply()
	if err != nil {
		return int(c.screen.WidthInPixels), int(c.screen.HeightInPixels)
	}
	return int(g.Width), int(g.Height)
}

// PointerPosition returns the pointer's root coordinates, checking every
// screen's root until the pointer is found.
func (c *Conn) PointerPosition() (x, y int, err error) {
	for _, screen := range c.XUtil.Setup().Roots {
		reply, qerr := xproto.QueryPointer(c.X, screen.Root).Reply()
		if qerr != nil {
			continue
		}
		if reply.SameScreen {
			return int(reply.RootX), int(reply.RootY), nil
		}
	}
	return 0, 0, errors.New("pointer is not on any screen")
}
