package x11

import "github.com/BurntSushi/xgb/xproto"

const dragEventMask = uint16(xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskButtonMotion)

// GrabManagementInputs establishes the per-client grabs: modifier+button1
// for move, modifier+button3 for resize, and the modifier+key chords that
// act on the client under the pointer.
func (c *Conn) GrabManagementInputs(client xproto.Window) {
	xproto.GrabButton(c.X, false, client, dragEventMask,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, xproto.CursorNone, xproto.ButtonIndex1, c.modMask)
	xproto.GrabButton(c.X, false, client, dragEventMask,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, xproto.CursorNone, xproto.ButtonIndex3, c.modMask)

	for _, name := range []string{"q", "Tab", "Right", "Left", "d", "a"} {
		xproto.GrabKey(c.X, false, client, c.modMask, c.keycodes[name],
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
}

// GrabRootInputs establishes the chords that act regardless of the pointed
// window: modifier+Return spawns the launcher, modifier+t tiles.
func (c *Conn) GrabRootInputs() {
	for _, name := range []string{"Return", "t"} {
		xproto.GrabKey(c.X, false, c.root, c.modMask, c.keycodes[name],
			xproto.GrabModeAsync, xproto.GrabModeAsync)
	}
}
