package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/framewm/internal/layout"
	"github.com/1broseidon/framewm/internal/x11"
)

type configureCall struct {
	win    xproto.Window
	mask   uint16
	values []uint32
}

// fakeGateway is an in-memory window tree standing in for the X server.
type fakeGateway struct {
	root               xproto.Window
	screenW, screenH   int
	pointerX, pointerY int
	nextID             xproto.Window

	geoms    map[xproto.Window]layout.Rect
	attrs    map[xproto.Window]x11.Attributes
	children map[xproto.Window][]xproto.Window
	parents  map[xproto.Window]xproto.Window

	mapped    map[xproto.Window]bool
	saveSet   map[xproto.Window]bool
	grabbed   map[xproto.Window]bool
	destroyed map[xproto.Window]bool

	raised     []xproto.Window
	focused    xproto.Window
	killed     []xproto.Window
	configures []configureCall

	rootGrabbed bool
	serverGrabs int
	redirectErr error

	events   []xgb.Event
	keycodes map[string]xproto.Keycode
}

var _ Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		root:     1,
		screenW:  1920,
		screenH:  1080,
		pointerX: 960,
		pointerY: 540,
		nextID:   1000,

		geoms:    make(map[xproto.Window]layout.Rect),
		attrs:    make(map[xproto.Window]x11.Attributes),
		children: make(map[xproto.Window][]xproto.Window),
		parents:  make(map[xproto.Window]xproto.Window),

		mapped:    make(map[xproto.Window]bool),
		saveSet:   make(map[xproto.Window]bool),
		grabbed:   make(map[xproto.Window]bool),
		destroyed: make(map[xproto.Window]bool),

		keycodes: map[string]xproto.Keycode{
			"q": 24, "Tab": 23, "Right": 114, "Left": 113,
			"d": 40, "a": 38, "t": 28, "Return": 36,
		},
	}
}

// addClient places a mapped top-level client window under the root.
func (f *fakeGateway) addClient(id xproto.Window, r layout.Rect) {
	f.geoms[id] = r
	f.attrs[id] = x11.Attributes{Viewable: true}
	f.children[f.root] = append(f.children[f.root], id)
	f.parents[id] = f.root
	f.mapped[id] = true
}

func (f *fakeGateway) removeChild(parent, win xproto.Window) {
	kids := f.children[parent]
	for i, k := range kids {
		if k == win {
			f.children[parent] = append(kids[:i], kids[i+1:]...)
			return
		}
	}
}

func (f *fakeGateway) Root() xproto.Window { return f.root }

func (f *fakeGateway) ScreenSize() (int, int) { return f.screenW, f.screenH }

func (f *fakeGateway) PointerPosition() (int, int, error) {
	return f.pointerX, f.pointerY, nil
}

func (f *fakeGateway) TopLevelWindows() ([]xproto.Window, error) {
	out := make([]xproto.Window, len(f.children[f.root]))
	copy(out, f.children[f.root])
	return out, nil
}

func (f *fakeGateway) FirstChild(win xproto.Window) (xproto.Window, bool) {
	kids := f.children[win]
	if len(kids) == 0 {
		return 0, false
	}
	return kids[0], true
}

func (f *fakeGateway) GeometryOf(win xproto.Window) (layout.Rect, error) {
	r, ok := f.geoms[win]
	if !ok {
		return layout.Rect{}, fmt.Errorf("no such window %d", win)
	}
	return r, nil
}

func (f *fakeGateway) AttributesOf(win xproto.Window) (x11.Attributes, error) {
	a, ok := f.attrs[win]
	if !ok {
		return x11.Attributes{}, fmt.Errorf("no such window %d", win)
	}
	return a, nil
}

func (f *fakeGateway) CreateFrame(r layout.Rect) (xproto.Window, error) {
	id := f.nextID
	f.nextID++
	f.geoms[id] = r
	f.children[f.root] = append(f.children[f.root], id)
	f.parents[id] = f.root
	return id, nil
}

func (f *fakeGateway) DestroyWindow(win xproto.Window) {
	f.destroyed[win] = true
	f.removeChild(f.parents[win], win)
	delete(f.geoms, win)
	delete(f.parents, win)
}

func (f *fakeGateway) MapWindow(win xproto.Window)   { f.mapped[win] = true }
func (f *fakeGateway) UnmapWindow(win xproto.Window) { f.mapped[win] = false }

func (f *fakeGateway) ReparentWindow(win, parent xproto.Window, x, y int) {
	f.removeChild(f.parents[win], win)
	f.children[parent] = append(f.children[parent], win)
	f.parents[win] = parent
	r := f.geoms[win]
	r.X, r.Y = x, y
	f.geoms[win] = r
}

func (f *fakeGateway) AddToSaveSet(win xproto.Window)      { f.saveSet[win] = true }
func (f *fakeGateway) RemoveFromSaveSet(win xproto.Window) { f.saveSet[win] = false }

func (f *fakeGateway) ConfigureWindow(win xproto.Window, mask uint16, values []uint32) {
	f.configures = append(f.configures, configureCall{win: win, mask: mask, values: values})
}

func (f *fakeGateway) MoveWindow(win xproto.Window, x, y int) {
	r := f.geoms[win]
	r.X, r.Y = x, y
	f.geoms[win] = r
}

func (f *fakeGateway) ResizeWindow(win xproto.Window, w, h int) {
	r := f.geoms[win]
	r.Width, r.Height = w, h
	f.geoms[win] = r
}

func (f *fakeGateway) MoveResizeWindow(win xproto.Window, r layout.Rect) {
	f.geoms[win] = r
}

func (f *fakeGateway) RaiseWindow(win xproto.Window) {
	f.raised = append(f.raised, win)
}

func (f *fakeGateway) FocusWindow(win xproto.Window) { f.focused = win }

func (f *fakeGateway) KillClient(win xproto.Window) {
	f.killed = append(f.killed, win)
}

func (f *fakeGateway) GrabManagementInputs(client xproto.Window) { f.grabbed[client] = true }
func (f *fakeGateway) GrabRootInputs()                           { f.rootGrabbed = true }
func (f *fakeGateway) GrabServer()                               { f.serverGrabs++ }
func (f *fakeGateway) UngrabServer()                             { f.serverGrabs-- }

func (f *fakeGateway) SelectRedirect() error { return f.redirectErr }

func (f *fakeGateway) Keycode(name string) xproto.Keycode { return f.keycodes[name] }

func (f *fakeGateway) ModifierMask() uint16 { return xproto.ModMask1 }

func (f *fakeGateway) WaitEvent() (xgb.Event, xgb.Error) {
	return f.PollEvent()
}

func (f *fakeGateway) PollEvent() (xgb.Event, xgb.Error) {
	if len(f.events) == 0 {
		return nil, nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeGateway) Sync() {}
