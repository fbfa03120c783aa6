package mcp

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/framewm/internal/config"
	"github.com/1broseidon/framewm/internal/layout"
	"github.com/1broseidon/framewm/internal/x11"
)

// Inspector is the window surface the tools operate on. The production
// implementation talks to the X server over its own connection; the running
// manager observes the resulting events like those of any other client.
type Inspector interface {
	Windows() ([]WindowInfo, error)
	FocusWindow(id uint32) error
	MoveResizeWindow(id uint32, x, y, w, h int) error
	KillWindow(id uint32) error
}

// X11Inspector implements Inspector over a dedicated X connection.
type X11Inspector struct {
	conn *x11.Conn
}

// NewX11Inspector connects to the display named by cfg.
func NewX11Inspector(cfg *config.Config) (*X11Inspector, error) {
	conn, err := x11.NewConn(cfg)
	if err != nil {
		return nil, err
	}
	return &X11Inspector{conn: conn}, nil
}

// Close tears down the inspector's X connection.
func (i *X11Inspector) Close() {
	i.conn.Close()
}

// Windows lists the top-level windows with their geometry. For frames the
// wrapped client and its name are reported alongside.
func (i *X11Inspector) Windows() ([]WindowInfo, error) {
	wins, err := i.conn.TopLevelWindows()
	if err != nil {
		return nil, err
	}
	infos := make([]WindowInfo, 0, len(wins))
	for _, w := range wins {
		geom, err := i.conn.GeometryOf(w)
		if err != nil {
			continue
		}
		info := WindowInfo{
			ID:     uint32(w),
			X:      geom.X,
			Y:      geom.Y,
			Width:  geom.Width,
			Height: geom.Height,
		}
		if client, ok := i.conn.FirstChild(w); ok {
			info.Client = uint32(client)
			info.Name = i.conn.WindowName(client)
		} else {
			info.Name = i.conn.WindowName(w)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// FocusWindow raises the window and gives its client the input focus.
func (i *X11Inspector) FocusWindow(id uint32) error {
	win := xproto.Window(id)
	i.conn.RaiseWindow(win)
	if client, ok := i.conn.FirstChild(win); ok {
		i.conn.FocusWindow(client)
	} else {
		i.conn.FocusWindow(win)
	}
	i.conn.Sync()
	return nil
}

// MoveResizeWindow sets the window's geometry and propagates the size to a
// wrapped client, if any.
func (i *X11Inspector) MoveResizeWindow(id uint32, x, y, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid size %dx%d", w, h)
	}
	win := xproto.Window(id)
	i.conn.MoveResizeWindow(win, layout.Rect{X: x, Y: y, Width: w, Height: h})
	if client, ok := i.conn.FirstChild(win); ok {
		i.conn.ResizeWindow(client, w, h)
	}
	i.conn.Sync()
	return nil
}

// KillWindow disconnects the client owning the window. For frames the
// wrapped client is targeted so the manager unframes it normally.
func (i *X11Inspector) KillWindow(id uint32) error {
	win := xproto.Window(id)
	if client, ok := i.conn.FirstChild(win); ok {
		win = client
	}
	i.conn.KillClient(win)
	i.conn.Sync()
	return nil
}
