package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/framewm/internal/drag"
	"github.com/1broseidon/framewm/internal/layout"
	"github.com/1broseidon/framewm/internal/logging"
	"github.com/1broseidon/framewm/internal/registry"
)

// handleEvent dispatches one event. A non-nil error means an invariant was
// violated and the manager must stop; transient X failures are logged and
// swallowed by the individual handlers.
func (m *Manager) handleEvent(ev xgb.Event) error {
	logging.Logger.Debug().Str("event", fmt.Sprintf("%T", ev)).Msg("dispatching")

	switch e := ev.(type) {
	case xproto.UnmapNotifyEvent:
		return m.onUnmapNotify(e)
	case xproto.MapRequestEvent:
		return m.onMapRequest(e)
	case xproto.ConfigureRequestEvent:
		m.onConfigureRequest(e)
	case xproto.ButtonPressEvent:
		return m.onButtonPress(e)
	case xproto.ButtonReleaseEvent:
		m.sess = nil
	case xproto.MotionNotifyEvent:
		m.onMotionNotify(m.coalesceMotion(e))
	case xproto.KeyPressEvent:
		return m.onKeyPress(e)
	case xproto.DestroyNotifyEvent:
		m.onDestroyNotify(e)
	case xproto.CreateNotifyEvent, xproto.MapNotifyEvent, xproto.ReparentNotifyEvent,
		xproto.ConfigureNotifyEvent, xproto.KeyReleaseEvent:
		// Bookkeeping notifications with no action to take.
	default:
		logging.Logger.Debug().Str("event", fmt.Sprintf("%T", ev)).Msg("ignored event")
	}
	return nil
}

// onUnmapNotify unframes a managed client when it unmaps itself. Two kinds
// of artifact are ignored: events for windows we never framed (including our
// own frames being destroyed), and the unmap generated by reparenting a
// pre-existing window, which reports the root window as the event window.
func (m *Manager) onUnmapNotify(e xproto.UnmapNotifyEvent) error {
	if _, ok := m.reg.Lookup(e.Window); !ok {
		logging.Logger.Debug().Uint32("window", uint32(e.Window)).
			Msg("ignoring UnmapNotify for unmanaged window")
		return nil
	}
	if e.Event == m.gw.Root() {
		logging.Logger.Debug().Uint32("window", uint32(e.Window)).
			Msg("ignoring UnmapNotify from reparenting a pre-existing window")
		return nil
	}
	return m.Unframe(e.Window)
}

// onMapRequest frames the window, maps it, and centers the new frame under
// the pointer.
func (m *Manager) onMapRequest(e xproto.MapRequestEvent) error {
	if err := m.Frame(e.Window, false); err != nil {
		return err
	}
	m.gw.MapWindow(e.Window)

	frame, ok := m.reg.Lookup(e.Window)
	if !ok {
		return nil
	}
	geom, err := m.gw.GeometryOf(frame)
	if err != nil {
		logging.Logger.Warn().Uint32("frame", uint32(frame)).Err(err).
			Msg("cannot center frame under pointer")
		return nil
	}
	px, py, err := m.gw.PointerPosition()
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("cannot center frame under pointer")
		return nil
	}
	m.gw.MoveWindow(frame, px-geom.Width/2, py-geom.Height/2)
	return nil
}

// onConfigureRequest forwards the client's configure request verbatim, to
// the frame first when the client is managed, then to the client itself.
func (m *Manager) onConfigureRequest(e xproto.ConfigureRequestEvent) {
	values := configureValues(e)
	if frame, ok := m.reg.Lookup(e.Window); ok {
		m.gw.ConfigureWindow(frame, e.ValueMask, values)
	}
	m.gw.ConfigureWindow(e.Window, e.ValueMask, values)
}

// configureValues rebuilds the request's value list in wire order from the
// fields named by its value mask.
func configureValues(e xproto.ConfigureRequestEvent) []uint32 {
	values := make([]uint32, 0, 7)
	if e.ValueMask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(e.X))
	}
	if e.ValueMask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(e.Y))
	}
	if e.ValueMask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(e.Width))
	}
	if e.ValueMask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(e.Height))
	}
	if e.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		values = append(values, uint32(e.BorderWidth))
	}
	if e.ValueMask&xproto.ConfigWindowSibling != 0 {
		values = append(values, uint32(e.Sibling))
	}
	if e.ValueMask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(e.StackMode))
	}
	return values
}

// onButtonPress starts a drag session anchored at the press position and the
// frame's current geometry, and raises the frame. The grab exists only on
// managed clients, so an unmanaged event window is an invariant violation.
func (m *Manager) onButtonPress(e xproto.ButtonPressEvent) error {
	frame, ok := m.reg.Lookup(e.Event)
	if !ok {
		return fmt.Errorf("button press on unmanaged window %d", e.Event)
	}
	geom, err := m.gw.GeometryOf(frame)
	if err != nil {
		logging.Logger.Warn().Uint32("frame", uint32(frame)).Err(err).
			Msg("cannot start drag")
		return nil
	}

	mode := drag.Move
	if e.Detail == xproto.ButtonIndex3 {
		mode = drag.Resize
	}
	m.sess = &drag.Session{
		Mode:           mode,
		Client:         e.Event,
		Frame:          frame,
		AnchorPointerX: int(e.RootX),
		AnchorPointerY: int(e.RootY),
		AnchorFrame:    geom,
	}
	m.gw.RaiseWindow(frame)
	return nil
}

// coalesceMotion drains the queue of consecutive motion events for the same
// window, keeping only the newest. Draining stops at the first unrelated
// event, which is queued for normal dispatch.
func (m *Manager) coalesceMotion(e xproto.MotionNotifyEvent) xproto.MotionNotifyEvent {
	for {
		ev, xerr := m.gw.PollEvent()
		if xerr != nil {
			logging.Logger.Error().Msg(xerr.Error())
			continue
		}
		if ev == nil {
			return e
		}
		if me, ok := ev.(xproto.MotionNotifyEvent); ok && me.Event == e.Event {
			e = me
			continue
		}
		m.pending = append(m.pending, ev)
		return e
	}
}

// onMotionNotify applies the active drag session. Move updates only the
// frame position; resize updates the frame and its client in lockstep.
func (m *Manager) onMotionNotify(e xproto.MotionNotifyEvent) {
	if m.sess == nil || m.sess.Client != e.Event {
		return
	}
	switch m.sess.Mode {
	case drag.Move:
		x, y := m.sess.MoveTarget(int(e.RootX), int(e.RootY))
		m.gw.MoveWindow(m.sess.Frame, x, y)
	case drag.Resize:
		w, h := m.sess.ResizeTarget(int(e.RootX), int(e.RootY))
		m.gw.ResizeWindow(m.sess.Frame, w, h)
		m.gw.ResizeWindow(m.sess.Client, w, h)
	}
}

// onKeyPress dispatches the management chords.
func (m *Manager) onKeyPress(e xproto.KeyPressEvent) error {
	if e.State&m.gw.ModifierMask() == 0 {
		return nil
	}

	switch e.Detail {
	case m.gw.Keycode("q"):
		logging.Logger.Info().Uint32("window", uint32(e.Event)).Msg("killing window")
		m.gw.KillClient(e.Event)

	case m.gw.Keycode("Right"):
		m.layoutOp(e.Event, "grow right", func(snap layout.Snapshot, frame xproto.Window) ([]layout.Change, bool) {
			changes, ok := layout.GrowRight(snap, frame, m.cfg.ResizeStep, m.cfg.MinWindowWidth)
			if ok {
				m.gw.RaiseWindow(frame)
			}
			return changes, ok
		})

	case m.gw.Keycode("Left"):
		m.layoutOp(e.Event, "shrink left", func(snap layout.Snapshot, frame xproto.Window) ([]layout.Change, bool) {
			return layout.ShrinkLeft(snap, frame, m.cfg.ResizeStep, m.cfg.MinWindowWidth)
		})

	case m.gw.Keycode("d"):
		m.layoutOp(e.Event, "swap right", func(snap layout.Snapshot, frame xproto.Window) ([]layout.Change, bool) {
			return layout.SwapRight(snap, frame)
		})

	case m.gw.Keycode("a"):
		m.layoutOp(e.Event, "swap left", func(snap layout.Snapshot, frame xproto.Window) ([]layout.Change, bool) {
			return layout.SwapLeft(snap, frame)
		})

	case m.gw.Keycode("t"):
		m.tile()

	case m.gw.Keycode("Return"):
		if err := m.spawn(m.cfg.LauncherCommand); err != nil {
			logging.Logger.Error().Err(err).Msg("launcher failed")
		}

	case m.gw.Keycode("Tab"):
		return m.focusNext(e.Event)
	}
	return nil
}

// layoutOp runs one directional operation for the frame of the chorded
// client against a fresh geometry snapshot and applies the resulting
// changes.
func (m *Manager) layoutOp(client xproto.Window, name string,
	op func(layout.Snapshot, xproto.Window) ([]layout.Change, bool)) {

	frame, ok := m.reg.Lookup(client)
	if !ok {
		logging.Logger.Warn().Uint32("window", uint32(client)).
			Str("op", name).Msg("layout chord on unmanaged window")
		return
	}
	snap, err := m.snapshot()
	if err != nil {
		logging.Logger.Error().Err(err).Str("op", name).Msg("cannot snapshot layout")
		return
	}
	changes, ok := op(snap, frame)
	if !ok {
		logging.Logger.Debug().Str("op", name).Msg("layout operation not applicable")
		return
	}
	m.applyChanges(changes)
}

// tile arranges every top-level window into equal-width columns.
func (m *Manager) tile() {
	snap, err := m.snapshot()
	if err != nil {
		logging.Logger.Error().Err(err).Msg("cannot snapshot layout")
		return
	}
	w, h := m.gw.ScreenSize()
	m.applyChanges(layout.Columns(snap, w, h))
}

// focusNext raises and focuses the client registered after the chorded one,
// wrapping around at the end.
func (m *Manager) focusNext(client xproto.Window) error {
	next, err := m.reg.Successor(client)
	if err != nil {
		if err == registry.ErrEmpty {
			return nil
		}
		return err
	}
	frame, ok := m.reg.Lookup(next)
	if !ok {
		return fmt.Errorf("client %d has no frame", next)
	}
	m.gw.RaiseWindow(frame)
	m.gw.FocusWindow(next)
	return nil
}

// snapshot captures the geometry of every top-level window. Windows that
// vanish mid-scan are skipped.
func (m *Manager) snapshot() (layout.Snapshot, error) {
	wins, err := m.gw.TopLevelWindows()
	if err != nil {
		return nil, err
	}
	snap := make(layout.Snapshot, 0, len(wins))
	for _, w := range wins {
		geom, err := m.gw.GeometryOf(w)
		if err != nil {
			continue
		}
		snap = append(snap, layout.Window{ID: w, Rect: geom})
	}
	return snap, nil
}

// applyChanges moves each frame to its computed rectangle and propagates the
// new size to the frame's first child.
func (m *Manager) applyChanges(changes []layout.Change) {
	for _, ch := range changes {
		m.gw.MoveResizeWindow(ch.Window, ch.Rect)
		if child, ok := m.gw.FirstChild(ch.Window); ok {
			m.gw.ResizeWindow(child, ch.Rect.Width, ch.Rect.Height)
		}
	}
}

// onDestroyNotify cleans up after a client that was destroyed while still
// registered. The usual path is UnmapNotify followed by Unframe; this covers
// clients torn down without a preceding unmap.
func (m *Manager) onDestroyNotify(e xproto.DestroyNotifyEvent) {
	frame, ok := m.reg.Lookup(e.Window)
	if !ok {
		return
	}
	m.gw.UnmapWindow(frame)
	m.gw.DestroyWindow(frame)
	m.reg.Unregister(e.Window)
	logging.Logger.Info().
		Uint32("client", uint32(e.Window)).
		Uint32("frame", uint32(frame)).
		Msg("reaped frame of destroyed window")
}
