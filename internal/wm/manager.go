// Package wm implements the window manager proper: it claims substructure
// redirection on the root window, wraps every managed client in a frame
// window, and dispatches X events to the handlers that maintain that
// arrangement.
package wm

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/framewm/internal/config"
	"github.com/1broseidon/framewm/internal/drag"
	"github.com/1broseidon/framewm/internal/logging"
	"github.com/1broseidon/framewm/internal/registry"
	"github.com/1broseidon/framewm/internal/x11"
)

// ErrConnectionClosed is returned by Run when the X connection drops.
var ErrConnectionClosed = errors.New("X connection closed")

// Manager owns the frame lifecycle and the event loop. All state is touched
// only from the goroutine running Run.
type Manager struct {
	gw  Gateway
	cfg *config.Config
	reg *registry.Registry

	sess    *drag.Session
	pending []xgb.Event

	spawn func(command string) error
}

// New builds a manager on the given gateway and configuration.
func New(gw Gateway, cfg *config.Config) *Manager {
	return &Manager{
		gw:    gw,
		cfg:   cfg,
		reg:   registry.New(),
		spawn: spawnCommand,
	}
}

func spawnCommand(command string) error {
	cmd := exec.Command("/bin/sh", "-c", command)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to spawn %q: %w", command, err)
	}
	go cmd.Wait()
	return nil
}

// Run claims the root window, adopts the windows that predate the manager
// and then dispatches events until the connection closes or an invariant is
// violated. The returned error is the reason the manager stopped.
func (m *Manager) Run() error {
	if err := m.gw.SelectRedirect(); err != nil {
		return err
	}
	if err := m.adoptExisting(); err != nil {
		return err
	}
	m.gw.GrabRootInputs()
	m.gw.Sync()
	logging.Logger.Info().Int("clients", m.reg.Len()).Msg("window manager running")

	for {
		ev, xerr := m.nextEvent()
		if xerr != nil {
			logging.Logger.Error().Msg(x11.FormatXError(xerr))
			continue
		}
		if ev == nil {
			return ErrConnectionClosed
		}
		if err := m.handleEvent(ev); err != nil {
			return err
		}
	}
}

// adoptExisting frames the top-level windows that were mapped before the
// manager started. The server is grabbed so the window population cannot
// change mid-scan.
func (m *Manager) adoptExisting() error {
	m.gw.GrabServer()
	defer m.gw.UngrabServer()

	wins, err := m.gw.TopLevelWindows()
	if err != nil {
		return err
	}
	for _, w := range wins {
		if err := m.Frame(w, true); err != nil {
			return err
		}
	}
	return nil
}

// Frame wraps client in a newly created frame window. Pre-existing windows
// are framed only when they are viewable and do not set override-redirect.
// Framing an already-framed client is an invariant violation.
func (m *Manager) Frame(client xproto.Window, preExisting bool) error {
	if _, ok := m.reg.Lookup(client); ok {
		return fmt.Errorf("client %d is already framed", client)
	}

	if preExisting {
		attrs, err := m.gw.AttributesOf(client)
		if err != nil {
			logging.Logger.Warn().Uint32("window", uint32(client)).Err(err).
				Msg("skipping window with unreadable attributes")
			return nil
		}
		if attrs.OverrideRedirect || !attrs.Viewable {
			return nil
		}
	}

	geom, err := m.gw.GeometryOf(client)
	if err != nil {
		logging.Logger.Warn().Uint32("window", uint32(client)).Err(err).
			Msg("skipping window that vanished before framing")
		return nil
	}

	frame, err := m.gw.CreateFrame(geom)
	if err != nil {
		return err
	}
	m.gw.AddToSaveSet(client)
	m.gw.ReparentWindow(client, frame, 0, 0)
	m.gw.MapWindow(frame)
	if err := m.reg.Register(client, frame); err != nil {
		return err
	}
	m.gw.GrabManagementInputs(client)

	logging.Logger.Info().
		Uint32("client", uint32(client)).
		Uint32("frame", uint32(frame)).
		Msg("framed window")
	return nil
}

// Unframe reverses Frame: the frame is unmapped, the client handed back to
// the root window, dropped from the save set, and the frame destroyed.
func (m *Manager) Unframe(client xproto.Window) error {
	frame, ok := m.reg.Lookup(client)
	if !ok {
		return fmt.Errorf("client %d is not framed", client)
	}
	m.gw.UnmapWindow(frame)
	m.gw.ReparentWindow(client, m.gw.Root(), 0, 0)
	m.gw.RemoveFromSaveSet(client)
	m.gw.DestroyWindow(frame)
	m.reg.Unregister(client)

	logging.Logger.Info().
		Uint32("client", uint32(client)).
		Uint32("frame", uint32(frame)).
		Msg("unframed window")
	return nil
}

// Registry exposes the managed clients, for inspection.
func (m *Manager) Registry() *registry.Registry {
	return m.reg
}

// nextEvent returns the oldest queued event, blocking on the server only
// when the queue is empty.
func (m *Manager) nextEvent() (xgb.Event, xgb.Error) {
	if len(m.pending) > 0 {
		ev := m.pending[0]
		m.pending = m.pending[1:]
		return ev, nil
	}
	return m.gw.WaitEvent()
}
