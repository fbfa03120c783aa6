// Package registry maintains the authoritative mapping from managed client
// windows to the frames that reparent them. Entries keep insertion order so
// focus cycling can walk them deterministically.
package registry

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

var (
	// ErrEmpty is returned by Successor when no clients are registered.
	ErrEmpty = errors.New("registry is empty")
)

// Registry maps client windows to frame windows in insertion order. It is
// accessed only from the manager's single dispatch goroutine and needs no
// locking.
type Registry struct {
	frames map[xproto.Window]xproto.Window
	order  []xproto.Window
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{frames: make(map[xproto.Window]xproto.Window)}
}

// Register records the client→frame pair. Registering a client twice is a
// dispatcher bug, not a runtime condition; callers treat the error as fatal.
func (r *Registry) Register(client, frame xproto.Window) error {
	if _, ok := r.frames[client]; ok {
		return fmt.Errorf("client %d is already framed", client)
	}
	r.frames[client] = frame
	r.order = append(r.order, client)
	return nil
}

// Lookup returns the frame for client. Absence means the window is not
// managed; client-scoped events for such windows are ignored, not errors.
func (r *Registry) Lookup(client xproto.Window) (xproto.Window, bool) {
	frame, ok := r.frames[client]
	return frame, ok
}

// Unregister removes client. Removing an unknown client is a no-op; the
// pairing with frame teardown is enforced by the caller.
func (r *Registry) Unregister(client xproto.Window) {
	if _, ok := r.frames[client]; !ok {
		return
	}
	delete(r.frames, client)
	for i, c := range r.order {
		if c == client {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Successor returns the client registered after the given one, wrapping to
// the first entry at the end of the order.
func (r *Registry) Successor(client xproto.Window) (xproto.Window, error) {
	if len(r.order) == 0 {
		return 0, ErrEmpty
	}
	for i, c := range r.order {
		if c == client {
			return r.order[(i+1)%len(r.order)], nil
		}
	}
	return 0, fmt.Errorf("client %d is not registered", client)
}

// Clients returns the registered clients in insertion order.
func (r *Registry) Clients() []xproto.Window {
	out := make([]xproto.Window, len(r.order))
	copy(out, r.order)
	return out
}

// Len reports the number of managed clients.
func (r *Registry) Len() int {
	return len(r.order)
}
