package mcp

import (
	"context"
	"errors"
	"testing"
)

type moveCall struct {
	x, y, w, h int
}

type fakeInspector struct {
	windows []WindowInfo
	err     error

	focused []uint32
	killed  []uint32
	moved   map[uint32]moveCall
}

func newFakeInspector() *fakeInspector {
	return &fakeInspector{moved: make(map[uint32]moveCall)}
}

func (f *fakeInspector) Windows() ([]WindowInfo, error) {
	return f.windows, f.err
}

func (f *fakeInspector) FocusWindow(id uint32) error {
	if f.err != nil {
		return f.err
	}
	f.focused = append(f.focused, id)
	return nil
}

func (f *fakeInspector) MoveResizeWindow(id uint32, x, y, w, h int) error {
	if f.err != nil {
		return f.err
	}
	f.moved[id] = moveCall{x, y, w, h}
	return nil
}

func (f *fakeInspector) KillWindow(id uint32) error {
	if f.err != nil {
		return f.err
	}
	f.killed = append(f.killed, id)
	return nil
}

func TestListWindows(t *testing.T) {
	insp := newFakeInspector()
	insp.windows = []WindowInfo{
		{ID: 1000, Client: 100, Name: "editor", X: 0, Y: 0, Width: 960, Height: 1080},
		{ID: 1001, Client: 101, Name: "terminal", X: 960, Y: 0, Width: 960, Height: 1080},
	}
	s := NewServer(insp)

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(out.Windows))
	}
	if out.Windows[0].Name != "editor" {
		t.Fatalf("expected first window named editor, got %q", out.Windows[0].Name)
	}
}

func TestListWindowsError(t *testing.T) {
	insp := newFakeInspector()
	insp.err = errors.New("connection lost")
	s := NewServer(insp)

	if _, _, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFocusWindow(t *testing.T) {
	insp := newFakeInspector()
	s := NewServer(insp)

	_, out, err := s.handleFocusWindow(context.Background(), nil, FocusWindowInput{ID: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 1000 {
		t.Fatalf("expected id 1000 echoed, got %d", out.ID)
	}
	if len(insp.focused) != 1 || insp.focused[0] != 1000 {
		t.Fatalf("expected window 1000 focused, got %v", insp.focused)
	}
}

func TestMoveResizeWindow(t *testing.T) {
	insp := newFakeInspector()
	s := NewServer(insp)

	_, _, err := s.handleMoveResizeWindow(context.Background(), nil, MoveResizeWindowInput{
		ID: 1000, X: 10, Y: 20, Width: 800, Height: 600,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insp.moved[1000] != (moveCall{10, 20, 800, 600}) {
		t.Fatalf("unexpected move call: %+v", insp.moved[1000])
	}
}

func TestKillWindow(t *testing.T) {
	insp := newFakeInspector()
	s := NewServer(insp)

	_, _, err := s.handleKillWindow(context.Background(), nil, KillWindowInput{ID: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(insp.killed) != 1 || insp.killed[0] != 1000 {
		t.Fatalf("expected window 1000 killed, got %v", insp.killed)
	}
}
