package layout

import "testing"

func twoColumns() Snapshot {
	return Snapshot{
		{ID: 10, Rect: Rect{X: 0, Y: 0, Width: 300, Height: 500}},
		{ID: 20, Rect: Rect{X: 300, Y: 0, Width: 250, Height: 500}},
	}
}

func TestGrowRight_TakesSpaceFromNeighbor(t *testing.T) {
	changes, ok := GrowRight(twoColumns(), 10, 100, 100)
	if !ok {
		t.Fatalf("expected grow to apply")
	}
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[0].Window != 20 || changes[0].Rect != (Rect{X: 400, Y: 0, Width: 150, Height: 500}) {
		t.Fatalf("unexpected neighbor change: %+v", changes[0])
	}
	if changes[1].Window != 10 || changes[1].Rect != (Rect{X: 0, Y: 0, Width: 400, Height: 500}) {
		t.Fatalf("unexpected acting change: %+v", changes[1])
	}
}

func TestGrowRight_NeighborAtMinimumWidth(t *testing.T) {
	snap := Snapshot{
		{ID: 10, Rect: Rect{X: 0, Y: 0, Width: 300, Height: 500}},
		{ID: 20, Rect: Rect{X: 300, Y: 0, Width: 100, Height: 500}},
	}
	if _, ok := GrowRight(snap, 10, 100, 100); ok {
		t.Fatalf("expected no-op when neighbor is at minimum width")
	}
}

func TestGrowRight_NoNeighbor(t *testing.T) {
	snap := Snapshot{
		{ID: 10, Rect: Rect{X: 0, Y: 0, Width: 300, Height: 500}},
		{ID: 20, Rect: Rect{X: 500, Y: 0, Width: 250, Height: 500}},
	}
	if _, ok := GrowRight(snap, 10, 100, 100); ok {
		t.Fatalf("expected no-op without an adjacent neighbor")
	}
}

func TestGrowRight_ActingWindowMissing(t *testing.T) {
	if _, ok := GrowRight(twoColumns(), 99, 100, 100); ok {
		t.Fatalf("expected no-op for window absent from snapshot")
	}
}

func TestShrinkLeft_HandsSpaceToNeighbor(t *testing.T) {
	changes, ok := ShrinkLeft(twoColumns(), 10, 100, 100)
	if !ok {
		t.Fatalf("expected shrink to apply")
	}
	if changes[0].Window != 20 || changes[0].Rect != (Rect{X: 200, Y: 0, Width: 350, Height: 500}) {
		t.Fatalf("unexpected neighbor change: %+v", changes[0])
	}
	if changes[1].Window != 10 || changes[1].Rect != (Rect{X: 0, Y: 0, Width: 200, Height: 500}) {
		t.Fatalf("unexpected acting change: %+v", changes[1])
	}
}

func TestShrinkLeft_ActingAtMinimumWidth(t *testing.T) {
	snap := Snapshot{
		{ID: 10, Rect: Rect{X: 0, Y: 0, Width: 100, Height: 500}},
		{ID: 20, Rect: Rect{X: 100, Y: 0, Width: 250, Height: 500}},
	}
	if _, ok := ShrinkLeft(snap, 10, 100, 100); ok {
		t.Fatalf("expected no-op when acting window is at minimum width")
	}
}

func TestSwapRight_TradesPlaces(t *testing.T) {
	changes, ok := SwapRight(twoColumns(), 10)
	if !ok {
		t.Fatalf("expected swap to apply")
	}
	if changes[0].Window != 10 || changes[0].Rect != (Rect{X: 300, Y: 0, Width: 250, Height: 500}) {
		t.Fatalf("unexpected acting change: %+v", changes[0])
	}
	if changes[1].Window != 20 || changes[1].Rect != (Rect{X: 0, Y: 0, Width: 300, Height: 500}) {
		t.Fatalf("unexpected neighbor change: %+v", changes[1])
	}
}

func TestSwapLeft_TradesPlaces(t *testing.T) {
	changes, ok := SwapLeft(twoColumns(), 20)
	if !ok {
		t.Fatalf("expected swap to apply")
	}
	if changes[0].Window != 20 || changes[0].Rect != (Rect{X: 0, Y: 0, Width: 300, Height: 500}) {
		t.Fatalf("unexpected acting change: %+v", changes[0])
	}
	if changes[1].Window != 10 || changes[1].Rect != (Rect{X: 300, Y: 0, Width: 250, Height: 500}) {
		t.Fatalf("unexpected neighbor change: %+v", changes[1])
	}
}

func TestSwapRight_NoNeighbor(t *testing.T) {
	if _, ok := SwapRight(twoColumns(), 20); ok {
		t.Fatalf("expected no-op for rightmost window")
	}
}

func TestColumns_EqualWidths(t *testing.T) {
	snap := Snapshot{
		{ID: 1, Rect: Rect{X: 5, Y: 5, Width: 10, Height: 10}},
		{ID: 2, Rect: Rect{X: 50, Y: 50, Width: 10, Height: 10}},
		{ID: 3, Rect: Rect{X: 90, Y: 90, Width: 10, Height: 10}},
	}
	changes := Columns(snap, 1920, 1080)
	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d", len(changes))
	}
	for i, ch := range changes {
		want := Rect{X: i * 640, Y: 0, Width: 640, Height: 1080}
		if ch.Rect != want {
			t.Fatalf("column %d: expected %+v, got %+v", i, want, ch.Rect)
		}
	}
}

func TestColumns_IntegerDivision(t *testing.T) {
	snap := Snapshot{
		{ID: 1}, {ID: 2}, {ID: 3},
	}
	changes := Columns(snap, 1000, 800)
	for i, ch := range changes {
		if ch.Rect.Width != 333 {
			t.Fatalf("expected truncated width 333, got %d", ch.Rect.Width)
		}
		if ch.Rect.X != i*333 {
			t.Fatalf("column %d: expected x=%d, got %d", i, i*333, ch.Rect.X)
		}
	}
}

func TestColumns_EmptySnapshot(t *testing.T) {
	if changes := Columns(nil, 1920, 1080); changes != nil {
		t.Fatalf("expected nil changes for empty snapshot, got %+v", changes)
	}
}
