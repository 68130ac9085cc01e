package input

import (
	"testing"
)

func TestUpdateMovementFlags(t *testing.T) {
	testCases := []Sample{
		{Forward: true},
		{Forward: true, Right: true},
		{},
		{Backward: true, Left: true},
		{Forward: true, Backward: true, Left: true, Right: true},
		{Left: true},
		{},
	}

	var s State
	for i, sample := range testCases {
		s.Update(sample)
		if s.MoveForward != sample.Forward ||
			s.MoveBackward != sample.Backward ||
			s.MoveLeft != sample.Left ||
			s.MoveRight != sample.Right {
			t.Errorf("[%d] flags (%v, %v, %v, %v) do not mirror sample %+v",
				i, s.MoveForward, s.MoveBackward, s.MoveLeft, s.MoveRight, sample)
		}
		if s.Moving() != (sample.Forward || sample.Backward || sample.Left || sample.Right) {
			t.Errorf("[%d] Moving() = %v", i, s.Moving())
		}
	}
}

func TestUpdateFirstMouseDeltaIsZero(t *testing.T) {
	positions := [][2]float64{
		{0, 0},
		{400, 300},
		{-1200, 98765},
	}

	for i, p := range positions {
		var s State
		s.Update(Sample{CursorX: p[0], CursorY: p[1]})
		if s.MouseDX != 0 || s.MouseDY != 0 {
			t.Errorf("[%d] first delta is (%f, %f), expected (0, 0)", i, s.MouseDX, s.MouseDY)
		}
	}
}

func TestUpdateMouseDelta(t *testing.T) {
	testCases := []struct {
		x, y   float64
		dx, dy float32
	}{
		{400, 300, 0, 0},
		{410, 300, 10, 0},
		{410, 280, 0, 20},
		{395, 310, -15, -30},
		{395, 310, 0, 0},
	}

	var s State
	for i, tt := range testCases {
		s.Update(Sample{CursorX: tt.x, CursorY: tt.y})
		if s.MouseDX != tt.dx || s.MouseDY != tt.dy {
			t.Errorf("[%d] delta is (%f, %f), expected (%f, %f)", i, s.MouseDX, s.MouseDY, tt.dx, tt.dy)
		}
	}
}

func TestResetMouse(t *testing.T) {
	var s State
	s.Update(Sample{CursorX: 10, CursorY: 10})
	s.ResetMouse()
	s.Update(Sample{CursorX: 500, CursorY: 500})
	if s.MouseDX != 0 || s.MouseDY != 0 {
		t.Fatalf("delta after reset is (%f, %f), expected (0, 0)", s.MouseDX, s.MouseDY)
	}

	s.Update(Sample{CursorX: 501, CursorY: 499})
	if s.MouseDX != 1 || s.MouseDY != 1 {
		t.Errorf("delta is (%f, %f), expected (1, 1)", s.MouseDX, s.MouseDY)
	}
}

func TestUpdateScrollDelta(t *testing.T) {
	var s State

	s.Update(Sample{})
	if s.ScrollDelta != 0 {
		t.Fatalf("scroll delta without events is %f", s.ScrollDelta)
	}

	s.AddScroll(1)
	s.AddScroll(2)
	s.Update(Sample{})
	if s.ScrollDelta != 3 {
		t.Errorf("scroll delta is %f, expected 3", s.ScrollDelta)
	}

	s.Update(Sample{})
	if s.ScrollDelta != 0 {
		t.Errorf("scroll delta without new events is %f, expected 0", s.ScrollDelta)
	}

	s.AddScroll(-0.5)
	s.Update(Sample{})
	if s.ScrollDelta != -0.5 {
		t.Errorf("scroll delta is %f, expected -0.5", s.ScrollDelta)
	}
}
