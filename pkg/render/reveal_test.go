package render

import "testing"

func TestRevealState_InitialBatch(t *testing.T) {
	s := NewRevealState()
	if got := s.Visible(30); got != 12 {
		t.Fatalf("initial visible: want 12, got %d", got)
	}
	if s.Exhausted(30) {
		t.Fatalf("30 widgets cannot be exhausted after one batch")
	}
}

func TestRevealState_AdvanceSequence(t *testing.T) {
	s := NewRevealState()
	total := 30

	// After N sentinel intersections, min(12+12N, total) widgets are visible.
	want := []int{24, 30, 30}
	for i, expected := range want {
		s.Advance(total)
		if got := s.Visible(total); got != expected {
			t.Fatalf("after %d advances: want %d visible, got %d", i+1, expected, got)
		}
	}
}

func TestRevealState_NeverExceedsTotal(t *testing.T) {
	s := NewRevealState()
	if got := s.Visible(5); got != 5 {
		t.Fatalf("small formation shows all widgets: got %d", got)
	}
	if s.Advance(5) {
		t.Fatalf("advance past the total must be a no-op")
	}
	if !s.Exhausted(5) {
		t.Fatalf("5 widgets are exhausted within the first batch")
	}
}

func TestRevealState_NeverDecreases(t *testing.T) {
	s := NewRevealState()
	s.Advance(40)
	before := s.Visible(40)
	for i := 0; i < 3; i++ {
		if got := s.Visible(40); got < before {
			t.Fatalf("visible count decreased from %d to %d", before, got)
		}
	}
}

func TestRevealState_ResetOnNewFormation(t *testing.T) {
	s := NewRevealState()
	s.Advance(40)
	s.Advance(40)
	s.Reset()
	if got := s.Visible(40); got != 12 {
		t.Fatalf("reset must return to the initial batch, got %d", got)
	}
}

func TestRevealState_NilSafe(t *testing.T) {
	var s *RevealState
	if got := s.Visible(30); got != 12 {
		t.Fatalf("nil state shows the initial batch, got %d", got)
	}
	if s.Advance(30) {
		t.Fatalf("nil state cannot advance")
	}
	s.Reset()
}

func TestCarouselState(t *testing.T) {
	c := NewCarouselState()

	if c.Index("w1", 3) != 0 {
		t.Fatalf("carousels start at zero")
	}
	if got := c.Advance("w1", 3); got != 1 {
		t.Fatalf("advance: got %d", got)
	}
	c.Advance("w1", 3)
	if got := c.Advance("w1", 3); got != 0 {
		t.Fatalf("advance wraps to zero, got %d", got)
	}

	if got := c.JumpTo("w1", 2, 3); got != 2 {
		t.Fatalf("jump: got %d", got)
	}
	if got := c.JumpTo("w1", 9, 3); got != 2 {
		t.Fatalf("out-of-range jump keeps position, got %d", got)
	}

	snap := c.Snapshot()
	if snap["w1"] != 2 {
		t.Fatalf("snapshot: got %v", snap)
	}
}
