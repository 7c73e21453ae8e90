package render

import "testing"

func TestCarouselAdvanceWraps(t *testing.T) {
	state := NewCarouselState()

	if got := state.Index("w1", 3); got != 0 {
		t.Fatalf("initial index = %d, want 0", got)
	}
	if got := state.Advance("w1", 3); got != 1 {
		t.Errorf("first advance = %d, want 1", got)
	}
	state.Advance("w1", 3)
	if got := state.Advance("w1", 3); got != 0 {
		t.Errorf("advance past end = %d, want wrap to 0", got)
	}
}

func TestCarouselJumpTo(t *testing.T) {
	state := NewCarouselState()

	if got := state.JumpTo("w1", 2, 4); got != 2 {
		t.Errorf("jump = %d, want 2", got)
	}
	if got := state.JumpTo("w1", 9, 4); got != 2 {
		t.Errorf("out-of-range jump = %d, want current position 2", got)
	}
	if got := state.JumpTo("w1", -1, 4); got != 2 {
		t.Errorf("negative jump = %d, want current position 2", got)
	}
}

func TestCarouselSnapshot(t *testing.T) {
	var nilState *CarouselState
	if nilState.Snapshot() != nil {
		t.Error("nil state snapshot should be nil")
	}
	if nilState.Advance("w1", 3) != 0 {
		t.Error("nil state advance should stay at 0")
	}

	state := NewCarouselState()
	if state.Snapshot() != nil {
		t.Error("empty state snapshot should be nil")
	}
	state.Advance("w1", 3)
	state.JumpTo("w2", 1, 2)

	snap := state.Snapshot()
	if snap["w1"] != 1 || snap["w2"] != 1 {
		t.Errorf("snapshot = %v, want w1:1 w2:1", snap)
	}

	snap["w1"] = 99
	if state.Index("w1", 3) != 1 {
		t.Error("mutating the snapshot must not affect the state")
	}
}
