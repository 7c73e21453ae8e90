package render

// RevealBatchSize is the number of widgets painted per reveal batch.
const RevealBatchSize = 12

// RevealState is the progressive-reveal cursor for a formation. The initial
// batch is painted immediately; each sentinel intersection advances the
// cursor by one batch until the full widget count is visible. Replacing the
// formation (identity change, not in-place update) resets the cursor.
//
// The cursor never exceeds the widget total and never moves backward while
// the same formation stays current.
type RevealState struct {
	revealed int
}

// NewRevealState returns a cursor at the initial batch size.
func NewRevealState() *RevealState {
	return &RevealState{revealed: RevealBatchSize}
}

// Visible reports how many of total widgets should be painted.
func (s *RevealState) Visible(total int) int {
	if s == nil {
		return min(RevealBatchSize, total)
	}
	if s.revealed == 0 {
		s.revealed = RevealBatchSize
	}
	return min(s.revealed, total)
}

// Advance moves the cursor one batch forward in response to a sentinel
// intersection. It reports whether anything new became visible.
func (s *RevealState) Advance(total int) bool {
	if s == nil {
		return false
	}
	if s.revealed == 0 {
		s.revealed = RevealBatchSize
	}
	if s.revealed >= total {
		return false
	}
	s.revealed += RevealBatchSize
	return true
}

// Reset returns the cursor to the initial batch size. Call it whenever the
// widget collection identity changes.
func (s *RevealState) Reset() {
	if s == nil {
		return
	}
	s.revealed = RevealBatchSize
}

// Exhausted reports whether every widget is already visible, i.e. no
// sentinel needs to be rendered.
func (s *RevealState) Exhausted(total int) bool {
	return s.Visible(total) >= total
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
