package nav

import "github.com/shopglass/go-shopglass/pkg/schema"

// Entry is one step of navigation history: the formation that was on screen
// and a short label for breadcrumb display.
type Entry struct {
	Formation *schema.Formation `json:"formation"`
	Label     string            `json:"label"`
}

// Model is the navigation history contract. The shipped implementation is
// the non-destructive trail; a destructive LIFO stack satisfied the same
// interface in an earlier iteration and was retired.
type Model interface {
	// Push appends an entry and makes it current.
	Push(entry Entry)
	// GoBack moves the cursor one entry toward the start and returns the
	// entry it lands on. It reports false when no prior entry exists.
	GoBack() (Entry, bool)
	// Current returns the entry under the cursor.
	Current() (Entry, bool)
	// CanGoBack reports whether a prior entry exists.
	CanGoBack() bool
	// Len is the number of entries held.
	Len() int
	// Entries returns the full history for breadcrumb display.
	Entries() []Entry
	// Clear empties the history.
	Clear()
}

// Trail is an ever-growing history with a cursor. Back moves the cursor
// without discarding entries, so the breadcrumb keeps the full path; pushing
// while the cursor sits mid-history truncates the abandoned suffix first,
// matching browser back-then-navigate semantics.
type Trail struct {
	entries []Entry
	cursor  int
}

// NewTrail returns an empty trail.
func NewTrail() *Trail {
	return &Trail{cursor: -1}
}

func (t *Trail) Push(entry Entry) {
	if t.cursor < len(t.entries)-1 {
		t.entries = t.entries[:t.cursor+1]
	}
	t.entries = append(t.entries, entry)
	t.cursor = len(t.entries) - 1
}

func (t *Trail) GoBack() (Entry, bool) {
	if t.cursor <= 0 {
		return Entry{}, false
	}
	t.cursor--
	return t.entries[t.cursor], true
}

func (t *Trail) Current() (Entry, bool) {
	if t.cursor < 0 || t.cursor >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[t.cursor], true
}

func (t *Trail) CanGoBack() bool {
	return t.cursor > 0
}

func (t *Trail) Len() int {
	return len(t.entries)
}

func (t *Trail) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Trail) Clear() {
	t.entries = nil
	t.cursor = -1
}
