package schema

// legacyAtom maps an atom type token from the oldest schema generation to its
// current type, subtype, and display triple.
type legacyAtom struct {
	Type    AtomType
	Subtype AtomSubtype
	Display string
}

// LegacyAtomTypes is the compatibility table for type-only atoms. Tokens not
// present here were already valid base types in the old generation.
var LegacyAtomTypes = map[string]legacyAtom{
	"price":    {AtomNumber, SubtypeCurrency, DisplayPrice},
	"rating":   {AtomNumber, SubtypeRating, DisplayRating},
	"badge":    {AtomText, SubtypeString, DisplayBadge},
	"button":   {AtomText, SubtypeString, DisplayButtonPrimary},
	"divider":  {AtomText, SubtypeString, DisplayDivider},
	"progress": {AtomNumber, SubtypePercent, DisplayProgress},
	"selector": {AtomText, SubtypeString, DisplayTag},
}

// Normalize upgrades a formation to the current schema generation in place.
// It is the single migration boundary: legacy type-only atoms gain their
// subtype and display, legacy formation "type" is promoted to Mode, and
// type-keyed widgets keep their LegacyType so the renderer can pick the
// legacy layout. Calling Normalize on a current-generation payload is a
// no-op, and calling it twice is safe.
func Normalize(f *Formation) {
	if f == nil {
		return
	}
	if f.Mode == "" && f.LegacyMode != "" {
		f.Mode = f.LegacyMode
	}
	f.LegacyMode = ""
	for wi := range f.Widgets {
		normalizeWidget(&f.Widgets[wi])
	}
}

func normalizeWidget(w *Widget) {
	for ai := range w.Atoms {
		normalizeAtom(&w.Atoms[ai])
	}
}

func normalizeAtom(a *Atom) {
	mapped, ok := LegacyAtomTypes[string(a.Type)]
	if !ok {
		return
	}
	a.Type = mapped.Type
	if a.Subtype == "" {
		a.Subtype = mapped.Subtype
	}
	if a.Display == "" {
		a.Display = mapped.Display
	}
}

// GroupBySlot partitions atoms by slot, defaulting the slot to primary when
// absent. Slots with zero atoms simply do not appear in the result.
func GroupBySlot(atoms []Atom) map[Slot][]Atom {
	slots := make(map[Slot][]Atom)
	for _, atom := range atoms {
		slot := atom.Slot
		if slot == "" {
			slot = SlotPrimary
		}
		slots[slot] = append(slots[slot], atom)
	}
	return slots
}

// NormalizeImages coerces an image atom value into a slice of URLs. A single
// string becomes a one-element slice; anything unrecognised yields nil.
func NormalizeImages(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		urls := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				urls = append(urls, s)
			}
		}
		if len(urls) == 0 {
			return nil
		}
		return urls
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}
