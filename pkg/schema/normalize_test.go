package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize_LegacyAtomTypes(t *testing.T) {
	formation := &Formation{
		LegacyMode: ModeGrid,
		Widgets: []Widget{
			{
				ID: "w1",
				Atoms: []Atom{
					{Type: "price", Value: 19.99},
					{Type: "rating", Value: 4.5},
					{Type: AtomText, Value: "kept as-is"},
				},
			},
		},
	}

	Normalize(formation)

	if formation.Mode != ModeGrid {
		t.Fatalf("legacy formation type not promoted: got %q", formation.Mode)
	}
	if formation.LegacyMode != "" {
		t.Fatalf("legacy mode should be cleared after promotion")
	}

	price := formation.Widgets[0].Atoms[0]
	if price.Type != AtomNumber || price.Subtype != SubtypeCurrency || price.Display != DisplayPrice {
		t.Fatalf("legacy price atom not upgraded: %+v", price)
	}
	rating := formation.Widgets[0].Atoms[1]
	if rating.Type != AtomNumber || rating.Subtype != SubtypeRating || rating.Display != DisplayRating {
		t.Fatalf("legacy rating atom not upgraded: %+v", rating)
	}
	text := formation.Widgets[0].Atoms[2]
	if text.Type != AtomText || text.Display != "" {
		t.Fatalf("current-generation atom should pass through untouched: %+v", text)
	}
}

func TestNormalize_PreservesExplicitDisplay(t *testing.T) {
	formation := &Formation{
		Widgets: []Widget{
			{Atoms: []Atom{{Type: "badge", Display: DisplayBadgeSuccess, Value: "New"}}},
		},
	}

	Normalize(formation)

	atom := formation.Widgets[0].Atoms[0]
	if atom.Display != DisplayBadgeSuccess {
		t.Fatalf("explicit display must survive migration, got %q", atom.Display)
	}
	if atom.Type != AtomText || atom.Subtype != SubtypeString {
		t.Fatalf("type/subtype should still upgrade: %+v", atom)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	formation := &Formation{
		Widgets: []Widget{
			{Atoms: []Atom{{Type: "selector", Value: []any{"S", "M", "L"}}}},
		},
	}

	Normalize(formation)
	first := formation.Widgets[0].Atoms[0]
	Normalize(formation)
	second := formation.Widgets[0].Atoms[0]

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second Normalize changed the atom (-first +second):\n%s", diff)
	}
}

func TestNormalize_NilSafe(t *testing.T) {
	Normalize(nil)
}

func TestGroupBySlot_DefaultsToPrimary(t *testing.T) {
	atoms := []Atom{
		{Slot: SlotTitle, Value: "Name"},
		{Value: "no slot"},
		{Slot: SlotPrice, Value: 10},
		{Slot: SlotPrice, Value: 12},
	}

	slots := GroupBySlot(atoms)

	if len(slots[SlotTitle]) != 1 {
		t.Fatalf("title slot: got %d atoms", len(slots[SlotTitle]))
	}
	if len(slots[SlotPrimary]) != 1 {
		t.Fatalf("slotless atom should land in primary, got %d", len(slots[SlotPrimary]))
	}
	if len(slots[SlotPrice]) != 2 {
		t.Fatalf("price slot: got %d atoms", len(slots[SlotPrice]))
	}
	if _, ok := slots[SlotSecondary]; ok {
		t.Fatalf("empty slots must not appear in the grouping")
	}
}

func TestNormalizeImages(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  []string
	}{
		{"single url", "https://cdn/a.jpg", []string{"https://cdn/a.jpg"}},
		{"string slice", []string{"a", "b"}, []string{"a", "b"}},
		{"json slice", []any{"a", "b"}, []string{"a", "b"}},
		{"empty string", "", nil},
		{"number", 42, nil},
		{"nil", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, NormalizeImages(tc.value)); diff != "" {
				t.Fatalf("NormalizeImages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEntityAccessors(t *testing.T) {
	entity := Entity{
		"id":       "p1",
		"name":     "Sneaker",
		"price":    129.0,
		"tags":     []any{"running", "sale"},
		"attrs":    map[string]any{"color": "red"},
		"currency": "€",
	}

	if entity.ID() != "p1" {
		t.Fatalf("ID: got %q", entity.ID())
	}
	if v, ok := entity.Float("price"); !ok || v != 129.0 {
		t.Fatalf("Float: got %v ok=%v", v, ok)
	}
	if diff := cmp.Diff([]string{"running", "sale"}, entity.Strings("tags")); diff != "" {
		t.Fatalf("Strings mismatch:\n%s", diff)
	}
	if entity.Map("attrs")["color"] != "red" {
		t.Fatalf("Map: got %v", entity.Map("attrs"))
	}
	if entity.Currency() != "€" {
		t.Fatalf("Currency: got %q", entity.Currency())
	}
	if (Entity{}).Currency() != "$" {
		t.Fatalf("Currency default should be $")
	}
}
