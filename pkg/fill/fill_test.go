package fill

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

func detailTemplate() *schema.Formation {
	return &schema.Formation{
		Mode: schema.ModeSingle,
		Widgets: []schema.Widget{
			{
				Template: schema.TemplateProductDetail,
				Size:     "large",
				Atoms: []schema.Atom{
					{Type: schema.AtomImage, Display: schema.DisplayGallery, Slot: schema.SlotGallery, FieldName: "images"},
					{Type: schema.AtomText, Display: schema.DisplayH2, Slot: schema.SlotTitle, FieldName: "name"},
					{Type: schema.AtomNumber, Display: schema.DisplayPriceLg, Slot: schema.SlotPrice, FieldName: "price",
						Meta: map[string]any{"currency": CurrencySentinel}},
					{Type: schema.AtomNumber, Display: schema.DisplayRating, Slot: schema.SlotPrimary, FieldName: "rating"},
					{Type: schema.AtomNumber, Slot: schema.SlotStock, FieldName: "stockQuantity"},
					{Type: schema.AtomText, Display: schema.DisplayBody, Slot: schema.SlotDescription, FieldName: "description"},
					{Type: schema.AtomText, Slot: schema.SlotTags, FieldName: "tags"},
					{Type: schema.AtomText, Slot: schema.SlotSpecs, FieldName: "attributes"},
				},
			},
		},
	}
}

func TestFill(t *testing.T) {
	stamp := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return stamp }
	defer func() { now = time.Now }()

	entity := schema.Entity{
		"id":       "sku-42",
		"name":     "Trail Runner",
		"price":    float64(129),
		"currency": "€",
		"images":   []any{"a.jpg", "b.jpg"},
		"rating":   4.4,
	}

	got := Fill(detailTemplate(), entity, "product")
	if got == nil {
		t.Fatal("Fill() = nil for valid template and entity")
	}
	if got.Mode != schema.ModeSingle || len(got.Widgets) != 1 {
		t.Fatalf("unexpected formation shape: %+v", got)
	}

	widget := got.Widgets[0]
	wantPrefix := "product-sku-42-"
	if !strings.HasPrefix(widget.ID, wantPrefix) || len(widget.ID) == len(wantPrefix) {
		t.Errorf("widget id = %q, want %q plus time suffix", widget.ID, wantPrefix)
	}
	if widget.Template != schema.TemplateProductDetail || widget.Size != "large" {
		t.Errorf("template metadata not carried: %+v", widget)
	}
	if diff := cmp.Diff(&schema.EntityRef{Type: "product", ID: "sku-42"}, widget.EntityRef); diff != "" {
		t.Errorf("entityRef mismatch (-want +got):\n%s", diff)
	}

	// stockQuantity, description, tags, attributes are absent and must be
	// dropped rather than rendered blank
	if len(widget.Atoms) != 4 {
		t.Fatalf("atoms = %d, want 4: %+v", len(widget.Atoms), widget.Atoms)
	}
	for _, a := range widget.Atoms {
		if a.FieldName != "" {
			t.Errorf("field name leaked into filled atom: %+v", a)
		}
	}

	price := widget.Atoms[2]
	if price.Value != float64(129) {
		t.Errorf("price value = %v, want 129", price.Value)
	}
	if price.Meta["currency"] != "€" {
		t.Errorf("currency sentinel not replaced: %v", price.Meta)
	}
}

func TestFillSentinelUsesDefaultCurrency(t *testing.T) {
	entity := schema.Entity{"id": "sku-1", "name": "Thing", "price": 5.0}
	got := Fill(detailTemplate(), entity, "product")
	if got == nil {
		t.Fatal("Fill() = nil")
	}
	price := got.Widgets[0].Atoms[2]
	if price.Meta["currency"] != "$" {
		t.Errorf("currency = %v, want $ default", price.Meta["currency"])
	}
}

func TestFillKeepsZeroPriceDropsZeroRating(t *testing.T) {
	entity := schema.Entity{
		"id":     "sku-1",
		"name":   "Free Sample",
		"price":  float64(0),
		"rating": float64(0),
	}
	got := Fill(detailTemplate(), entity, "product")
	if got == nil {
		t.Fatal("Fill() = nil")
	}

	var sawPrice, sawRating bool
	for _, a := range got.Widgets[0].Atoms {
		switch a.Slot {
		case schema.SlotPrice:
			sawPrice = true
		case schema.SlotPrimary:
			sawRating = true
		}
	}
	if !sawPrice {
		t.Error("zero price dropped; zero is a valid price")
	}
	if sawRating {
		t.Error("zero rating kept; unrated entities skip the atom")
	}
}

func TestFillUnknownFieldDirectRead(t *testing.T) {
	template := &schema.Formation{
		Mode: schema.ModeSingle,
		Widgets: []schema.Widget{
			{Atoms: []schema.Atom{{Type: schema.AtomText, FieldName: "warranty"}}},
		},
	}
	entity := schema.Entity{"id": "sku-1", "warranty": "2 years"}

	got := Fill(template, entity, "product")
	if got == nil {
		t.Fatal("Fill() = nil")
	}
	if got.Widgets[0].Atoms[0].Value != "2 years" {
		t.Errorf("direct read = %v, want 2 years", got.Widgets[0].Atoms[0].Value)
	}
}

func TestFillInvalidInputs(t *testing.T) {
	entity := schema.Entity{"id": "sku-1"}

	if Fill(nil, entity, "product") != nil {
		t.Error("nil template should fill to nil")
	}
	if Fill(&schema.Formation{}, entity, "product") != nil {
		t.Error("template without widgets should fill to nil")
	}
	empty := &schema.Formation{Widgets: []schema.Widget{{}}}
	if Fill(empty, entity, "product") != nil {
		t.Error("template without atoms should fill to nil")
	}
	if Fill(detailTemplate(), nil, "product") != nil {
		t.Error("absent entity should fill to nil")
	}
}
