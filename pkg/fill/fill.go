// Package fill reproduces server-side template filling on the client: given a
// shape template whose atoms carry field names instead of values, and a raw
// entity record, it computes the formation the server would have returned.
// This enables instant local rendering on expand navigation without a round
// trip.
package fill

import (
	"strconv"
	"time"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

// CurrencySentinel marks a template atom's currency meta for replacement with
// the entity's own currency at fill time.
const CurrencySentinel = "__ENTITY_CURRENCY__"

// now is swapped in tests to pin the widget id suffix.
var now = time.Now

// Fill computes a formation from a shape template and an entity record. It
// returns nil when the template has no widgets or atoms, or when the entity
// is absent; callers fall back to the server path on nil. Atoms whose field
// resolves to an empty, zero, or missing value are dropped outright so the
// output matches the server's skip-empty policy.
func Fill(template *schema.Formation, entity schema.Entity, entityType string) *schema.Formation {
	if template == nil || len(template.Widgets) == 0 || entity == nil {
		return nil
	}
	templateWidget := template.Widgets[0]
	if len(templateWidget.Atoms) == 0 {
		return nil
	}

	atoms := make([]schema.Atom, 0, len(templateWidget.Atoms))
	for _, a := range templateWidget.Atoms {
		value, ok := fieldValue(entity, a.FieldName)
		if !ok {
			continue
		}
		filled := schema.Atom{
			Type:    a.Type,
			Subtype: a.Subtype,
			Display: a.Display,
			Value:   value,
			Slot:    a.Slot,
		}
		if a.Meta != nil {
			meta := make(map[string]any, len(a.Meta))
			for key, metaValue := range a.Meta {
				meta[key] = metaValue
			}
			if meta["currency"] == CurrencySentinel {
				meta["currency"] = entity.Currency()
			}
			filled.Meta = meta
		}
		atoms = append(atoms, filled)
	}

	widget := schema.Widget{
		ID:        widgetID(entityType, entity.ID()),
		Template:  templateWidget.Template,
		Size:      templateWidget.Size,
		Atoms:     atoms,
		EntityRef: &schema.EntityRef{Type: entityType, ID: entity.ID()},
	}

	return &schema.Formation{
		Mode:    template.Mode,
		Grid:    template.Grid,
		Widgets: []schema.Widget{widget},
	}
}

// widgetID synthesizes a unique id so repeated expansions of the same entity
// never collide in the document.
func widgetID(entityType, entityID string) string {
	return entityType + "-" + entityID + "-" + strconv.FormatInt(now().UnixMilli(), 36)
}

// fieldValue resolves one template field against the entity, reporting false
// for values the server would skip. The dispatch table mirrors the server's
// field getters; unknown names fall back to a direct read.
func fieldValue(entity schema.Entity, field string) (any, bool) {
	if field == "" {
		return nil, false
	}
	switch field {
	case "id", "name", "description", "brand", "category", "duration", "provider", "availability":
		if s := entity.String(field); s != "" {
			return s, true
		}
		return nil, false
	case "price":
		// zero is a legitimate price; only absence skips the atom
		if v, ok := entity.Float(field); ok {
			return v, true
		}
		return nil, false
	case "rating", "stockQuantity":
		if v, ok := entity.Float(field); ok && v != 0 {
			return v, true
		}
		return nil, false
	case "images", "tags":
		if items := entity.Strings(field); len(items) > 0 {
			return items, true
		}
		return nil, false
	case "attributes":
		if attrs := entity.Map(field); len(attrs) > 0 {
			return attrs, true
		}
		return nil, false
	default:
		value, ok := entity[field]
		if !ok || value == nil {
			return nil, false
		}
		return value, true
	}
}
