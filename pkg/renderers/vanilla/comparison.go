package vanilla

import (
	"fmt"
	"strings"

	"github.com/shopglass/go-shopglass/pkg/atom"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

const emptyCell = `<span class="comparison-empty">—</span>`

// composeComparison lays all widgets of the formation out as a field-by-field
// table: one column per widget, one row per field name in the order fields
// were first seen across widgets.
func composeComparison(widgets []schema.Widget) string {
	fields := collectFieldNames(widgets)

	var b strings.Builder
	b.WriteString(`<div class="formation-comparison"><table class="comparison-table"><thead><tr><th></th>`)
	for _, widget := range widgets {
		fmt.Fprintf(&b, `<th class="comparison-item">%s</th>`, esc(widgetHeading(widget)))
	}
	b.WriteString(`</tr></thead><tbody>`)

	for _, field := range fields {
		fmt.Fprintf(&b, `<tr><td class="comparison-field">%s</td>`, esc(fieldLabel(field)))
		for _, widget := range widgets {
			b.WriteString(`<td>`)
			b.WriteString(comparisonCell(widget, field))
			b.WriteString(`</td>`)
		}
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table></div>`)
	return b.String()
}

// collectFieldNames unions field keys across widgets, keeping the position of
// each key's first appearance.
func collectFieldNames(widgets []schema.Widget) []string {
	var fields []string
	seen := make(map[string]bool)
	for _, widget := range widgets {
		for _, a := range widget.Atoms {
			key := a.FieldKey()
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			fields = append(fields, key)
		}
	}
	return fields
}

// widgetHeading picks the column header: the name field when present, the
// first title-slot atom otherwise.
func widgetHeading(widget schema.Widget) string {
	for _, a := range widget.Atoms {
		if a.FieldKey() == "name" {
			return atom.Resolve(a).Text
		}
	}
	for _, a := range widget.Atoms {
		if a.Slot == schema.SlotTitle {
			return atom.Resolve(a).Text
		}
	}
	return widget.ID
}

func comparisonCell(widget schema.Widget, field string) string {
	for _, a := range widget.Atoms {
		if a.FieldKey() != field {
			continue
		}
		res := atom.Resolve(a)
		if len(res.Images) > 0 {
			return fmt.Sprintf(`<img class="comparison-thumb" src="%s" alt="">`, esc(res.Images[0]))
		}
		if res.Text == "" {
			return emptyCell
		}
		return esc(res.Text)
	}
	return emptyCell
}
