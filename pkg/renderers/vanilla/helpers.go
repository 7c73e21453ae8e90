package vanilla

import (
	"html"
	"sort"
	"strings"
	"unicode"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// cssVarBlock serializes theme variables as a braced declaration block. Keys
// are sorted so the output is deterministic.
func cssVarBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	b.WriteByte('}')
	return b.String()
}

var fieldLabels = map[string]string{
	"name":          "Name",
	"price":         "Price",
	"rating":        "Rating",
	"images":        "Image",
	"description":   "Description",
	"brand":         "Brand",
	"category":      "Category",
	"stockQuantity": "Stock",
	"availability":  "Availability",
	"duration":      "Duration",
	"provider":      "Provider",
	"tags":          "Tags",
}

// fieldLabel resolves a display label for a comparison row, falling back to a
// title-cased split of the camelCase field key.
func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return titleizeCamel(field)
}

func titleizeCamel(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
