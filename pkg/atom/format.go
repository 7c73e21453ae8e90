package atom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

const (
	dateLayout     = "Jan 2, 2006"
	datetimeLayout = "Jan 2, 2006 15:04"
)

// formatText renders heading/body family values. Date and datetime subtypes
// are localised to a readable string; anything else passes through.
func formatText(a schema.Atom) string {
	raw := stringify(a.Value)
	switch a.Subtype {
	case schema.SubtypeDate:
		if t, ok := parseTime(raw); ok {
			return t.Format(dateLayout)
		}
	case schema.SubtypeDatetime:
		if t, ok := parseTime(raw); ok {
			return t.Format(datetimeLayout)
		}
	}
	return raw
}

func parseTime(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatPrice prefixes the currency symbol from meta (default "$"). The
// large-price display uses exactly two decimal places; the compact ones keep
// the value as sent.
func formatPrice(a schema.Atom, display string) string {
	currency := a.MetaString("currency")
	if currency == "" {
		currency = "$"
	}
	value, ok := numeric(a.Value)
	if !ok {
		return currency + stringify(a.Value)
	}
	if display == schema.DisplayPriceLg {
		return fmt.Sprintf("%s%.2f", currency, value)
	}
	return currency + trimFloat(value)
}

// formatRating picks one of three presentations keyed by the display token:
// numeric "x.x/5", compact "★ x.x", or a five-glyph star run with
// round(value) filled stars, the value clamped to [0,5].
func formatRating(a schema.Atom, display string) string {
	value, ok := numeric(a.Value)
	if !ok {
		return stringify(a.Value)
	}
	switch display {
	case schema.DisplayRatingText:
		return fmt.Sprintf("%.1f/5", value)
	case schema.DisplayRatingCompact:
		return fmt.Sprintf("★ %.1f", value)
	default:
		stars := int(math.Round(math.Min(math.Max(value, 0), 5)))
		return strings.Repeat("★", stars) + strings.Repeat("☆", 5-stars)
	}
}

func formatPercent(a schema.Atom) string {
	value, ok := numeric(a.Value)
	if !ok {
		return stringify(a.Value)
	}
	return trimFloat(value) + "%"
}

func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}
