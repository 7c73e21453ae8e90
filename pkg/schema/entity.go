package schema

// Entity is a raw domain record (product or service) as delivered by the
// backend alongside a result set. Records are schemaless on the wire, so the
// accessors below normalise the common field shapes.
type Entity map[string]any

// ID returns the entity identifier, or "" when absent.
func (e Entity) ID() string {
	return e.String("id")
}

// String reads a string field.
func (e Entity) String(key string) string {
	if e == nil {
		return ""
	}
	s, _ := e[key].(string)
	return s
}

// Float reads a numeric field, accepting the JSON number shapes that survive
// a round trip through encoding/json.
func (e Entity) Float(key string) (float64, bool) {
	if e == nil {
		return 0, false
	}
	switch v := e[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Strings reads a string-slice field.
func (e Entity) Strings(key string) []string {
	if e == nil {
		return nil
	}
	switch v := e[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// Map reads a map field.
func (e Entity) Map(key string) map[string]any {
	if e == nil {
		return nil
	}
	m, _ := e[key].(map[string]any)
	return m
}

// Currency returns the entity currency code, defaulting to "$".
func (e Entity) Currency() string {
	if c := e.String("currency"); c != "" {
		return c
	}
	return "$"
}
