package atom

// palette maps named color tokens from atom meta to concrete values. Unknown
// tokens pass through unchanged and are assumed to already be a valid color
// expression (hex, rgb(), css var).
var palette = map[string]string{
	"primary":   "#2563eb",
	"secondary": "#64748b",
	"success":   "#16a34a",
	"error":     "#dc2626",
	"warning":   "#d97706",
	"info":      "#0891b2",
	"muted":     "#94a3b8",
	"accent":    "#7c3aed",

	"red":    "#ef4444",
	"orange": "#f97316",
	"yellow": "#eab308",
	"green":  "#22c55e",
	"blue":   "#3b82f6",
	"purple": "#a855f7",
	"pink":   "#ec4899",
	"black":  "#0f172a",
	"white":  "#ffffff",
	"gray":   "#6b7280",
}

// ResolveColor maps a named color token through the fixed palette. Unknown
// tokens (including hex values) are returned as-is; empty stays empty.
func ResolveColor(token string) string {
	if token == "" {
		return ""
	}
	if hex, ok := palette[token]; ok {
		return hex
	}
	return token
}
