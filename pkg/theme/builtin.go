package theme

import theme "github.com/goliatone/go-theme"

// builtinManifests are the themes shipped with the library: the marketplace
// storefront look with a dark variant, and a near-unstyled minimal theme for
// embedding.
func builtinManifests() map[string]*theme.Manifest {
	marketplace := &theme.Manifest{
		Name:    "marketplace",
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-bg":        "#ffffff",
			"color-fg":        "#1a1a2e",
			"color-accent":    "#2563eb",
			"color-muted":     "#6b7280",
			"color-badge":     "#dc2626",
			"color-success":   "#16a34a",
			"radius-card":     "12px",
			"radius-chip":     "999px",
			"shadow-card":     "0 1px 3px rgba(0,0,0,0.12)",
			"font-family":     "system-ui, sans-serif",
			"spacing-card":    "16px",
			"spacing-section": "24px",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"color-bg":    "#111827",
					"color-fg":    "#f9fafb",
					"color-muted": "#9ca3af",
					"shadow-card": "0 1px 3px rgba(0,0,0,0.5)",
				},
			},
		},
	}

	minimal := &theme.Manifest{
		Name:    "minimal",
		Version: "1.0.0",
		Tokens: map[string]string{
			"color-bg":    "#ffffff",
			"color-fg":    "#000000",
			"radius-card": "0",
			"shadow-card": "none",
		},
	}

	return map[string]*theme.Manifest{
		marketplace.Name: marketplace,
		minimal.Name:     minimal,
	}
}
