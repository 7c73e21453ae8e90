package render

// RenderOptions describe per-request data renderers use to customise output
// without mutating the formation pipeline. The zero value renders everything
// with defaults: full widget list for small formations, reveal batching for
// large ones, no theme variables.
type RenderOptions struct {
	// Theme carries resolved theme tokens. Renderers emit them as CSS custom
	// properties on the page root when present.
	Theme *ThemeConfig
	// Reveal is the progressive-reveal cursor for list/grid/carousel/single
	// modes. Nil means a fresh cursor at the initial batch size.
	Reveal *RevealState
	// Carousels holds per-widget carousel positions keyed by widget id.
	// Absent entries render at index zero.
	Carousels map[string]int
	// Expanded lists widget ids whose secondary region is toggled open.
	Expanded map[string]bool
	// Selected records selector-chip choices keyed by widget id and atom
	// index, mirrored back into the markup as the selected option.
	Selected map[string]map[int]string
}

// ThemeConfig is the renderer-facing projection of a theme selection.
type ThemeConfig struct {
	Theme   string
	Variant string
	// Tokens are raw design tokens from the theme manifest.
	Tokens map[string]string
	// CSSVars are the tokens projected to custom-property names (--token).
	CSSVars map[string]string
}

// CarouselIndex returns the stored carousel position for a widget, bounded to
// the image count. Out-of-range positions fall back to zero.
func (o RenderOptions) CarouselIndex(widgetID string, imageCount int) int {
	if imageCount <= 0 {
		return 0
	}
	idx := o.Carousels[widgetID]
	if idx < 0 || idx >= imageCount {
		return 0
	}
	return idx
}

// SelectedOption returns the recorded selector choice for an atom, or "".
func (o RenderOptions) SelectedOption(widgetID string, atomIndex int) string {
	if o.Selected == nil {
		return ""
	}
	return o.Selected[widgetID][atomIndex]
}
