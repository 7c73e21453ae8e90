package vanilla

import (
	"fmt"
	"strings"

	"github.com/shopglass/go-shopglass/pkg/render"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

// composeFormation arranges widgets into the page-level layout. Comparison
// mode takes its own table path; every other mode renders progressively,
// painting the reveal cursor's batch and a trailing sentinel while widgets
// remain hidden.
func composeFormation(formation schema.Formation, options render.RenderOptions) string {
	if formation.Mode == schema.ModeComparison {
		return composeComparison(formation.Widgets)
	}

	total := len(formation.Widgets)
	visible := options.Reveal.Visible(total)

	var b strings.Builder
	b.WriteString(`<div class="`)
	b.WriteString(layoutClass(formation.Mode, formation.Grid))
	b.WriteString(`">`)

	for _, widget := range formation.Widgets[:visible] {
		b.WriteString(renderWidget(widget, options))
	}
	b.WriteString(`</div>`)

	if visible < total {
		fmt.Fprintf(&b, `<div class="formation-sentinel" data-revealed="%d" data-total="%d"></div>`, visible, total)
	}
	return b.String()
}

// layoutClass is a direct mode to CSS-class mapping; unrecognised modes fall
// back to list.
func layoutClass(mode schema.FormationMode, grid *schema.GridConfig) string {
	switch mode {
	case schema.ModeGrid:
		cols := 2
		if grid != nil && grid.Cols > 0 {
			cols = grid.Cols
		}
		return fmt.Sprintf("formation-grid cols-%d", cols)
	case schema.ModeCarousel:
		return "formation-carousel"
	case schema.ModeSingle:
		return "formation-single"
	default:
		return "formation-list"
	}
}
