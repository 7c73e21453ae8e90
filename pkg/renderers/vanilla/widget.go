package vanilla

import (
	"strings"

	"github.com/shopglass/go-shopglass/pkg/atom"
	"github.com/shopglass/go-shopglass/pkg/render"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

// renderWidget routes a widget to its template layout. Widgets without a
// template name fall back to legacy per-type rendering.
func renderWidget(widget schema.Widget, options render.RenderOptions) string {
	switch widget.Template {
	case schema.TemplateProductCard:
		return renderCard(widget, options, "product-card")
	case schema.TemplateServiceCard:
		return renderCard(widget, options, "service-card")
	case schema.TemplateProductDetail:
		return renderDetail(widget, options, "product-detail")
	case schema.TemplateServiceDetail:
		return renderDetail(widget, options, "service-detail")
	default:
		return renderLegacyWidget(widget)
	}
}

// renderLegacyWidget handles the type-keyed widget generation: three fixed
// layouts, else a generic pass-through of all atoms.
func renderLegacyWidget(widget schema.Widget) string {
	var class string
	switch widget.LegacyType {
	case schema.WidgetProductCard:
		class = "widget-product-card"
	case schema.WidgetTextBlock:
		class = "widget-text-block"
	case schema.WidgetQuickReplies:
		class = "widget-quick-replies"
	default:
		class = "widget-default"
	}

	var b strings.Builder
	b.WriteString(`<div class="`)
	b.WriteString(class)
	b.WriteString(`"`)
	writeWidgetAttrs(&b, widget)
	b.WriteString(`>`)
	for _, a := range widget.Atoms {
		b.WriteString(atomMarkup(atom.Resolve(a), a))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// writeWidgetAttrs emits the id and the entity binding used by expand
// navigation.
func writeWidgetAttrs(b *strings.Builder, widget schema.Widget) {
	if widget.ID != "" {
		b.WriteString(` id="`)
		b.WriteString(esc(widget.ID))
		b.WriteString(`"`)
	}
	if ref := widget.EntityRef; ref != nil {
		b.WriteString(` data-entity-type="`)
		b.WriteString(esc(ref.Type))
		b.WriteString(`" data-entity-id="`)
		b.WriteString(esc(ref.ID))
		b.WriteString(`"`)
	}
}
