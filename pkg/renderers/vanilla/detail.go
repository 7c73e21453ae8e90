package vanilla

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopglass/go-shopglass/pkg/atom"
	"github.com/shopglass/go-shopglass/pkg/render"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

// renderDetail lays out the ProductDetail/ServiceDetail templates: a gallery
// with thumbnail navigation on the left, title/chips/price/stock/description/
// tags/specs on the right.
func renderDetail(widget schema.Widget, options render.RenderOptions, tplClass string) string {
	slots := schema.GroupBySlot(widget.Atoms)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-template"`, tplClass)
	writeWidgetAttrs(&b, widget)
	fmt.Fprintf(&b, `><div class="%s-layout">`, tplClass)

	fmt.Fprintf(&b, `<div class="%s-gallery">`, tplClass)
	var images []string
	if gallery := slots[schema.SlotGallery]; len(gallery) > 0 {
		images = schema.NormalizeImages(gallery[0].Value)
	}
	b.WriteString(galleryMarkup(widget.ID, images, options.CarouselIndex(widget.ID, len(images))))
	b.WriteString(`</div>`)

	fmt.Fprintf(&b, `<div class="%s-info">`, tplClass)

	if titles := slots[schema.SlotTitle]; len(titles) > 0 {
		res := atom.Resolve(titles[0])
		fmt.Fprintf(&b, `<h1 class="%s-title">%s</h1>`, tplClass, esc(res.Text))
	}

	if primary := slots[schema.SlotPrimary]; len(primary) > 0 {
		fmt.Fprintf(&b, `<div class="%s-primary">`, tplClass)
		for i, a := range primary {
			b.WriteString(chipMarkup(a, tplClass, options.SelectedOption(widget.ID, i)))
		}
		b.WriteString(`</div>`)
	}

	if prices := slots[schema.SlotPrice]; len(prices) > 0 {
		res := atom.Resolve(prices[0])
		fmt.Fprintf(&b, `<div class="%s-price">%s</div>`, tplClass, esc(res.Text))
	}

	if stock := slots[schema.SlotStock]; len(stock) > 0 {
		b.WriteString(stockIndicator(stock[0], tplClass))
	}

	if descriptions := slots[schema.SlotDescription]; len(descriptions) > 0 {
		res := atom.Resolve(descriptions[0])
		fmt.Fprintf(&b, `<div class="%s-description"><h3>Description</h3><p>%s</p></div>`, tplClass, esc(res.Text))
	}

	if tags := slots[schema.SlotTags]; len(tags) > 0 {
		b.WriteString(tagsList(tags[0], tplClass))
	}

	if specs := slots[schema.SlotSpecs]; len(specs) > 0 {
		b.WriteString(specsTable(specs[0], tplClass))
	}

	b.WriteString(`</div></div></div>`)
	return b.String()
}

// galleryMarkup renders the active image plus clickable thumbnails; an empty
// gallery shows a placeholder rather than collapsing the layout.
func galleryMarkup(widgetID string, images []string, current int) string {
	if len(images) == 0 {
		return `<div class="gallery-placeholder"><span>No image available</span></div>`
	}

	var b strings.Builder
	b.WriteString(`<div class="gallery-container" data-carousel="`)
	b.WriteString(esc(widgetID))
	b.WriteString(`">`)
	fmt.Fprintf(&b, `<div class="gallery-main"><img class="gallery-main-image" src="%s" alt=""></div>`, esc(images[current]))
	if len(images) > 1 {
		b.WriteString(`<div class="gallery-thumbnails">`)
		for i, img := range images {
			class := "gallery-thumbnail"
			if i == current {
				class += " active"
			}
			fmt.Fprintf(&b, `<button class="%s" data-carousel-jump="%d"><img src="%s" alt=""></button>`, class, i, esc(img))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// stockIndicator derives the positive/negative state from a numeric quantity
// (in stock when above zero) or an availability enum.
func stockIndicator(a schema.Atom, tplClass string) string {
	if qty, ok := numericValue(a.Value); ok {
		if qty > 0 {
			return fmt.Sprintf(`<div class="%s-stock in-stock">In stock: %d</div>`, tplClass, int(qty))
		}
		return fmt.Sprintf(`<div class="%s-stock out-of-stock">Out of stock</div>`, tplClass)
	}

	state := strings.TrimSpace(fmt.Sprintf("%v", a.Value))
	if strings.EqualFold(state, "available") {
		return fmt.Sprintf(`<div class="%s-stock in-stock">Available</div>`, tplClass)
	}
	if state == "" || state == "<nil>" {
		state = "Unavailable"
	}
	return fmt.Sprintf(`<div class="%s-stock out-of-stock">%s</div>`, tplClass, esc(state))
}

func tagsList(a schema.Atom, tplClass string) string {
	tags := schema.NormalizeImages(a.Value)
	if len(tags) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-tags"><h3>Tags</h3><div class="tags-list">`, tplClass)
	for _, tag := range tags {
		fmt.Fprintf(&b, `<span class="tag-chip">%s</span>`, esc(tag))
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// specsTable builds one row per key of a map-valued atom. Keys are sorted so
// output is stable across renders.
func specsTable(a schema.Atom, tplClass string) string {
	attrs, ok := a.Value.(map[string]any)
	if !ok || len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-specs"><h3>Specifications</h3><table class="specs-table"><tbody>`, tplClass)
	for _, key := range keys {
		fmt.Fprintf(&b, `<tr><td class="spec-key">%s</td><td class="spec-value">%s</td></tr>`,
			esc(key), esc(fmt.Sprintf("%v", attrs[key])))
	}
	b.WriteString(`</tbody></table></div>`)
	return b.String()
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
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
