package vanilla

import (
	"fmt"
	"strings"

	"github.com/shopglass/go-shopglass/pkg/atom"
	"github.com/shopglass/go-shopglass/pkg/render"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

// renderCard lays out the ProductCard/ServiceCard templates: hero carousel
// with a badge overlay, one title, a primary chip run, one price, and a
// collapsible secondary region. Slots with no atoms are omitted outright.
func renderCard(widget schema.Widget, options render.RenderOptions, tplClass string) string {
	slots := schema.GroupBySlot(widget.Atoms)

	size := widget.Size
	if size == "" {
		size = "medium"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-template size-%s"`, tplClass, esc(size))
	writeWidgetAttrs(&b, widget)
	b.WriteString(`>`)

	if hero := slots[schema.SlotHero]; len(hero) > 0 {
		images := schema.NormalizeImages(hero[0].Value)
		if len(images) > 0 {
			fmt.Fprintf(&b, `<div class="%s-images">`, tplClass)
			b.WriteString(carouselMarkup(widget.ID, images, options.CarouselIndex(widget.ID, len(images))))
			if badges := slots[schema.SlotBadge]; len(badges) > 0 {
				b.WriteString(badgeOverlay(badges[0], tplClass))
			}
			b.WriteString(`</div>`)
		}
	}

	if titles := slots[schema.SlotTitle]; len(titles) > 0 {
		res := atom.Resolve(titles[0])
		fmt.Fprintf(&b, `<div class="%s-title">%s</div>`, tplClass, esc(res.Text))
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

	if secondary := slots[schema.SlotSecondary]; len(secondary) > 0 {
		expanded := options.Expanded[widget.ID]
		label := "Show details"
		if expanded {
			label = "Hide details"
		}
		fmt.Fprintf(&b, `<button class="%s-expand" data-toggle="secondary">%s</button>`, tplClass, label)
		if expanded {
			fmt.Fprintf(&b, `<div class="%s-secondary">`, tplClass)
			for _, a := range secondary {
				b.WriteString(secondaryItem(a, tplClass))
			}
			b.WriteString(`</div>`)
		}
	}

	b.WriteString(`</div>`)
	return b.String()
}

// carouselMarkup renders the active image plus position dots when more than
// one image exists. The dot buttons carry their index so a client runtime can
// jump directly without propagating the click to the card.
func carouselMarkup(widgetID string, images []string, current int) string {
	var b strings.Builder
	b.WriteString(`<div class="image-carousel" data-carousel="`)
	b.WriteString(esc(widgetID))
	b.WriteString(`">`)
	fmt.Fprintf(&b, `<img class="carousel-image" src="%s" alt="" data-carousel-advance>`, esc(images[current]))
	if len(images) > 1 {
		b.WriteString(`<div class="carousel-dots">`)
		for i := range images {
			class := "carousel-dot"
			if i == current {
				class += " active"
			}
			fmt.Fprintf(&b, `<button class="%s" data-carousel-jump="%d"></button>`, class, i)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func badgeOverlay(a schema.Atom, tplClass string) string {
	res := atom.Resolve(a)
	variant := a.MetaString("variant")
	if variant == "" {
		variant = "default"
	}
	return fmt.Sprintf(`<div class="%s-badge variant-%s">%s</div>`, tplClass, esc(variant), esc(res.Text))
}

// chipMarkup picks the chip presentation for one primary-slot atom: selector
// chips for array values, rating chips, borderless caption chips, default
// bordered chips.
func chipMarkup(a schema.Atom, tplClass, selected string) string {
	res := atom.Resolve(a)

	if options, isArray := arrayOptions(a.Value); isArray && res.Kind != atom.KindRating {
		return selectorChip(a, options, tplClass, selected)
	}

	switch res.Kind {
	case atom.KindRating:
		return fmt.Sprintf(`<div class="%s-chip %s-rating">%s</div>`, tplClass, tplClass, esc(res.Text))
	case atom.KindCaption:
		var b strings.Builder
		fmt.Fprintf(&b, `<span class="%s-text">`, tplClass)
		if label := a.MetaString("label"); label != "" {
			fmt.Fprintf(&b, `<span class="text-label">%s:</span>`, esc(label))
		}
		fmt.Fprintf(&b, `<span class="text-value">%s</span></span>`, esc(res.Text))
		return b.String()
	default:
		return fmt.Sprintf(`<div class="%s-chip">%s</div>`, tplClass, esc(res.Text))
	}
}

// arrayOptions reports whether a chip value is an array (selector chips);
// scalar values are never selectors.
func arrayOptions(value any) ([]string, bool) {
	switch value.(type) {
	case []string, []any:
		return schema.NormalizeImages(value), true
	default:
		return nil, false
	}
}

func selectorChip(a schema.Atom, options []string, tplClass, selected string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-selector">`, tplClass)
	if label := a.MetaString("label"); label != "" {
		fmt.Fprintf(&b, `<span class="selector-label">%s:</span>`, esc(label))
	}
	b.WriteString(`<div class="selector-options">`)
	for _, option := range options {
		class := "selector-option"
		if option == selected {
			class += " selected"
		}
		fmt.Fprintf(&b, `<button class="%s" data-select="%s">%s</button>`, class, esc(option), esc(option))
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func secondaryItem(a schema.Atom, tplClass string) string {
	res := atom.Resolve(a)
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s-secondary-item">`, tplClass)
	if label := a.MetaString("label"); label != "" {
		fmt.Fprintf(&b, `<span class="secondary-label">%s:</span>`, esc(label))
	}
	fmt.Fprintf(&b, `<span class="secondary-value">%s</span></div>`, esc(res.Text))
	return b.String()
}
