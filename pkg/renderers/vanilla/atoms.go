package vanilla

import (
	"fmt"
	"strings"

	"github.com/shopglass/go-shopglass/pkg/atom"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

// atomMarkup renders a single resolved atom outside the templated card/detail
// layouts, used by the legacy widget fallback.
func atomMarkup(res atom.Resolution, a schema.Atom) string {
	switch res.Kind {
	case atom.KindHeading:
		level := headingLevel(res.Display)
		return fmt.Sprintf(`<h%d class="atom-heading">%s</h%d>`, level, esc(res.Text), level)
	case atom.KindBody:
		return fmt.Sprintf(`<span class="atom-body">%s</span>`, esc(res.Text))
	case atom.KindCaption:
		return fmt.Sprintf(`<span class="atom-caption">%s</span>`, esc(res.Text))
	case atom.KindBadge:
		return fmt.Sprintf(`<span class="atom-badge" style="background:%s">%s</span>`,
			esc(atom.ResolveColor(res.Color)), esc(res.Text))
	case atom.KindTag:
		return fmt.Sprintf(`<span class="atom-tag">%s</span>`, esc(res.Text))
	case atom.KindPrice:
		return fmt.Sprintf(`<span class="atom-price">%s</span>`, esc(res.Text))
	case atom.KindRating:
		return fmt.Sprintf(`<span class="atom-rating">%s</span>`, esc(res.Text))
	case atom.KindPercent:
		return progressMarkup(res)
	case atom.KindImage:
		if len(res.Images) == 0 {
			return ""
		}
		return fmt.Sprintf(`<img class="atom-image" src="%s" alt="">`, esc(res.Images[0]))
	case atom.KindGallery:
		return inlineGallery(res.Images)
	case atom.KindIcon:
		return iconMarkup(a, res)
	case atom.KindButton:
		return fmt.Sprintf(`<button class="atom-button" data-action="%s">%s</button>`,
			esc(res.Action), esc(res.Text))
	case atom.KindDivider:
		return `<hr class="atom-divider">`
	case atom.KindSpacer:
		return `<div class="atom-spacer"></div>`
	default:
		return fmt.Sprintf(`<span class="atom-body">%s</span>`, esc(res.Text))
	}
}

func headingLevel(display string) int {
	switch display {
	case schema.DisplayH1:
		return 1
	case schema.DisplayH2:
		return 2
	case schema.DisplayH3:
		return 3
	default:
		return 4
	}
}

func progressMarkup(res atom.Resolution) string {
	pct := strings.TrimSuffix(res.Text, "%")
	return fmt.Sprintf(`<div class="atom-progress"><div class="atom-progress-bar" style="width:%s%%"></div><span>%s</span></div>`,
		esc(pct), esc(res.Text))
}

func inlineGallery(images []string) string {
	if len(images) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="atom-gallery">`)
	for _, img := range images {
		fmt.Fprintf(&b, `<img src="%s" alt="">`, esc(img))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// iconMarkup inlines SVG sources, already scrubbed by the resolver; any other
// icon value is treated as a glyph or image URL.
func iconMarkup(a schema.Atom, res atom.Resolution) string {
	if a.Subtype == schema.SubtypeIconSVG {
		return fmt.Sprintf(`<span class="atom-icon">%s</span>`, res.Text)
	}
	if strings.HasPrefix(res.Text, "http://") || strings.HasPrefix(res.Text, "https://") {
		return fmt.Sprintf(`<img class="atom-icon" src="%s" alt="">`, esc(res.Text))
	}
	return fmt.Sprintf(`<span class="atom-icon">%s</span>`, esc(res.Text))
}
