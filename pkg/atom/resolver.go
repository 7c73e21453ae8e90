package atom

import (
	"fmt"
	"strings"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

// Kind is the visual-kind family a display token belongs to. Renderers branch
// on the family, not on individual tokens.
type Kind string

const (
	KindHeading Kind = "heading"
	KindBody    Kind = "body"
	KindCaption Kind = "caption"
	KindBadge   Kind = "badge"
	KindTag     Kind = "tag"
	KindPrice   Kind = "price"
	KindRating  Kind = "rating"
	KindPercent Kind = "percent"
	KindImage   Kind = "image"
	KindGallery Kind = "gallery"
	KindIcon    Kind = "icon"
	KindButton  Kind = "button"
	KindDivider Kind = "divider"
	KindSpacer  Kind = "spacer"
)

// Resolution is the concrete render decision for one atom.
type Resolution struct {
	Display string
	Kind    Kind
	// Text carries the formatted value for every textual family. For the
	// rating family it holds the presentation chosen by the display token.
	Text string
	// Images is populated for the image family: all elements for gallery
	// display, only the first for any other image display.
	Images []string
	// Action is the opaque action identifier for buttons. It is forwarded to
	// the caller's handler, never interpreted here.
	Action string
	// Color is the resolved color expression from meta, when present.
	Color string
}

// legacyTypeDisplay maps atom type tokens from the oldest schema generation
// directly to a display, for payloads that bypassed schema.Normalize.
var legacyTypeDisplay = map[string]string{
	"price":    schema.DisplayPrice,
	"badge":    schema.DisplayBadge,
	"rating":   schema.DisplayRating,
	"button":   schema.DisplayButtonPrimary,
	"divider":  schema.DisplayDivider,
	"progress": schema.DisplayProgress,
	"selector": schema.DisplayTag,
}

// Resolve decides the visual treatment for an atom. It never fails: unknown
// displays and malformed values degrade to body text of the stringified
// value.
func Resolve(a schema.Atom) Resolution {
	display := resolveDisplay(a)
	kind := kindOf(display)

	res := Resolution{
		Display: display,
		Kind:    kind,
		Color:   ResolveColor(a.MetaString("color")),
	}

	switch kind {
	case KindHeading, KindBody, KindCaption, KindBadge, KindTag:
		res.Text = formatText(a)
	case KindPrice:
		res.Text = formatPrice(a, display)
	case KindRating:
		res.Text = formatRating(a, display)
	case KindPercent:
		res.Text = formatPercent(a)
	case KindImage, KindGallery:
		images := schema.NormalizeImages(a.Value)
		if kind == KindImage && len(images) > 1 {
			images = images[:1]
		}
		res.Images = images
		res.Text = a.MetaString("label")
	case KindIcon:
		res.Text = sanitizeIconValue(a)
	case KindButton:
		res.Text = stringify(a.Value)
		res.Action = a.MetaString("action")
	case KindDivider, KindSpacer:
		// layout-only, no value
	default:
		res.Kind = KindBody
		res.Text = stringify(a.Value)
	}
	return res
}

// resolveDisplay applies the three-step fallback: explicit display, legacy
// type table, then inference from the type/subtype pair.
func resolveDisplay(a schema.Atom) string {
	if a.Display != "" {
		return a.Display
	}
	if display, ok := legacyTypeDisplay[string(a.Type)]; ok {
		return display
	}
	return inferDisplay(a.Type, a.Subtype)
}

func inferDisplay(t schema.AtomType, sub schema.AtomSubtype) string {
	switch t {
	case schema.AtomNumber:
		switch sub {
		case schema.SubtypeCurrency:
			return schema.DisplayPrice
		case schema.SubtypeRating:
			return schema.DisplayRating
		case schema.SubtypePercent:
			return schema.DisplayPercent
		}
		return schema.DisplayBody
	case schema.AtomImage:
		return schema.DisplayImage
	case schema.AtomIcon:
		return schema.DisplayIcon
	case schema.AtomVideo, schema.AtomAudio:
		return schema.DisplayBody
	default:
		return schema.DisplayBody
	}
}

func kindOf(display string) Kind {
	switch display {
	case schema.DisplayH1, schema.DisplayH2, schema.DisplayH3, schema.DisplayH4:
		return KindHeading
	case schema.DisplayBodyLg, schema.DisplayBody, schema.DisplayBodySm, schema.DisplayInput:
		return KindBody
	case schema.DisplayCaption:
		return KindCaption
	case schema.DisplayBadge, schema.DisplayBadgeSuccess, schema.DisplayBadgeError, schema.DisplayBadgeWarning:
		return KindBadge
	case schema.DisplayTag, schema.DisplayTagActive:
		return KindTag
	case schema.DisplayPrice, schema.DisplayPriceLg, schema.DisplayPriceOld, schema.DisplayPriceDiscount:
		return KindPrice
	case schema.DisplayRating, schema.DisplayRatingText, schema.DisplayRatingCompact:
		return KindRating
	case schema.DisplayPercent, schema.DisplayProgress:
		return KindPercent
	case schema.DisplayImage, schema.DisplayImageCover, schema.DisplayAvatar,
		schema.DisplayAvatarSm, schema.DisplayAvatarLg, schema.DisplayThumbnail:
		return KindImage
	case schema.DisplayGallery:
		return KindGallery
	case schema.DisplayIcon, schema.DisplayIconSm, schema.DisplayIconLg:
		return KindIcon
	case schema.DisplayButtonPrimary, schema.DisplayButtonSecondary,
		schema.DisplayButtonOutline, schema.DisplayButtonGhost:
		return KindButton
	case schema.DisplayDivider:
		return KindDivider
	case schema.DisplaySpacer:
		return KindSpacer
	default:
		return KindBody
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return trimFloat(v)
	case float32:
		return trimFloat(float64(v))
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case bool:
		return fmt.Sprintf("%t", v)
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	return s
}
