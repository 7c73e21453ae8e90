package atom

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

// sanitizeIconValue returns a safe rendering of an icon atom's value. Name
// and emoji subtypes pass through as text; inline SVG markup is scrubbed to a
// fixed element/attribute allowlist.
func sanitizeIconValue(a schema.Atom) string {
	raw := stringify(a.Value)
	if a.Subtype != schema.SubtypeIconSVG {
		return raw
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(svgSanitizer().Sanitize(trimmed))
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
			"ellipse", "title", "desc", "defs", "use",
		)

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin", "class",
			).OnElements(el)
		}

		policy.AllowAttrs("id").OnElements("defs", "g")
		policy.AllowAttrs("href", "xlink:href").OnElements("use")

		svgPolicy = policy
	})
	return svgPolicy
}
