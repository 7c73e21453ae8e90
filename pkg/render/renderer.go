package render

import (
	"context"

	"github.com/shopglass/go-shopglass/pkg/schema"
)

// Renderer converts a formation into a byte representation (HTML, text, …).
// Implementations must be pure functions of the formation and options; any
// interaction state (reveal cursor, carousel positions) arrives through
// RenderOptions.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, formation schema.Formation, options RenderOptions) ([]byte, error)
}
