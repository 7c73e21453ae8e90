package template

import (
	"io"
)

// TemplateRenderer is the seam page-shell rendering relies on. Renderers hold
// one of these instead of a concrete engine so hosts can swap template
// backends or stub the shell entirely in tests.
type TemplateRenderer interface {
	// RenderTemplate renders a named template from the engine's sources. The
	// optional writer receives the output in addition to the return value.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString parses and renders inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// RegisterFilter exposes a transform to templates by name.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	// GlobalContext seeds data available to every render.
	GlobalContext(data any) error
}
