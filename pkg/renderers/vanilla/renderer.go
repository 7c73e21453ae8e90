package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/shopglass/go-shopglass/pkg/render"
	rendertemplate "github.com/shopglass/go-shopglass/pkg/render/template"
	gotemplate "github.com/shopglass/go-shopglass/pkg/render/template/gotemplate"
	"github.com/shopglass/go-shopglass/pkg/schema"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	bareBody         bool
}

// WithTemplatesFS supplies an alternate page-shell bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads page-shell templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithBareBody skips the page shell and returns the formation markup alone,
// for hosts that inject it into an existing document.
func WithBareBody() Option {
	return func(cfg *config) {
		cfg.bareBody = true
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	bareBody  bool
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil && !cfg.bareBody {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, bareBody: cfg.bareBody}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render paints a formation. Empty formations produce no output: a missing
// result is not an error. The input is expected to have passed
// schema.Normalize at ingestion.
func (r *Renderer) Render(_ context.Context, formation schema.Formation, options render.RenderOptions) ([]byte, error) {
	if formation.Empty() {
		return nil, nil
	}

	body := composeFormation(formation, options)
	if r.bareBody {
		return []byte(body), nil
	}

	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"body":    body,
		"cssVars": themeCSSVars(options.Theme),
		"theme":   themeName(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page shell: %w", err)
	}
	return []byte(result), nil
}

func themeCSSVars(cfg *render.ThemeConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	return cssVarBlock(cfg.CSSVars)
}

func themeName(cfg *render.ThemeConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.Theme
}
