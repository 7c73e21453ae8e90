// Package theme resolves storefront theme manifests into the token set
// renderers consume. Manifests follow the go-theme shape and can be built-in,
// loaded from YAML bundles, or served by an external selector.
package theme

import (
	"fmt"
	"sync"

	theme "github.com/goliatone/go-theme"

	"github.com/shopglass/go-shopglass/pkg/render"
)

// DefaultTheme is used when a host asks for no theme in particular.
const DefaultTheme = "marketplace"

// manifestRegistry is the slice of the go-theme registry surface the
// resolver writes through.
type manifestRegistry interface {
	Register(manifest *theme.Manifest) error
}

// Resolver turns a theme name and variant into renderer-facing config.
type Resolver struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
	registry  manifestRegistry
	selector  theme.ThemeSelector
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSelector delegates resolution to an external go-theme selector instead
// of the local manifest set.
func WithSelector(selector theme.ThemeSelector) ResolverOption {
	return func(r *Resolver) {
		r.selector = selector
	}
}

// WithoutBuiltins starts the resolver empty instead of preloading the
// built-in manifests.
func WithoutBuiltins() ResolverOption {
	return func(r *Resolver) {
		r.manifests = make(map[string]*theme.Manifest)
	}
}

// NewResolver builds a resolver preloaded with the built-in manifests.
func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{
		manifests: builtinManifests(),
		registry:  theme.NewRegistry(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	for _, manifest := range r.manifests {
		_ = r.registry.Register(manifest)
	}
	return r
}

// Register adds a manifest, replacing any prior one of the same name.
func (r *Resolver) Register(manifest *theme.Manifest) error {
	if manifest == nil || manifest.Name == "" {
		return fmt.Errorf("theme: manifest requires a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manifests[manifest.Name] = manifest
	return r.registry.Register(manifest)
}

// Provider exposes the go-theme registry for hosts that wire their own
// selector on top of it.
func (r *Resolver) Provider() theme.ThemeProvider {
	provider, _ := r.registry.(theme.ThemeProvider)
	return provider
}

// Resolve produces the renderer config for a theme and variant. An empty
// name resolves the default theme; an unknown name or variant is an error so
// a storefront misconfiguration surfaces instead of silently unstyled pages.
func (r *Resolver) Resolve(name, variant string) (*render.ThemeConfig, error) {
	if name == "" {
		name = DefaultTheme
	}

	if r.selector != nil {
		selection, err := r.selector.Select(name, variant)
		if err != nil {
			return nil, fmt.Errorf("theme: select %s/%s: %w", name, variant, err)
		}
		// the selector already validated the pair; variants it resolved
		// outside the manifest's Variants map pass through
		return configFromManifest(selection.Theme, selection.Variant, selection.Manifest)
	}

	r.mu.RLock()
	manifest, ok := r.manifests[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("theme: unknown theme %q", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme: theme %q has no variant %q", name, variant)
		}
	}
	return configFromManifest(name, variant, manifest)
}

// configFromManifest merges variant tokens over the base token set and
// projects the result to CSS custom-property names.
func configFromManifest(name, variant string, manifest *theme.Manifest) (*render.ThemeConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("theme: manifest for %q is nil", name)
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if v, ok := manifest.Variants[variant]; ok {
		for key, value := range v.Tokens {
			tokens[key] = value
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	return &render.ThemeConfig{
		Theme:   name,
		Variant: variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}, nil
}
