package theme

import (
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
)

func TestResolveDefault(t *testing.T) {
	resolver := NewResolver()

	cfg, err := resolver.Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if cfg.Theme != "marketplace" {
		t.Errorf("theme = %q, want marketplace", cfg.Theme)
	}
	if cfg.Tokens["color-accent"] == "" {
		t.Error("base tokens missing")
	}
	if cfg.CSSVars["--color-accent"] != cfg.Tokens["color-accent"] {
		t.Error("css vars not derived from tokens")
	}
}

func TestResolveVariantMergesTokens(t *testing.T) {
	resolver := NewResolver()

	base, err := resolver.Resolve("marketplace", "")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	dark, err := resolver.Resolve("marketplace", "dark")
	if err != nil {
		t.Fatalf("Resolve(dark) error: %v", err)
	}

	if dark.Tokens["color-bg"] == base.Tokens["color-bg"] {
		t.Error("variant token did not override the base")
	}
	if dark.Tokens["color-accent"] != base.Tokens["color-accent"] {
		t.Error("unoverridden base token lost in variant merge")
	}
	if dark.Variant != "dark" {
		t.Errorf("variant = %q", dark.Variant)
	}
}

func TestResolveUnknown(t *testing.T) {
	resolver := NewResolver()

	if _, err := resolver.Resolve("nope", ""); err == nil {
		t.Error("unknown theme should error")
	}
	if _, err := resolver.Resolve("marketplace", "sepia"); err == nil {
		t.Error("unknown variant should error")
	}
}

func TestLoadFS(t *testing.T) {
	bundle := fstest.MapFS{
		"themes/acme.yaml": &fstest.MapFile{Data: []byte(`
name: acme
version: "2.0.0"
tokens:
  color-bg: "#fafafa"
  color-accent: "#ff3355"
variants:
  dark:
    tokens:
      color-bg: "#000000"
`)},
	}

	resolver := NewResolver()
	if err := resolver.LoadFS(bundle, "themes"); err != nil {
		t.Fatalf("LoadFS() error: %v", err)
	}

	cfg, err := resolver.Resolve("acme", "dark")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if cfg.Tokens["color-bg"] != "#000000" {
		t.Errorf("variant token = %q", cfg.Tokens["color-bg"])
	}
	if cfg.Tokens["color-accent"] != "#ff3355" {
		t.Errorf("base token = %q", cfg.Tokens["color-accent"])
	}
}

func TestLoadFSRejectsNamelessManifest(t *testing.T) {
	bundle := fstest.MapFS{
		"broken.yml": &fstest.MapFile{Data: []byte("tokens:\n  color-bg: '#fff'\n")},
	}
	resolver := NewResolver()
	if err := resolver.LoadFS(bundle, "."); err == nil {
		t.Error("nameless manifest should be rejected")
	}
}

type stubSelector struct {
	selection *theme.Selection
	calls     int
}

func (s *stubSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, nil
}

func TestResolveThroughSelector(t *testing.T) {
	selector := &stubSelector{
		selection: &theme.Selection{
			Theme:   "acme",
			Variant: "dark",
			Manifest: &theme.Manifest{
				Name:   "acme",
				Tokens: map[string]string{"color-bg": "#222222"},
			},
		},
	}

	resolver := NewResolver(WithSelector(selector))
	cfg, err := resolver.Resolve("acme", "dark")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if selector.calls != 1 {
		t.Errorf("selector calls = %d", selector.calls)
	}
	if cfg.Theme != "acme" || cfg.CSSVars["--color-bg"] != "#222222" {
		t.Errorf("cfg = %+v", cfg)
	}
}
