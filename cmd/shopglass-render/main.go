// Command shopglass-render renders a formation document to HTML. It reads a
// formation as JSON (file or stdin), applies a theme, and writes the page to
// a file or stdout. Useful for inspecting backend payloads and for golden
// file workflows.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/shopglass/go-shopglass/pkg/render"
	"github.com/shopglass/go-shopglass/pkg/renderers/vanilla"
	"github.com/shopglass/go-shopglass/pkg/schema"
	"github.com/shopglass/go-shopglass/pkg/theme"
)

func main() {
	var (
		inFlag      = flag.String("in", "-", "Formation JSON file ('-' reads stdin)")
		outFlag     = flag.String("out", "-", "Output file ('-' writes stdout)")
		themeFlag   = flag.String("theme", theme.DefaultTheme, "Theme name")
		variantFlag = flag.String("variant", "", "Theme variant")
		themesFlag  = flag.String("themes", "", "Directory of extra theme manifests (YAML)")
		bareFlag    = flag.Bool("bare", false, "Emit the formation markup without the page shell")
		revealFlag  = flag.Int("reveal", 0, "Number of widgets already revealed (0 uses the default batch)")
	)
	flag.Parse()

	if err := run(*inFlag, *outFlag, *themeFlag, *variantFlag, *themesFlag, *bareFlag, *revealFlag); err != nil {
		fmt.Fprintf(os.Stderr, "shopglass-render: %v\n", err)
		os.Exit(1)
	}
}

func run(in, out, themeName, variant, themesDir string, bare bool, reveal int) error {
	formation, err := readFormation(in)
	if err != nil {
		return err
	}

	resolver := theme.NewResolver()
	if themesDir != "" {
		if err := resolver.LoadDir(themesDir); err != nil {
			return fmt.Errorf("load themes: %w", err)
		}
	}
	themeConfig, err := resolver.Resolve(themeName, variant)
	if err != nil {
		return err
	}

	var rendererOptions []vanilla.Option
	if bare {
		rendererOptions = append(rendererOptions, vanilla.WithBareBody())
	}
	renderer, err := vanilla.New(rendererOptions...)
	if err != nil {
		return err
	}

	options := render.RenderOptions{Theme: themeConfig}
	if reveal > 0 {
		state := render.NewRevealState()
		for state.Advance(reveal) {
		}
		options.Reveal = state
	}

	schema.Normalize(formation)
	page, err := renderer.Render(context.Background(), *formation, options)
	if err != nil {
		return err
	}
	return writeOutput(out, page)
}

func readFormation(in string) (*schema.Formation, error) {
	var reader io.Reader = os.Stdin
	if in != "-" {
		file, err := os.Open(in)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var formation schema.Formation
	if err := json.NewDecoder(reader).Decode(&formation); err != nil {
		return nil, fmt.Errorf("decode formation: %w", err)
	}
	return &formation, nil
}

func writeOutput(out string, page []byte) error {
	if out == "-" {
		_, err := os.Stdout.Write(page)
		return err
	}
	return os.WriteFile(out, page, 0o644)
}
