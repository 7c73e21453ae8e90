package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// yamlManifest mirrors the manifest document shape; go-theme's structs carry
// no YAML tags so the bundle format is decoded locally.
type yamlManifest struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Variants map[string]yamlVariant `yaml:"variants"`
}

type yamlVariant struct {
	Tokens map[string]string `yaml:"tokens"`
}

// LoadFS registers every .yml/.yaml manifest found under root in the given
// filesystem. Files are processed in name order so later files win on
// duplicate theme names.
func (r *Resolver) LoadFS(bundle fs.FS, root string) error {
	if bundle == nil {
		return fmt.Errorf("theme: bundle filesystem is nil")
	}
	if root == "" {
		root = "."
	}

	var files []string
	err := fs.WalkDir(bundle, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if ext == ".yml" || ext == ".yaml" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("theme: walk bundle: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		raw, err := fs.ReadFile(bundle, file)
		if err != nil {
			return fmt.Errorf("theme: read %s: %w", file, err)
		}
		var doc yamlManifest
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("theme: parse %s: %w", file, err)
		}
		if doc.Name == "" {
			return fmt.Errorf("theme: %s: manifest requires a name", file)
		}

		manifest := &theme.Manifest{
			Name:    doc.Name,
			Version: doc.Version,
			Tokens:  doc.Tokens,
		}
		if len(doc.Variants) > 0 {
			manifest.Variants = make(map[string]theme.Variant, len(doc.Variants))
			for name, variant := range doc.Variants {
				manifest.Variants[name] = theme.Variant{Tokens: variant.Tokens}
			}
		}
		if err := r.Register(manifest); err != nil {
			return fmt.Errorf("theme: register %s: %w", file, err)
		}
	}
	return nil
}

// LoadDir registers every manifest found under a directory on disk.
func (r *Resolver) LoadDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("theme: directory is required")
	}
	return r.LoadFS(os.DirFS(dir), ".")
}
