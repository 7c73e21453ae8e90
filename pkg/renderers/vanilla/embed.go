package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

// TemplatesFS exposes the built-in page-shell bundle.
func TemplatesFS() fs.FS {
	return templateFiles
}
