package modelgen

import (
	"io/fs"

	"github.com/goliatone/go-modelgen/pkg/renderers/catalog"
)

// EmbeddedTemplates exposes the built-in catalog renderer templates so callers
// can copy or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return catalog.TemplatesFS()
}
