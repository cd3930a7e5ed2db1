package formgen

import (
	"io/fs"

	"github.com/goliatone/go-formgen-bic/components/bic"
)

// EmbeddedTemplates exposes the built-in field templates so callers can reuse
// or extend them without importing the component package directly.
func EmbeddedTemplates() fs.FS {
	fsys := bic.TemplatesFS()
	return fsys
}
