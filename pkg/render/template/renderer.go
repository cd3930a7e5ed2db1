package template

import (
	"io"
)

// TemplateRenderer is the seam field renderers rely on. The gotemplate
// package provides a pongo2-backed implementation; hosts may plug in their
// own engine.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
