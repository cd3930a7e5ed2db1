package bic

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formgen-bic/pkg/render"
	"github.com/goliatone/go-formgen-bic/pkg/render/template"
	"github.com/goliatone/go-formgen-bic/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplateName is the default template rendered by Field.Render.
const TemplateName = "input__bic"

// TemplatesFS exposes the embedded templates so hosts can copy or extend them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// NewRenderer builds the pongo2 engine over the embedded templates with the
// translate/current_locale helpers bound to t.
func NewRenderer(t render.Translator, fns ...gotemplate.Option) (*gotemplate.Engine, error) {
	opts := []gotemplate.Option{
		gotemplate.WithFS(TemplatesFS()),
		gotemplate.WithTemplateFunc(render.TemplateI18nFuncs(t, render.TemplateI18nConfig{})),
	}
	opts = append(opts, fns...)
	return gotemplate.New(opts...)
}

// TemplateData is the view model handed to the template.
type TemplateData struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Required     bool     `json:"required"`
	Locale       string   `json:"locale"`
	Attributes   string   `json:"attributes"`
	WrapperClass string   `json:"wrapper_class"`
	Errors       []string `json:"errors"`
}

// TemplateData builds the view model for the current field state. Errors are
// the field's own validation message merged with opts.Errors for its name.
func (f *Field) TemplateData(opts render.RenderOptions) TemplateData {
	attrs := f.PrepareForRender()
	fieldOpts := f.Options()

	locale := opts.Locale
	if locale == "" {
		locale = fieldOpts.Locale
	}

	var messages []string
	if msg := f.Outcome().Message(); msg != "" {
		messages = append(messages, msg)
	}
	messages = render.MergeFormErrors(messages, opts.Errors[fieldOpts.Name]...)

	wrapper := []string{"form-item", "form-type-bic", "js-form-item"}
	if len(messages) > 0 {
		wrapper = append(wrapper, "form-item--error")
	}

	return TemplateData{
		ID:           attrs["id"],
		Title:        sanitizeText(fieldOpts.Title),
		Description:  sanitizeText(fieldOpts.Description),
		Required:     fieldOpts.Required,
		Locale:       locale,
		Attributes:   attrs.String(),
		WrapperClass: strings.Join(wrapper, " "),
		Errors:       messages,
	}
}

// Render produces the field markup through renderer. The theme token
// "bic.template" (from opts.Theme or the field's theme) picks another template.
func (f *Field) Render(renderer template.TemplateRenderer, opts render.RenderOptions) (string, error) {
	if renderer == nil {
		return "", fmt.Errorf("bic: template renderer is required")
	}
	name := opts.ThemeToken(ThemeTokenTemplate)
	if name == "" {
		name = render.ThemeToken(f.Options().Theme, ThemeTokenTemplate)
	}
	if name == "" {
		name = TemplateName
	}

	data := f.TemplateData(opts)
	out, err := renderer.RenderTemplate(name, map[string]any{
		"id":            data.ID,
		"title":         data.Title,
		"description":   data.Description,
		"required":      data.Required,
		"locale":        data.Locale,
		"attributes":    data.Attributes,
		"wrapper_class": data.WrapperClass,
		"errors":        data.Errors,
	})
	if err != nil {
		return "", fmt.Errorf("bic: render %q: %w", name, err)
	}
	return out, nil
}
