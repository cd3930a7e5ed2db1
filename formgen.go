package formgen

import (
	"context"

	"github.com/goliatone/go-formgen-bic/components/bic"
	"github.com/goliatone/go-formgen-bic/pkg/render"
	"github.com/goliatone/go-formgen-bic/pkg/swiftbic"
)

// Field aliases bic.Field so callers can stay on the top-level package.
type Field = bic.Field

// Options aliases bic.Options.
type Options = bic.Options

// OptionFn aliases bic.OptionFn.
type OptionFn = bic.OptionFn

// Outcome is the result of validating a field.
type Outcome = bic.Outcome

// RenderOptions describes per-request overrides that renderers can use to
// surface server-side validation errors or switch locale.
type RenderOptions = render.RenderOptions

// Submission collects committed values and errors for one request.
type Submission = render.Submission

// NewField returns a fresh field for one request.
func NewField(fns ...OptionFn) *Field {
	return bic.NewField(fns...)
}

// NewComponent returns shared field configuration that hands out fresh fields
// and the validation endpoint.
func NewComponent(fns ...OptionFn) *bic.Component {
	return bic.New(fns...)
}

// NewSubmission returns an empty form state.
func NewSubmission() *Submission {
	return render.NewSubmission()
}

// Validate reports whether code is a structurally valid BIC.
func Validate(code string) bool {
	return swiftbic.Validate(code)
}

// RenderHTML runs input through a fresh field and returns its markup using
// the embedded templates. Absent input (nil) renders the unsubmitted field.
func RenderHTML(input any, opts RenderOptions, fns ...OptionFn) (string, Outcome, error) {
	field := bic.NewField(fns...)
	field.Normalize(input)
	outcome := field.Validate()

	translator := opts.Translator
	if translator == nil {
		translator = field.Options().Translator
	}
	renderer, err := bic.NewRenderer(translator)
	if err != nil {
		return "", outcome, err
	}
	markup, err := field.Render(renderer, opts)
	return markup, outcome, err
}

// OptionsFromOpenAPI loads field options from property of
// components.schemas[schema] in the OpenAPI document at path.
func OptionsFromOpenAPI(ctx context.Context, path, schema, property string) ([]OptionFn, error) {
	return bic.LoadSchemaOptions(ctx, path, schema, property)
}
