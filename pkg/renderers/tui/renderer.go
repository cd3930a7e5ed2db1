package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/goliatone/go-formgen-bic/components/bic"
	"github.com/goliatone/go-formgen-bic/pkg/render"
)

// Renderer collects a BIC from a terminal session. Every answer is validated
// before it is accepted; the accepted value is submitted into the field and
// serialized.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	maxAttempts  int
	theme        Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
		theme:        Theme{ErrorPrefix: "✗ "},
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render prompts for the field value and returns the submitted values in the
// configured output format. Server-side errors in opts.Errors are shown before
// the first prompt.
func (r *Renderer) Render(ctx context.Context, field *bic.Field, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}
	if field == nil {
		return nil, errors.New("tui: field is nil")
	}

	fieldOpts := field.Options()
	translator, locale := opts.Translator, opts.Locale
	if translator == nil {
		translator = fieldOpts.Translator
	}
	if locale == "" {
		locale = fieldOpts.Locale
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = fieldOpts.OnMissing
	}

	title := fieldOpts.Title
	if title == "" {
		title = fieldOpts.Name
	}
	cfg := InputConfig{
		Message: render.Localize(translator, onMissing, locale, "bic.title", title, nil),
		Default: fieldOpts.DefaultValue,
	}
	if fieldOpts.Description != "" {
		cfg.Help = render.Localize(translator, onMissing, locale, "bic.description", fieldOpts.Description, nil)
	}
	if value, ok := field.Value(); ok {
		cfg.Default = value
	}

	for _, msg := range opts.Errors[fieldOpts.Name] {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+msg); err != nil {
			return nil, err
		}
	}

	answer, err := r.ask(ctx, cfg, validatorFor(fieldOpts,
		bic.WithTranslator(translator),
		bic.WithLocale(locale),
		bic.WithMissingTranslationHandler(onMissing),
	))
	if err != nil {
		return nil, err
	}

	state := render.NewSubmission()
	field.Submit(answer, state)
	return r.serialize(state.Values())
}

func (r *Renderer) ask(ctx context.Context, cfg InputConfig, validate func(string) error) (string, error) {
	for attempt := 1; ; attempt++ {
		answer, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return "", err
		}
		verr := validate(answer)
		if verr == nil {
			return answer, nil
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			return "", fmt.Errorf("%w: %v", ErrTooManyAttempts, verr)
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+verr.Error()); err != nil {
			return "", err
		}
	}
}

// validatorFor checks answers against a throwaway copy of the field so the
// real field only sees the accepted answer. overrides carry the prompt's
// translator and locale so errors read in the same language as the title.
func validatorFor(opts bic.Options, overrides ...bic.OptionFn) func(string) error {
	fns := append([]bic.OptionFn{func(o *bic.Options) { *o = opts }}, overrides...)
	return func(answer string) error {
		scratch := bic.NewField(fns...)
		scratch.Normalize(answer)
		return scratch.Validate().Err()
	}
}

func (r *Renderer) serialize(values map[string]string) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		form := url.Values{}
		for name, value := range values {
			form.Set(name, value)
		}
		return []byte(form.Encode()), nil
	case OutputFormatPrettyText:
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)
		var b strings.Builder
		for _, name := range names {
			fmt.Fprintf(&b, "%s%s: %s\n", r.theme.InfoPrefix, name, values[name])
		}
		return []byte(b.String()), nil
	default:
		if values == nil {
			values = map[string]string{}
		}
		out, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode values: %w", err)
		}
		return out, nil
	}
}
