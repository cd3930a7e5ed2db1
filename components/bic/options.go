package bic

import (
	"net/http"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-bic/pkg/render"
	"github.com/goliatone/go-formgen-bic/pkg/swiftbic"
)

const (
	DefaultName        = "bic"
	DefaultSize        = 60
	DefaultMaxLength   = 11
	DefaultRoutePath   = "/api/bic/validate"
	DefaultValueParam  = "value"
	DefaultLocaleParam = "locale"
)

type GuardFunc func(r *http.Request) error

// Options configure a BIC field and its validation endpoint.
type Options struct {
	Name         string
	ID           string
	Title        string
	Description  string
	Placeholder  string
	DefaultValue string
	Size         int
	MaxLength    int
	Required     bool

	// Autocomplete is passed through to the rendered markup; nil disables it.
	Autocomplete *Autocomplete
	// Attributes are extra HTML attributes merged under the field's own.
	Attributes   map[string]string

	Checker    swiftbic.Checker
	Translator render.Translator
	OnMissing  render.MissingTranslationHandler
	Locale     string
	Theme      *theme.Selection

	// StrictInput reports non-scalar input as invalid instead of coercing it
	// to an empty string.
	StrictInput bool

	RoutePath   string
	ValueParam  string
	LocaleParam string
	Guard       GuardFunc
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Name:        DefaultName,
		Size:        DefaultSize,
		MaxLength:   DefaultMaxLength,
		Checker:     swiftbic.Default(),
		RoutePath:   DefaultRoutePath,
		ValueParam:  DefaultValueParam,
		LocaleParam: DefaultLocaleParam,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	opts.Name = strings.TrimSpace(opts.Name)
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.MaxLength <= 0 {
		opts.MaxLength = DefaultMaxLength
	}
	if opts.Checker == nil {
		opts.Checker = swiftbic.Default()
	}
	if opts.RoutePath == "" {
		opts.RoutePath = DefaultRoutePath
	}
	if opts.ValueParam == "" {
		opts.ValueParam = DefaultValueParam
	}
	if opts.LocaleParam == "" {
		opts.LocaleParam = DefaultLocaleParam
	}
	opts.Autocomplete = opts.Autocomplete.clone()
	opts.Attributes = cloneStrings(opts.Attributes)
	return opts
}

func WithName(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Name = name
	}
}

func WithID(id string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ID = id
	}
}

func WithTitle(title string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Title = title
	}
}

func WithDescription(description string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Description = description
	}
}

func WithPlaceholder(placeholder string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Placeholder = placeholder
	}
}

func WithDefaultValue(value string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultValue = value
	}
}

func WithSize(size int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Size = size
	}
}

func WithMaxLength(maxLength int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLength = maxLength
	}
}

func WithRequired(required bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Required = required
	}
}

// WithAutocomplete wires a suggestion source. An empty route disables it.
func WithAutocomplete(route string, params map[string]string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if strings.TrimSpace(route) == "" {
			o.Autocomplete = nil
			return
		}
		o.Autocomplete = &Autocomplete{Route: route, Params: cloneStrings(params)}
	}
}

func WithAttributes(attrs map[string]string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Attributes = cloneStrings(attrs)
	}
}

func WithChecker(checker swiftbic.Checker) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Checker = checker
	}
}

func WithTranslator(t render.Translator) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Translator = t
	}
}

func WithMissingTranslationHandler(fn render.MissingTranslationHandler) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.OnMissing = fn
	}
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Locale = locale
	}
}

func WithTheme(selection *theme.Selection) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Theme = selection
	}
}

func WithStrictInput(strict bool) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.StrictInput = strict
	}
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithValueParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValueParam = name
	}
}

func WithLocaleParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LocaleParam = name
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func cloneStrings(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
