package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingTranslator is reported to MissingTranslationHandler when no
// Translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale. Implementations receive the
// raw args passed by the caller; a trailing map[string]any carries named
// placeholders.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	if f == nil {
		return "", ErrMissingTranslator
	}
	return f(locale, key, args...)
}

// MissingTranslationHandler decides the string used when a key cannot be
// translated. args[0] carries {"default": fallback} when the caller has one.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback := strings.TrimSpace(anyToString(values["default"])); fallback != "" {
			return fallback
		}
	}
	return key
}

// Localize translates key and interpolates params into the result. When the
// translator is missing or fails, onMissing (or the default handler) picks the
// template, which is fallback unless the handler says otherwise.
func Localize(t Translator, onMissing MissingTranslationHandler, locale, key, fallback string, params map[string]any) string {
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Interpolate(fallback, params)
	}

	missingArgs := []any{map[string]any{"default": fallback}}
	if t == nil {
		return Interpolate(onMissing(locale, key, missingArgs, ErrMissingTranslator), params)
	}

	msg, err := t.Translate(locale, key, params)
	if err != nil || strings.TrimSpace(msg) == "" {
		return Interpolate(onMissing(locale, key, missingArgs, err), params)
	}
	return Interpolate(msg, params)
}

// Interpolate replaces {name}, %name, @name and :name placeholders with the
// matching params value. Longer names are replaced first so "bic" never eats
// into "bic_branch".
func Interpolate(template string, params map[string]any) string {
	if template == "" || len(params) == 0 {
		return template
	}

	names := make([]string, 0, len(params))
	for name := range params {
		if strings.TrimSpace(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})

	pairs := make([]string, 0, len(names)*8)
	for _, name := range names {
		value := anyToString(params[name])
		pairs = append(pairs,
			"{"+name+"}", value,
			"%"+name, value,
			"@"+name, value,
			":"+name, value,
		)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

func anyToString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}
