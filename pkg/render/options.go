package render

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating field configuration.
type RenderOptions struct {
	// Locale selects translations for labels and messages.
	Locale string
	// Translator resolves message keys. Nil falls back to built-in English.
	Translator Translator
	// OnMissing controls the string used when a translation is missing.
	OnMissing MissingTranslationHandler
	// Theme carries the go-theme selection. Manifest tokens are read through
	// ThemeToken.
	Theme *theme.Selection
	// Errors surfaces server-side validation feedback keyed by field name.
	Errors map[string][]string
}

// ThemeToken returns the manifest token for key, or "" when no theme is
// selected or the token is unset.
func (o RenderOptions) ThemeToken(key string) string {
	return ThemeToken(o.Theme, key)
}

// ThemeToken reads a token from a go-theme selection.
func ThemeToken(selection *theme.Selection, key string) string {
	if selection == nil || selection.Manifest == nil {
		return ""
	}
	return strings.TrimSpace(selection.Manifest.Tokens[strings.TrimSpace(key)])
}
