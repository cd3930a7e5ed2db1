package render

import (
	"fmt"
	"strings"
)

// TemplateI18nConfig configures the translation helpers handed to templates.
type TemplateI18nConfig struct {
	// LocaleKey is the map key read when templates pass their data instead of
	// a locale string. Defaults to "locale".
	LocaleKey string
	// FuncName renames the translate helper.
	FuncName string
	// OnMissing decides what a missing key renders as.
	OnMissing MissingTranslationHandler
}

func (c TemplateI18nConfig) localeKey() string {
	if key := strings.TrimSpace(c.LocaleKey); key != "" {
		return key
	}
	return "locale"
}

func (c TemplateI18nConfig) funcName() string {
	if name := strings.TrimSpace(c.FuncName); name != "" {
		return name
	}
	return "translate"
}

// TemplateI18nFuncs returns the helpers registered with
// gotemplate.WithTemplateFunc:
//
//	{{ translate(locale, "bic.title", title) }}
//	{{ current_locale(locale) }}
//
// translate takes an optional trailing map of named placeholders.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	key := cfg.localeKey()
	locale := func(src any) string { return localeOf(src, key) }

	return map[string]any{
		cfg.funcName(): func(src any, msgKey string, fallback string, params ...map[string]any) string {
			var named map[string]any
			if len(params) > 0 {
				named = params[0]
			}
			return Localize(t, cfg.OnMissing, locale(src), msgKey, fallback, named)
		},
		"current_locale": locale,
	}
}

// localeOf reads a locale from a string, a Stringer, a RenderOptions value or
// a template data map.
func localeOf(src any, key string) string {
	switch v := src.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case RenderOptions:
		return strings.TrimSpace(v.Locale)
	case *RenderOptions:
		if v == nil {
			return ""
		}
		return strings.TrimSpace(v.Locale)
	case map[string]string:
		return strings.TrimSpace(v[key])
	case map[string]any:
		if raw, ok := v[key]; ok && raw != nil {
			return localeOf(fmt.Sprint(raw), key)
		}
		return ""
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	}
	return ""
}
