package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is an in-memory Translator keyed by locale then message key.
// Lookups fall back from a regional locale ("de-CH", "de_CH") to its base
// language ("de").
type Catalog map[string]map[string]string

var _ Translator = Catalog(nil)

// Translate returns the template stored for key. Placeholders are left for
// Localize/Interpolate to fill.
func (c Catalog) Translate(locale, key string, _ ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		messages, ok := c[candidate]
		if !ok {
			continue
		}
		if msg, ok := messages[key]; ok && strings.TrimSpace(msg) != "" {
			return msg, nil
		}
	}
	return "", fmt.Errorf("render: no translation for %q in locale %q", key, locale)
}

// Locales returns the sorted locales present in the catalog.
func (c Catalog) Locales() []string {
	out := make([]string, 0, len(c))
	for locale := range c {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Merge returns a copy of c with other's entries applied on top.
func (c Catalog) Merge(other Catalog) Catalog {
	out := make(Catalog, len(c)+len(other))
	for _, src := range []Catalog{c, other} {
		for locale, messages := range src {
			locale = normalizeLocale(locale)
			if locale == "" {
				continue
			}
			if out[locale] == nil {
				out[locale] = make(map[string]string, len(messages))
			}
			for key, msg := range messages {
				out[locale][strings.TrimSpace(key)] = msg
			}
		}
	}
	return out
}

// LoadCatalog parses a YAML document shaped as locale -> key -> template.
func LoadCatalog(r io.Reader) (Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("render: missing reader")
	}
	var raw map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return Catalog{}, nil
		}
		return nil, fmt.Errorf("render: decode catalog: %w", err)
	}
	return Catalog{}.Merge(Catalog(raw)), nil
}

func localeChain(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return []string{""}
	}
	chain := []string{locale}
	if idx := strings.Index(locale, "-"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}

func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	return strings.ReplaceAll(locale, "_", "-")
}
