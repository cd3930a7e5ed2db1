package bic

import (
	"html"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formgen-bic/pkg/render"
)

const (
	InputType         = "bic"
	ClassName         = "form-bic"
	ClassAutocomplete = "form-autocomplete"
	ClassError        = "error"

	// ThemeTokenClass adds theme classes to the input.
	ThemeTokenClass = "bic.class"
	// ThemeTokenTemplate overrides the template used by Render.
	ThemeTokenTemplate = "bic.template"
)

// Attributes are the HTML attributes of the rendered input.
type Attributes map[string]string

// String renders the attributes as ` key="value"` pairs sorted by key with
// values HTML-escaped.
func (a Attributes) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(html.EscapeString(key))
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a[key]))
		b.WriteByte('"')
	}
	return b.String()
}

// Classes splits the class attribute.
func (a Attributes) Classes() []string {
	return strings.Fields(a["class"])
}

// protected attributes are owned by the field and never taken from
// Options.Attributes.
var protected = map[string]struct{}{
	"type":  {},
	"name":  {},
	"value": {},
	"id":    {},
}

// PrepareForRender returns the input attributes for the current state. It has
// no side effects: repeated calls on an unchanged field return equal maps.
func (f *Field) PrepareForRender() Attributes {
	opts := DefaultOptions()
	var (
		value   string
		invalid bool
	)
	if f != nil {
		opts = f.opts
		value = opts.DefaultValue
		if f.state == StateSubmitted {
			value = f.value
		}
		invalid = !f.outcome.Valid()
	}

	attrs := Attributes{}
	var classes []string
	for key, val := range opts.Attributes {
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		if _, ok := protected[key]; ok {
			continue
		}
		if key == "class" {
			classes = append(classes, strings.Fields(val)...)
			continue
		}
		attrs[key] = val
	}

	attrs["type"] = InputType
	attrs["id"] = elementID(opts)
	attrs["name"] = opts.Name
	attrs["value"] = value
	attrs["size"] = strconv.Itoa(opts.Size)
	attrs["maxlength"] = strconv.Itoa(opts.MaxLength)
	if placeholder := sanitizeText(opts.Placeholder); placeholder != "" {
		attrs["placeholder"] = placeholder
	}
	if opts.Required {
		attrs["required"] = "required"
		attrs["aria-required"] = "true"
	}

	classes = append(classes, ClassName)
	if path := opts.Autocomplete.Path(); path != "" {
		classes = append(classes, ClassAutocomplete)
		attrs["data-autocomplete-path"] = path
	}
	if invalid {
		classes = append(classes, ClassError)
		attrs["aria-invalid"] = "true"
	}
	classes = append(classes, strings.Fields(render.ThemeToken(opts.Theme, ThemeTokenClass))...)
	attrs["class"] = strings.Join(dedupe(classes), " ")

	return attrs
}

// elementID derives "edit-<name>" with separators mapped to dashes, unless an
// explicit ID is configured.
func elementID(opts Options) string {
	if id := strings.TrimSpace(opts.ID); id != "" {
		return id
	}
	name := strings.ToLower(strings.TrimSpace(opts.Name))
	name = strings.NewReplacer(" ", "-", "_", "-", "[", "-", "]", "").Replace(name)
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	return "edit-" + strings.Trim(name, "-")
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from host-provided text so it can be placed in
// an attribute; escaping is left to Attributes.String.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(trimmed)))
}

func dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok || value == "" {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
