package bic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	ExtensionWidget       = "x-formgen-widget"
	ExtensionAutocomplete = "x-formgen-autocomplete"
)

var ErrNotBICSchema = errors.New("bic: schema is not a BIC field")

var bicFormats = map[string]struct{}{
	"bic":       {},
	"swift":     {},
	"swift-bic": {},
}

// IsBICSchema reports whether a property schema describes a BIC, either by
// format (bic, swift, swift-bic) or by x-formgen-widget: bic.
func IsBICSchema(schema *openapi3.Schema) bool {
	if schema == nil {
		return false
	}
	if _, ok := bicFormats[strings.ToLower(strings.TrimSpace(schema.Format))]; ok {
		return true
	}
	widget, _ := schema.Extensions[ExtensionWidget].(string)
	return strings.EqualFold(strings.TrimSpace(widget), "bic")
}

// OptionsFromSchema derives field options from the named property of an
// object schema: maxLength, title, description, example (as placeholder),
// default, required membership and x-formgen-autocomplete.
func OptionsFromSchema(name string, object *openapi3.Schema) ([]OptionFn, error) {
	name = strings.TrimSpace(name)
	if object == nil {
		return nil, fmt.Errorf("bic: schema is nil")
	}
	ref, ok := object.Properties[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("bic: property %q not found", name)
	}
	prop := ref.Value
	if !IsBICSchema(prop) {
		return nil, fmt.Errorf("%w: property %q", ErrNotBICSchema, name)
	}

	fns := []OptionFn{WithName(name)}
	if prop.MaxLength != nil && *prop.MaxLength > 0 {
		fns = append(fns, WithMaxLength(int(*prop.MaxLength)))
	}
	if prop.Title != "" {
		fns = append(fns, WithTitle(prop.Title))
	}
	if prop.Description != "" {
		fns = append(fns, WithDescription(prop.Description))
	}
	if example, ok := prop.Example.(string); ok && example != "" {
		fns = append(fns, WithPlaceholder(example))
	}
	if def, ok := prop.Default.(string); ok && def != "" {
		fns = append(fns, WithDefaultValue(def))
	}
	for _, required := range object.Required {
		if required == name {
			fns = append(fns, WithRequired(true))
			break
		}
	}
	if ac := autocompleteExtension(prop.Extensions[ExtensionAutocomplete]); ac != nil {
		fns = append(fns, WithAutocomplete(ac.Route, ac.Params))
	}
	return fns, nil
}

// LoadSchemaOptions loads an OpenAPI document from path and derives options
// for property of components.schemas[schemaName].
func LoadSchemaOptions(ctx context.Context, path, schemaName, property string) ([]OptionFn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("bic: load openapi document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("bic: document has no components")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("bic: schema %q not found", schemaName)
	}
	return OptionsFromSchema(property, ref.Value)
}

func autocompleteExtension(raw any) *Autocomplete {
	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return &Autocomplete{Route: v}
	case map[string]any:
		route, _ := v["route"].(string)
		if strings.TrimSpace(route) == "" {
			return nil
		}
		ac := &Autocomplete{Route: route}
		if params, ok := v["params"].(map[string]any); ok {
			ac.Params = make(map[string]string, len(params))
			for key, value := range params {
				ac.Params[key] = fmt.Sprint(value)
			}
		}
		return ac
	default:
		return nil
	}
}
