package bic

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formgen-bic/pkg/render"
)

// Config is the YAML form of Options.
//
//	name: payee_bic
//	title: BIC
//	maxlength: 11
//	required: true
//	autocomplete:
//	  route: /api/banks
//	  params: {country: DE}
//	messages:
//	  de:
//	    bic.invalid: "Der BIC '{bic}' ist ungültig."
type Config struct {
	Name         string            `yaml:"name"`
	ID           string            `yaml:"id"`
	Title        string            `yaml:"title"`
	Description  string            `yaml:"description"`
	Placeholder  string            `yaml:"placeholder"`
	DefaultValue string            `yaml:"default_value"`
	Size         int               `yaml:"size"`
	MaxLength    int               `yaml:"maxlength"`
	Required     bool              `yaml:"required"`
	StrictInput  bool              `yaml:"strict_input"`
	Locale       string            `yaml:"locale"`
	Autocomplete *Autocomplete     `yaml:"autocomplete"`
	Attributes   map[string]string `yaml:"attributes"`
	RoutePath    string            `yaml:"route_path"`
	ValueParam   string            `yaml:"value_param"`
	Messages     render.Catalog    `yaml:"messages"`
}

// LoadConfig decodes a YAML config. An empty document yields the zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if r == nil {
		return cfg, fmt.Errorf("bic: missing reader")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("bic: decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("bic: open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return LoadConfig(f)
}

// Options converts the config into option functions. Zero values leave the
// defaults alone; messages become a render.Catalog translator.
func (c Config) Options() []OptionFn {
	var fns []OptionFn
	set := func(value string, fn func(string) OptionFn) {
		if value != "" {
			fns = append(fns, fn(value))
		}
	}
	set(c.Name, WithName)
	set(c.ID, WithID)
	set(c.Title, WithTitle)
	set(c.Description, WithDescription)
	set(c.Placeholder, WithPlaceholder)
	set(c.DefaultValue, WithDefaultValue)
	set(c.Locale, WithLocale)
	set(c.RoutePath, WithRoutePath)
	set(c.ValueParam, WithValueParam)

	if c.Size > 0 {
		fns = append(fns, WithSize(c.Size))
	}
	if c.MaxLength > 0 {
		fns = append(fns, WithMaxLength(c.MaxLength))
	}
	if c.Required {
		fns = append(fns, WithRequired(true))
	}
	if c.StrictInput {
		fns = append(fns, WithStrictInput(true))
	}
	if c.Autocomplete != nil {
		fns = append(fns, WithAutocomplete(c.Autocomplete.Route, c.Autocomplete.Params))
	}
	if len(c.Attributes) > 0 {
		fns = append(fns, WithAttributes(c.Attributes))
	}
	if len(c.Messages) > 0 {
		fns = append(fns, WithTranslator(render.Catalog{}.Merge(c.Messages)))
	}
	return fns
}
