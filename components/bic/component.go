package bic

import "net/http"

// Component holds shared field configuration. It is immutable and safe to
// share; every request builds its own Field through NewField.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// NewField returns a fresh descriptor for one request. fns apply on top of the
// component configuration for this field only.
func (c *Component) NewField(fns ...OptionFn) *Field {
	base := c.Options()
	all := append([]OptionFn{func(o *Options) { *o = base }}, fns...)
	return NewField(all...)
}

// Handler returns the net/http validation handler.
func (c *Component) Handler() http.Handler {
	if c == nil {
		return Handler()
	}
	return HandlerWithOptions(c.opts)
}

// RegisterRoutes registers the validation handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	if c == nil {
		return RegisterRoutes(mux, basePath)
	}
	return RegisterRoutesWithOptions(mux, basePath, c.opts)
}
