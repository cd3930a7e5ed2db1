// Package template defines the renderer-agnostic template interface used to
// turn field attributes into markup.
package template
