package bic

import (
	"strings"

	"github.com/goliatone/go-formgen-bic/pkg/render"
)

// State tracks whether a field has received input.
type State int

const (
	StateUnsubmitted State = iota
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateSubmitted:
		return "submitted"
	default:
		return "unsubmitted"
	}
}

// Element is the capability a host form pipeline drives for one field.
type Element interface {
	Normalize(input any) (string, bool)
	Validate() Outcome
	PrepareForRender() Attributes
}

var _ Element = (*Field)(nil)

// Field is the per-request descriptor of one BIC input. It must not be shared
// across requests or goroutines.
type Field struct {
	opts Options

	state     State
	raw       any
	value     string
	malformed bool
	outcome   Outcome
}

// NewField builds a fresh, unsubmitted field.
func NewField(fns ...OptionFn) *Field {
	return newField(NewOptions(fns...))
}

func newField(opts Options) *Field {
	return &Field{opts: opts}
}

// Options returns a copy of the field configuration.
func (f *Field) Options() Options {
	if f == nil {
		return DefaultOptions()
	}
	return NewOptions(func(o *Options) { *o = f.opts })
}

// Name returns the submission key of the field.
func (f *Field) Name() string {
	if f == nil {
		return DefaultName
	}
	return f.opts.Name
}

// State reports whether input has been received.
func (f *Field) State() State {
	if f == nil {
		return StateUnsubmitted
	}
	return f.state
}

// Raw returns the last input passed to Normalize while present.
func (f *Field) Raw() any {
	if f == nil {
		return nil
	}
	return f.raw
}

// Value returns the current value: normalised after Normalize and trimmed
// after Validate. ok is false while unsubmitted.
func (f *Field) Value() (value string, ok bool) {
	if f == nil || f.state != StateSubmitted {
		return "", false
	}
	return f.value, true
}

// Outcome returns the result of the last Validate call.
func (f *Field) Outcome() Outcome {
	if f == nil {
		return Outcome{}
	}
	return f.outcome
}

// Normalize records input for this request. Absent input leaves the field as
// it is; present input moves it to StateSubmitted. See the package-level
// Normalize for the conversion rules.
func (f *Field) Normalize(input any) (string, bool) {
	value, present, coerced := normalize(input)
	if f == nil || !present {
		return value, present
	}
	f.state = StateSubmitted
	f.raw = input
	f.value = value
	f.malformed = coerced
	f.outcome = Outcome{}
	return value, true
}

// Validate trims the value, keeps the trimmed form as the field value and
// checks it against the BIC format. Empty values are valid: required-ness is
// the host's concern. Validate on an unsubmitted field is a no-op.
func (f *Field) Validate() Outcome {
	if f == nil || f.state != StateSubmitted {
		return Outcome{}
	}

	trimmed := strings.TrimSpace(f.value)
	f.value = trimmed

	switch {
	case f.malformed && f.opts.StrictInput:
		f.outcome = invalidOutcome(trimmed, f.message(MessageKeyMalformed, defaultMalformedMessage, trimmed), ErrMalformedInput)
	case trimmed == "":
		f.outcome = Outcome{}
	case f.opts.Checker != nil && f.opts.Checker.Check(trimmed):
		f.outcome = Outcome{}
	default:
		f.outcome = invalidOutcome(trimmed, f.message(MessageKeyInvalid, defaultInvalidMessage, trimmed), ErrInvalidFormat)
	}
	return f.outcome
}

// ValidateInto validates and reports to the host form state: the trimmed value
// is always committed, the error message only when invalid.
func (f *Field) ValidateInto(state render.FormState) Outcome {
	outcome := f.Validate()
	if state == nil || f == nil || f.state != StateSubmitted {
		return outcome
	}
	state.SetValue(f.opts.Name, f.value)
	if !outcome.Valid() {
		state.SetError(f.opts.Name, outcome.Message())
	}
	return outcome
}

// Submit runs Normalize then ValidateInto, the usual order for one request.
func (f *Field) Submit(input any, state render.FormState) Outcome {
	f.Normalize(input)
	return f.ValidateInto(state)
}

func (f *Field) message(key, fallback, value string) string {
	return render.Localize(f.opts.Translator, f.opts.OnMissing, f.opts.Locale, key, fallback, map[string]any{"bic": value})
}
