package bic

import "errors"

var (
	// ErrInvalidFormat marks a value rejected by the format checker.
	ErrInvalidFormat = errors.New("bic: invalid format")
	// ErrMalformedInput marks non-scalar input. It is only reported when
	// StrictInput is enabled; otherwise such input is coerced to "".
	ErrMalformedInput = errors.New("bic: malformed input")
)

const (
	MessageKeyInvalid   = "bic.invalid"
	MessageKeyMalformed = "bic.malformed"

	defaultInvalidMessage   = "The bank identifier code '{bic}' is not valid."
	defaultMalformedMessage = "The bank identifier code must be a single line of text."
)

// InvalidFormatError carries the value that failed validation and the
// localised message shown to the user.
type InvalidFormatError struct {
	Value   string
	Message string
	Cause   error
}

func (e *InvalidFormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Unwrap().Error()
}

func (e *InvalidFormatError) Unwrap() error {
	if e == nil || e.Cause == nil {
		return ErrInvalidFormat
	}
	return e.Cause
}

// Outcome is the result of validating a field. The zero value is valid.
type Outcome struct {
	err *InvalidFormatError
}

// Valid reports whether the field passed validation.
func (o Outcome) Valid() bool {
	return o.err == nil
}

// Message returns the user-facing error message, or "" when valid.
func (o Outcome) Message() string {
	if o.err == nil {
		return ""
	}
	return o.err.Message
}

// Err returns nil when valid, otherwise an *InvalidFormatError wrapping
// ErrInvalidFormat or ErrMalformedInput.
func (o Outcome) Err() error {
	if o.err == nil {
		return nil
	}
	return o.err
}

func invalidOutcome(value, message string, cause error) Outcome {
	return Outcome{err: &InvalidFormatError{Value: value, Message: message, Cause: cause}}
}
