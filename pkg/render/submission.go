package render

import (
	"sort"
	"strings"
)

// FormState receives the outcome of field validation: the value to commit for
// a field and any field-level error messages.
type FormState interface {
	SetValue(name, value string)
	SetError(name, message string)
}

// Submission is the default FormState. It belongs to a single request and is
// not safe for concurrent use.
type Submission struct {
	values map[string]string
	errors map[string][]string
	form   []string
}

var _ FormState = (*Submission)(nil)

// NewSubmission returns an empty submission.
func NewSubmission() *Submission {
	return &Submission{
		values: make(map[string]string),
		errors: make(map[string][]string),
	}
}

// SetValue commits the final value for name. Later calls win.
func (s *Submission) SetValue(name, value string) {
	name = strings.TrimSpace(name)
	if s == nil || name == "" {
		return
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[name] = value
}

// SetError records a message for name. An empty name records a form-level
// error. Duplicate and blank messages are dropped.
func (s *Submission) SetError(name, message string) {
	if s == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		s.form = MergeFormErrors(s.form, message)
		return
	}
	if s.errors == nil {
		s.errors = make(map[string][]string)
	}
	merged := MergeFormErrors(s.errors[name], message)
	if len(merged) == 0 {
		return
	}
	s.errors[name] = merged
}

// Value returns the committed value for name.
func (s *Submission) Value(name string) (string, bool) {
	if s == nil {
		return "", false
	}
	value, ok := s.values[strings.TrimSpace(name)]
	return value, ok
}

// Values returns a copy of all committed values.
func (s *Submission) Values() map[string]string {
	if s == nil || len(s.values) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

// FieldErrors returns the messages recorded for name.
func (s *Submission) FieldErrors(name string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.errors[strings.TrimSpace(name)]...)
}

// Errors returns a copy of all field-level errors keyed by field name, in the
// shape RenderOptions.Errors expects.
func (s *Submission) Errors() map[string][]string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	out := make(map[string][]string, len(s.errors))
	for name, messages := range s.errors {
		out[name] = append([]string(nil), messages...)
	}
	return out
}

// FormErrors returns form-level messages.
func (s *Submission) FormErrors() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.form...)
}

// HasErrors reports whether any field or form error was recorded.
func (s *Submission) HasErrors() bool {
	return s != nil && (len(s.errors) > 0 || len(s.form) > 0)
}

// ErrorFields returns the sorted names of fields with errors.
func (s *Submission) ErrorFields() []string {
	if s == nil || len(s.errors) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.errors))
	for name := range s.errors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MergeFormErrors appends extras to existing and returns the trimmed,
// de-duplicated result in first-seen order. Blank messages are dropped and an
// all-blank result is nil.
func MergeFormErrors(existing []string, extras ...string) []string {
	var out []string
	seen := make(map[string]bool, len(existing)+len(extras))
	for _, batch := range [][]string{existing, extras} {
		for _, message := range batch {
			message = strings.TrimSpace(message)
			if message == "" || seen[message] {
				continue
			}
			seen[message] = true
			out = append(out, message)
		}
	}
	return out
}
