// Package bic provides a Bank Identifier Code (BIC/SWIFT) form field.
//
// A Field is built per request. Normalize records the submitted input with
// line breaks removed, Validate trims it and checks the format through an
// injected swiftbic.Checker, and PrepareForRender returns the input
// attributes for the template layer:
//
//	field := bic.NewField(bic.WithName("bic"), bic.WithRequired(true))
//	field.Normalize(r.PostForm.Get("bic"))
//	if outcome := field.ValidateInto(submission); !outcome.Valid() {
//		// submission carries the localized message
//	}
//	html, err := field.Render(engine, render.RenderOptions{})
//
// Empty input is always valid here; hosts enforce required fields with their
// generic check so users do not see the same error twice.
//
// The package also ships a small net/http handler that validates one value
// per request and returns JSON, plus helpers that derive options from
// OpenAPI schemas and YAML config files.
package bic
