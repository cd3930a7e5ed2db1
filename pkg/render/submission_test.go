package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formgen-bic/pkg/render"
)

func TestSubmission_RecordsValuesAndErrors(t *testing.T) {
	sub := render.NewSubmission()

	sub.SetValue("bic", "DEUTDEFF")
	sub.SetValue(" iban ", "DE89")
	sub.SetError("bic", " The code is not valid. ")
	sub.SetError("bic", "The code is not valid.")
	sub.SetError("bic", "   ")
	sub.SetError("", "Form level")

	if value, ok := sub.Value("bic"); !ok || value != "DEUTDEFF" {
		t.Fatalf("unexpected bic value: %q (%v)", value, ok)
	}
	if diff := cmp.Diff(map[string]string{"bic": "DEUTDEFF", "iban": "DE89"}, sub.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string][]string{"bic": {"The code is not valid."}}, sub.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Form level"}, sub.FormErrors()); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
	if !sub.HasErrors() {
		t.Fatalf("expected HasErrors")
	}
	if diff := cmp.Diff([]string{"bic"}, sub.ErrorFields()); diff != "" {
		t.Fatalf("error fields mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmission_BlankErrorDoesNotCreateEntry(t *testing.T) {
	sub := render.NewSubmission()
	sub.SetError("bic", "  ")
	if sub.HasErrors() {
		t.Fatalf("expected no errors, got %#v", sub.Errors())
	}
	if sub.FieldErrors("bic") != nil {
		t.Fatalf("expected nil field errors")
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderOptions_ThemeToken(t *testing.T) {
	opts := render.RenderOptions{
		Theme: &theme.Selection{
			Theme: "acme",
			Manifest: &theme.Manifest{
				Name:   "acme",
				Tokens: map[string]string{"bic.class": " acme-bic "},
			},
		},
	}
	if got := opts.ThemeToken("bic.class"); got != "acme-bic" {
		t.Fatalf("unexpected token: %q", got)
	}
	if got := (render.RenderOptions{}).ThemeToken("bic.class"); got != "" {
		t.Fatalf("expected empty token without theme, got %q", got)
	}
}
