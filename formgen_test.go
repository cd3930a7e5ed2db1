package formgen

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedTemplatesContainsFieldTemplate(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "input__bic.tpl"); err != nil {
		t.Fatalf("expected field template to be readable: %v", err)
	}
}

func TestRenderHTML(t *testing.T) {
	markup, outcome, err := RenderHTML("DEU1DEFF\n", RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if outcome.Valid() {
		t.Fatalf("expected digit in institution code to be invalid")
	}
	if !strings.Contains(markup, `value="DEU1DEFF"`) || !strings.Contains(markup, `class="form-bic error"`) {
		t.Fatalf("unexpected markup:\n%s", markup)
	}

	markup, outcome, err = RenderHTML(nil, RenderOptions{}, func(o *Options) { o.DefaultValue = "DEUTDEFF" })
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !outcome.Valid() || !strings.Contains(markup, `value="DEUTDEFF"`) {
		t.Fatalf("expected default value on an unsubmitted field:\n%s", markup)
	}
}

func TestSubmitIntoSubmission(t *testing.T) {
	state := NewSubmission()
	NewComponent().NewField().Submit(" COBADEFFXXX ", state)
	if value, _ := state.Value("bic"); value != "COBADEFFXXX" || state.HasErrors() {
		t.Fatalf("unexpected state: %q %#v", value, state.Errors())
	}
	if !Validate("COBADEFFXXX") || !Validate("cobadeffxxx") || Validate("COBAQQFFXXX") {
		t.Fatalf("unexpected Validate results")
	}
}
