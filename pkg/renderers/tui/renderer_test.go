package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-bic/components/bic"
	"github.com/goliatone/go-formgen-bic/pkg/render"
)

type stubDriver struct {
	inputs       []string
	inputPos     int
	configs      []InputConfig
	infoMessages []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestRenderer_AcceptsValidAnswer(t *testing.T) {
	driver := &stubDriver{inputs: []string{" DEUTDEFF\n"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	field := bic.NewField(bic.WithName("payee_bic"), bic.WithTitle("BIC"), bic.WithDefaultValue("COBADEFF"))
	out, err := r.Render(context.Background(), field, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `{"payee_bic":"DEUTDEFF"}` {
		t.Fatalf("unexpected output: %s", out)
	}
	if driver.configs[0].Message != "BIC" || driver.configs[0].Default != "COBADEFF" {
		t.Fatalf("unexpected prompt config: %#v", driver.configs[0])
	}
	if value, _ := field.Value(); value != "DEUTDEFF" {
		t.Fatalf("expected field to hold the accepted value, got %q", value)
	}
}

func TestRenderer_RepromptsOnInvalidAnswer(t *testing.T) {
	driver := &stubDriver{inputs: []string{"DEU1DEFF", "DEUTDEFF"}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatPrettyText))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := r.Render(context.Background(), bic.NewField(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "bic: DEUTDEFF\n" {
		t.Fatalf("unexpected output: %q", out)
	}
	want := []string{"✗ The bank identifier code 'DEU1DEFF' is not valid."}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_MaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"nope", "still nope"}}
	r, err := New(WithPromptDriver(driver), WithMaxAttempts(2))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = r.Render(context.Background(), bic.NewField(), render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestRenderer_EmptyAnswerIsAccepted(t *testing.T) {
	driver := &stubDriver{inputs: []string{"  "}}
	r, err := New(WithPromptDriver(driver), WithOutputFormat(OutputFormatFormURLEncoded))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := r.Render(context.Background(), bic.NewField(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "bic=" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRenderer_ShowsPrefilledErrorsAndTranslatesTitle(t *testing.T) {
	driver := &stubDriver{inputs: []string{"DEUTDEFF"}}
	r, err := New(WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	opts := render.RenderOptions{
		Locale:     "de",
		Translator: render.Catalog{"de": {"bic.title": "BIC-Code"}},
		Errors:     map[string][]string{"bic": {"Bank is not reachable."}},
	}
	if _, err := r.Render(context.Background(), bic.NewField(bic.WithTitle("BIC")), opts); err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"! Bank is not reachable."}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if driver.configs[0].Message != "BIC-Code" {
		t.Fatalf("expected translated title, got %q", driver.configs[0].Message)
	}
}

func TestRenderer_RepromptErrorsUseRenderLocale(t *testing.T) {
	catalog := render.Catalog{"de": {
		"bic.title":   "BIC-Feld",
		"bic.invalid": "Der BIC '{bic}' ist ungültig.",
	}}
	driver := &stubDriver{inputs: []string{"XXXX", "DEUTDEFF"}}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	field := bic.NewField(bic.WithTitle("BIC"), bic.WithLocale("en"))
	if _, err := r.Render(context.Background(), field, render.RenderOptions{Locale: "de", Translator: catalog}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.configs[0].Message != "BIC-Feld" {
		t.Fatalf("expected translated title, got %q", driver.configs[0].Message)
	}
	want := []string{"✗ Der BIC 'XXXX' ist ungültig."}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_Preconditions(t *testing.T) {
	r, err := New(WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := r.Render(context.Background(), nil, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for nil field")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, bic.NewField(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if r.ContentType() != "application/json" {
		t.Fatalf("unexpected content type %q", r.ContentType())
	}
}
