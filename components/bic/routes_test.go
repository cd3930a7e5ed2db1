package bic

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMountPath_JoinsBasePath(t *testing.T) {
	if got := MountPath("/admin"); got != "/admin/api/bic/validate" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("admin"); got != "/admin/api/bic/validate" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath("/admin/", WithRoutePath("api/swift")); got != "/admin/api/swift" {
		t.Fatalf("unexpected mount path: %q", got)
	}
	if got := MountPath(""); got != DefaultRoutePath {
		t.Fatalf("unexpected mount path: %q", got)
	}
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/admin")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/admin/api/bic/validate" {
		t.Fatalf("unexpected registered pattern: %q", pattern)
	}

	req := httptest.NewRequest(http.MethodGet, pattern+"?value=DEUTDEFF", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestRegisterRoutes_MissingMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/admin"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}

func TestComponent_NewFieldIsFresh(t *testing.T) {
	c := New(WithName("payee_bic"), WithChecker(&stubChecker{}))

	first := c.NewField()
	first.Normalize("INVALID1")
	first.Validate()

	second := c.NewField()
	if second.State() != StateUnsubmitted {
		t.Fatalf("expected a fresh field, got %s", second.State())
	}
	if !second.Outcome().Valid() {
		t.Fatalf("outcome leaked between fields")
	}
	if second.Name() != "payee_bic" {
		t.Fatalf("expected component options, got name %q", second.Name())
	}

	override := c.NewField(WithName("other"))
	if override.Name() != "other" || c.Options().Name != "payee_bic" {
		t.Fatalf("field overrides must not leak into the component")
	}
}

func TestComponent_RegisterRoutes(t *testing.T) {
	mux := http.NewServeMux()
	c := New(WithRoutePath("/bic"))
	pattern, err := c.RegisterRoutes(mux, "/forms")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pattern != "/forms/bic" {
		t.Fatalf("unexpected pattern %q", pattern)
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forms/bic?value=DEUTDEFF", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
