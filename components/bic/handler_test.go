package bic

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formgen-bic/pkg/render"
)

type handlerResponse struct {
	Data Result `json:"data"`
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, Result) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		return rec, Result{}
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	var payload handlerResponse
	if req.Method != http.MethodHead {
		if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return rec, payload.Data
}

func TestHandler_QueryValid(t *testing.T) {
	_, got := serve(t, NewHandler(), httptest.NewRequest(http.MethodGet, "/api/bic/validate?value=DEUTDEFF", nil))
	want := Result{Value: "DEUTDEFF", Submitted: true, Valid: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_QueryInvalidIsTrimmed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/bic/validate?value="+url.QueryEscape(" DEU1DEFF\r\n"), nil)
	_, got := serve(t, NewHandler(), req)
	want := Result{
		Value:     "DEU1DEFF",
		Submitted: true,
		Valid:     false,
		Message:   "The bank identifier code 'DEU1DEFF' is not valid.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_MissingValueIsUnsubmitted(t *testing.T) {
	_, got := serve(t, NewHandler(), httptest.NewRequest(http.MethodGet, "/api/bic/validate", nil))
	if diff := cmp.Diff(Result{Valid: true}, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_RepeatedParamCoercesToEmpty(t *testing.T) {
	_, got := serve(t, NewHandler(), httptest.NewRequest(http.MethodGet, "/api/bic/validate?value=DEUTDEFF&value=COBADEFF", nil))
	if diff := cmp.Diff(Result{Submitted: true, Valid: true}, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}

	strict := NewHandler(WithStrictInput(true))
	_, got = serve(t, strict, httptest.NewRequest(http.MethodGet, "/api/bic/validate?value=DEUTDEFF&value=COBADEFF", nil))
	if got.Valid || got.Message != "The bank identifier code must be a single line of text." {
		t.Fatalf("expected strict handler to reject repeated values, got %#v", got)
	}
}

func TestHandler_PostForm(t *testing.T) {
	body := strings.NewReader(url.Values{"swift": {"COBADEFFXXX"}}.Encode())
	req := httptest.NewRequest(http.MethodPost, "/api/bic/validate", body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, got := serve(t, NewHandler(WithValueParam("swift")), req)
	want := Result{Value: "COBADEFFXXX", Submitted: true, Valid: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_PostJSON(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Result
	}{
		{name: "string", body: `{"value":"DEUTDEFF"}`, want: Result{Value: "DEUTDEFF", Submitted: true, Valid: true}},
		{name: "array", body: `{"value":["DEUTDEFF"]}`, want: Result{Submitted: true, Valid: true}},
		{name: "null", body: `{"value":null}`, want: Result{Valid: true}},
		{name: "missing", body: `{"other":"x"}`, want: Result{Valid: true}},
		{name: "empty body", body: ``, want: Result{Valid: true}},
		{
			name: "number",
			body: `{"value":12345678}`,
			want: Result{
				Value:     "12345678",
				Submitted: true,
				Message:   "The bank identifier code '12345678' is not valid.",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/bic/validate", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			_, got := serve(t, NewHandler(), req)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandler_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/bic/validate", strings.NewReader(`{"value":`))
	req.Header.Set("Content-Type", "application/json")
	rec, _ := serve(t, NewHandler(), req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_LocaleParam(t *testing.T) {
	catalog := render.Catalog{"de": {MessageKeyInvalid: "Der BIC '{bic}' ist ungültig."}}
	h := NewHandler(WithTranslator(catalog), WithLocale("en"))

	_, got := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/bic/validate?value=XXXX&locale=de", nil))
	if got.Message != "Der BIC 'XXXX' ist ungültig." {
		t.Fatalf("unexpected localized message: %q", got.Message)
	}

	_, got = serve(t, h, httptest.NewRequest(http.MethodGet, "/api/bic/validate?value=XXXX", nil))
	if got.Message != "The bank identifier code 'XXXX' is not valid." {
		t.Fatalf("unexpected default message: %q", got.Message)
	}
}

func TestHandler_Guard(t *testing.T) {
	h := NewHandler(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no session")}
	}))
	rec, _ := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/bic/validate?value=DEUTDEFF", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	h = NewHandler(WithGuard(func(*http.Request) error { return errors.New("nope") }))
	rec, _ = serve(t, h, httptest.NewRequest(http.MethodGet, "/api/bic/validate?value=DEUTDEFF", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	rec, _ := serve(t, NewHandler(), httptest.NewRequest(http.MethodPut, "/api/bic/validate", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != "GET, HEAD, POST" {
		t.Fatalf("unexpected Allow header: %q", allow)
	}
}

func TestHandler_Head(t *testing.T) {
	rec, _ := serve(t, NewHandler(), httptest.NewRequest(http.MethodHead, "/api/bic/validate?value=DEUTDEFF", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}
