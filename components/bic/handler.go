package bic

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Result is the JSON view of one validation.
type Result struct {
	Value     string `json:"value"`
	Submitted bool   `json:"submitted"`
	Valid     bool   `json:"valid"`
	Message   string `json:"message,omitempty"`
}

type resultResponse struct {
	Data Result `json:"data"`
}

const maxBodyBytes = 64 << 10

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions validates a single value per request. GET and HEAD read
// it from the query string; POST reads a form body or a JSON object keyed by
// ValueParam. Each request gets its own Field.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodPost:
		default:
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead+", "+http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		input, locale, err := readInput(r, opts)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		fieldOpts := opts
		if locale != "" {
			fieldOpts.Locale = locale
		}
		field := newField(fieldOpts)
		field.Normalize(input)
		outcome := field.Validate()
		value, submitted := field.Value()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		_ = enc.Encode(resultResponse{Data: Result{
			Value:     value,
			Submitted: submitted,
			Valid:     outcome.Valid(),
			Message:   outcome.Message(),
		}})
	})
}

// readInput returns the submitted value as it arrived: absent when the
// parameter is missing, a []string when repeated, the decoded JSON value for
// JSON bodies.
func readInput(r *http.Request, opts Options) (any, string, error) {
	if r.Method == http.MethodPost && isJSON(r.Header.Get("Content-Type")) {
		var body map[string]any
		dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
		dec.UseNumber()
		if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return nil, "", err
		}
		locale, _ := body[opts.LocaleParam].(string)
		if locale == "" {
			locale = r.URL.Query().Get(opts.LocaleParam)
		}
		input, ok := body[opts.ValueParam]
		if !ok {
			return Absent, locale, nil
		}
		return input, locale, nil
	}

	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	}
	if err := r.ParseForm(); err != nil {
		return nil, "", err
	}
	locale := r.Form.Get(opts.LocaleParam)
	values, ok := r.Form[opts.ValueParam]
	switch {
	case !ok:
		return Absent, locale, nil
	case len(values) == 1:
		return values[0], locale, nil
	default:
		return values, locale, nil
	}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}
