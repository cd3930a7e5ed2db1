package bic

import (
	"net/url"
	"strings"
)

// Autocomplete names the route a client-side suggestion widget queries. The
// field only threads it into the markup; it never calls the route.
type Autocomplete struct {
	Route  string            `json:"route" yaml:"route"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Path returns the route with Params appended as a sorted query string.
func (a *Autocomplete) Path() string {
	if a == nil {
		return ""
	}
	route := strings.TrimSpace(a.Route)
	if route == "" {
		return ""
	}
	if len(a.Params) == 0 {
		return route
	}

	values := url.Values{}
	for key, value := range a.Params {
		if key = strings.TrimSpace(key); key != "" {
			values.Set(key, value)
		}
	}
	query := values.Encode()
	if query == "" {
		return route
	}
	if strings.Contains(route, "?") {
		return route + "&" + query
	}
	return route + "?" + query
}

func (a *Autocomplete) clone() *Autocomplete {
	if a == nil {
		return nil
	}
	return &Autocomplete{Route: a.Route, Params: cloneStrings(a.Params)}
}
