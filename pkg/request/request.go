package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/goliatone/go-formly/pkg/formly"
)

// Input exposes submitted form values as old input.
type Input map[string][]string

// FromValues copies values into an Input, dropping the excluded field names
// (typically passwords).
func FromValues(values url.Values, except ...string) Input {
	if len(values) == 0 {
		return nil
	}
	skip := make(map[string]struct{}, len(except))
	for _, name := range except {
		skip[strings.TrimSpace(name)] = struct{}{}
	}

	out := make(Input, len(values))
	for name, entries := range values {
		if _, excluded := skip[name]; excluded {
			continue
		}
		copied := make([]string, len(entries))
		copy(copied, entries)
		out[name] = copied
	}
	return out
}

// Old returns the first submitted value. Fields submitted with no value at
// all report ok=false.
func (in Input) Old(name string) (string, bool) {
	entries, ok := in[name]
	if !ok || len(entries) == 0 {
		return "", false
	}
	return entries[0], true
}

// URIFunc adapts a function to formly.URIResolver.
type URIFunc func() string

func (f URIFunc) Current() string {
	if f == nil {
		return ""
	}
	return f()
}

// CurrentURI resolves to the request path and query.
func CurrentURI(r *http.Request) URIFunc {
	return func() string {
		if r == nil || r.URL == nil {
			return ""
		}
		return r.URL.RequestURI()
	}
}

// Bind collects the request-scoped collaborators for a renderer. Submitted
// body values become old input for POST, PUT and PATCH requests, minus the
// excluded fields. A nil bag or token leaves those collaborators unset.
func Bind(r *http.Request, errs *ErrorBag, token formly.TokenProvider, except ...string) formly.Request {
	req := formly.Request{URI: CurrentURI(r)}
	if errs != nil {
		req.Errors = errs
	}
	if token != nil {
		req.Token = token
	}
	if r == nil {
		return req
	}

	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		if err := parseBody(r); err == nil {
			if input := FromValues(r.PostForm, except...); input != nil {
				req.OldInput = input
			}
		}
	}
	return req
}

const maxMultipartMemory = 32 << 20

func parseBody(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(maxMultipartMemory)
	}
	return r.ParseForm()
}
