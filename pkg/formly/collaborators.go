package formly

import "github.com/goliatone/go-formly/pkg/tags"

// Attributes maps attribute names to values. Renderers clone the caller's map
// before injecting computed attributes.
type Attributes = tags.Attributes

// SelectOption describes an option (or option group) of a select control.
type SelectOption = tags.SelectOption

// TagBuilder emits the individual HTML tags the renderer composes.
// *tags.Builder is the default implementation.
type TagBuilder interface {
	Open(action, method string, attrs Attributes, https bool) string
	Close() string
	Input(kind, name, value string, attrs Attributes) string
	Text(name, value string, attrs Attributes) string
	Textarea(name, value string, attrs Attributes) string
	Password(name string, attrs Attributes) string
	Select(name string, options []SelectOption, selected string, attrs Attributes) string
	Checkbox(name, value string, checked bool, attrs Attributes) string
	File(name string, attrs Attributes) string
	Button(value string, attrs Attributes) string
	Label(name, text string, attrs Attributes) string
}

// OldInput exposes values flashed from a previous, failed submission. The
// boolean reports whether the field was submitted at all; an empty string
// with ok=true is a real value.
type OldInput interface {
	Old(name string) (string, bool)
}

// ErrorSource exposes validation messages per field in display order.
type ErrorSource interface {
	Errors(name string) []string
}

// TokenProvider returns the markup of a hidden CSRF token field.
type TokenProvider interface {
	Token() string
}

// URIResolver returns the URI of the current request.
type URIResolver interface {
	Current() string
}

// Request groups the request-scoped collaborators. Nil members are treated as
// empty sources.
type Request struct {
	OldInput OldInput
	Errors   ErrorSource
	Token    TokenProvider
	URI      URIResolver
}

// merge returns r with every non-nil member of other applied.
func (r Request) merge(other Request) Request {
	if other.OldInput != nil {
		r.OldInput = other.OldInput
	}
	if other.Errors != nil {
		r.Errors = other.Errors
	}
	if other.Token != nil {
		r.Token = other.Token
	}
	if other.URI != nil {
		r.URI = other.URI
	}
	return r
}
