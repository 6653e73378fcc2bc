// Package csrf issues and verifies anti-forgery tokens using the double
// submit cookie pattern, and renders them as hidden form fields.
package csrf

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-formly/pkg/tags"
)

const (
	DefaultFieldName  = "csrf_token"
	DefaultCookieName = "formly_csrf"
)

var (
	ErrMissingToken  = errors.New("csrf: token missing")
	ErrTokenMismatch = errors.New("csrf: token mismatch")
)

// NewToken returns a fresh random token.
func NewToken() string {
	return uuid.NewString()
}

// Valid reports whether got matches expected in constant time. Empty tokens
// never match.
func Valid(expected, got string) bool {
	if expected == "" || got == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}

// Field renders a token as a hidden input and satisfies formly.TokenProvider.
type Field struct {
	Name  string
	Value string
}

// Token returns the hidden input markup.
func (f Field) Token() string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		name = DefaultFieldName
	}
	return tags.New().Input("hidden", name, f.Value, nil)
}

// Cookie stores the token in a cookie and expects it back in a form field.
type Cookie struct {
	Name      string
	FieldName string
	Path      string
	Secure    bool
}

func (c Cookie) cookieName() string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	return DefaultCookieName
}

func (c Cookie) fieldName() string {
	if name := strings.TrimSpace(c.FieldName); name != "" {
		return name
	}
	return DefaultFieldName
}

// Issue reuses the token carried by the request cookie or sets a new one on
// the response, and returns the field to embed in the form.
func (c Cookie) Issue(w http.ResponseWriter, r *http.Request) Field {
	if r != nil {
		if existing, err := r.Cookie(c.cookieName()); err == nil && existing.Value != "" {
			return Field{Name: c.fieldName(), Value: existing.Value}
		}
	}

	token := NewToken()
	path := c.Path
	if path == "" {
		path = "/"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.cookieName(),
		Value:    token,
		Path:     path,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return Field{Name: c.fieldName(), Value: token}
}

// Verify checks the submitted form field against the cookie.
func (c Cookie) Verify(r *http.Request) error {
	cookie, err := r.Cookie(c.cookieName())
	if err != nil || cookie.Value == "" {
		return ErrMissingToken
	}
	submitted := r.FormValue(c.fieldName())
	if submitted == "" {
		return ErrMissingToken
	}
	if !Valid(cookie.Value, submitted) {
		return ErrTokenMismatch
	}
	return nil
}
