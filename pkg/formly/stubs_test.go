package formly_test

import (
	"errors"
	"io"

	theme "github.com/goliatone/go-theme"
)

type oldInput map[string]string

func (o oldInput) Old(name string) (string, bool) {
	value, ok := o[name]
	return value, ok
}

type errorBag map[string][]string

func (e errorBag) Errors(name string) []string {
	return e[name]
}

type staticToken string

func (s staticToken) Token() string {
	return string(s)
}

type staticURI string

func (s staticURI) Current() string {
	return string(s)
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     int
}

func (s *stubThemeSelector) Select(_, _ string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, s.err
}

type stubChrome struct {
	output string
	err    error
	data   map[string]any
}

func (s *stubChrome) RenderTemplate(_ string, data any, _ ...io.Writer) (string, error) {
	if m, ok := data.(map[string]any); ok {
		s.data = m
	}
	return s.output, s.err
}

func (s *stubChrome) RenderString(string, any, ...io.Writer) (string, error) {
	return "", errors.New("not implemented")
}
