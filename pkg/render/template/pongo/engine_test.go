package pongo_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formly/pkg/render/template"
	"github.com/goliatone/go-formly/pkg/render/template/pongo"
)

func newEngine(t *testing.T, options ...pongo.Option) *pongo.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl":       {Data: []byte(`Hello {{ name }}!`)},
		"use-global.tmpl":  {Data: []byte(`env={{ settings.env }}`)},
		"chrome/item.tmpl": {Data: []byte(`<li>{{ body|safe }}</li>`)},
	}
	engine, err := pongo.New(append([]pongo.Option{pongo.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var written strings.Builder
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &written)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("unexpected output %q", got)
	}
	if written.String() != got {
		t.Fatalf("writer mismatch: %q vs %q", written.String(), got)
	}
}

func TestEngineRenderTemplateWithExtensionAndSafeFilter(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderTemplate("chrome/item.tmpl", map[string]any{"body": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<li><b>x</b></li>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t, pongo.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineRenderStringFromStruct(t *testing.T) {
	engine := newEngine(t)

	data := struct {
		Name string `json:"name"`
	}{Name: "Grace"}

	got, err := engine.RenderString(`Hi {{ name }}`, data)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Hi Grace" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineMissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}

func TestEngineEmitsHTMLUnescaped(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString(`{{ markup }}|{{ text }}`, map[string]any{
		"markup": template.HTML(`<input name="a">`),
		"text":   `<input name="a">`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<input name="a">|&lt;input name=&quot;a&quot;&gt;`
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
