package formly_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formly/pkg/formly"
	"github.com/goliatone/go-formly/pkg/render/template/pongo"
)

func TestChromeTemplateThroughPongo(t *testing.T) {
	files := fstest.MapFS{
		"chrome/control_group.tmpl": {Data: []byte(
			`<div class="{{ class }}">{{ label }}{{ field }}{% if inline %}<em>{{ inline }}</em>{% endif %}<!-- {{ error }} --></div>`,
		)},
	}
	engine, err := pongo.New(pongo.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	cfg := formly.DefaultConfig()
	cfg.DisplayInlineErrors = true
	r := formly.New(formly.WithConfig(cfg), formly.WithChromeTemplates(engine))

	got := r.Text("name", "Name", "", nil)
	want := `<div class="control-group">` +
		`<label for="field_name" class="control-label">Name</label>` +
		`<input type="text" name="name" id="field_name">` +
		`<!--  --></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("chrome markup mismatch (-want +got):\n%s", diff)
	}

	got = r.WithRequest(formly.Request{Errors: errorBag{"name": {"<b>bad</b>"}}}).Text("name", "", "", nil)
	want = `<div class="control-group error">` +
		`<input type="text" name="name" id="field_name">` +
		`<em><b>bad</b></em>` +
		`<!-- &lt;b&gt;bad&lt;/b&gt; --></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("chrome error markup mismatch (-want +got):\n%s", diff)
	}
}
