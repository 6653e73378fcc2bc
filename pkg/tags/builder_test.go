package tags_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formly/pkg/tags"
)

func TestBuilderOpen(t *testing.T) {
	builder := tags.New()

	cases := []struct {
		name   string
		action string
		method string
		attrs  tags.Attributes
		https  bool
		want   string
	}{
		{
			name:   "post with class",
			action: "/users",
			method: "post",
			attrs:  tags.Attributes{"class": "form-horizontal"},
			want:   `<form method="POST" action="/users" accept-charset="UTF-8" class="form-horizontal">`,
		},
		{
			name:   "spoofed put",
			action: "/users/1",
			method: "PUT",
			want:   `<form method="POST" action="/users/1" accept-charset="UTF-8"><input type="hidden" name="_method" value="PUT">`,
		},
		{
			name:   "https upgrade",
			action: "http://example.com/login",
			method: "GET",
			https:  true,
			want:   `<form method="GET" action="https://example.com/login" accept-charset="UTF-8">`,
		},
		{
			name:   "empty method defaults to post",
			action: "/",
			attrs:  tags.Attributes{"enctype": "multipart/form-data", "action": "/ignored"},
			want:   `<form method="POST" action="/" accept-charset="UTF-8" enctype="multipart/form-data">`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := builder.Open(tc.action, tc.method, tc.attrs, tc.https)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("open mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuilderOpenCustomOptions(t *testing.T) {
	builder := tags.New(tags.WithCharset(""), tags.WithMethodField("verb"))
	got := builder.Open("/items", "DELETE", nil, false)
	want := `<form method="POST" action="/items"><input type="hidden" name="verb" value="DELETE">`
	if got != want {
		t.Fatalf("unexpected open tag:\nwant %s\ngot  %s", want, got)
	}
}

func TestBuilderControls(t *testing.T) {
	builder := tags.New()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "text escapes value",
			got:  builder.Text("title", "a < b & c", tags.Attributes{"id": "field_title"}),
			want: `<input type="text" name="title" value="a &lt; b &amp; c" id="field_title">`,
		},
		{
			name: "text without value",
			got:  builder.Text("title", "", nil),
			want: `<input type="text" name="title">`,
		},
		{
			name: "password never carries value",
			got:  builder.Password("secret", tags.Attributes{"value": "leak"}),
			want: `<input type="password" name="secret">`,
		},
		{
			name: "file",
			got:  builder.File("avatar", tags.Attributes{"accept": "image/*"}),
			want: `<input type="file" name="avatar" accept="image/*">`,
		},
		{
			name: "checkbox checked",
			got:  builder.Checkbox("terms", "1", true, tags.Attributes{"id": "field_terms"}),
			want: `<input type="checkbox" name="terms" value="1" checked="checked" id="field_terms">`,
		},
		{
			name: "checkbox unchecked",
			got:  builder.Checkbox("terms", "yes", false, nil),
			want: `<input type="checkbox" name="terms" value="yes">`,
		},
		{
			name: "textarea body",
			got:  builder.Textarea("bio", "<b>hi</b>", tags.Attributes{"rows": "4"}),
			want: `<textarea name="bio" rows="4">&lt;b&gt;hi&lt;/b&gt;</textarea>`,
		},
		{
			name: "button",
			got:  builder.Button("Save", tags.Attributes{"type": "submit", "class": "btn"}),
			want: `<button type="submit" class="btn">Save</button>`,
		},
		{
			name: "label defaults for to name",
			got:  builder.Label("email", "Email", tags.Attributes{"class": "control-label"}),
			want: `<label for="email" class="control-label">Email</label>`,
		},
		{
			name: "label honours explicit for",
			got:  builder.Label("email", "Email", tags.Attributes{"for": "field_email"}),
			want: `<label for="field_email">Email</label>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.got); diff != "" {
				t.Fatalf("markup mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuilderSelect(t *testing.T) {
	builder := tags.New()
	options := []tags.SelectOption{
		{Value: "", Label: "Choose"},
		{Label: "Europe", Options: []tags.SelectOption{
			{Value: "es", Label: "Spain"},
			{Value: "fr", Label: "France"},
		}},
		{Value: "us"},
	}

	got := builder.Select("country", options, "fr", tags.Attributes{"id": "field_country"})
	want := `<select name="country" id="field_country">` +
		`<option value="">Choose</option>` +
		`<optgroup label="Europe"><option value="es">Spain</option><option value="fr" selected="selected">France</option></optgroup>` +
		`<option value="us">us</option>` +
		`</select>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("select mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributesClone(t *testing.T) {
	var nilAttrs tags.Attributes
	clone := nilAttrs.Clone()
	clone["id"] = "x"
	if nilAttrs.Has("id") {
		t.Fatal("clone of nil attributes must not alias")
	}

	original := tags.Attributes{"class": "a"}
	copied := original.Clone()
	copied["class"] = "b"
	if original.Get("class") != "a" {
		t.Fatalf("expected original untouched, got %q", original.Get("class"))
	}
}
