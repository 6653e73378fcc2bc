package sanitize_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formly/pkg/formly"
	"github.com/goliatone/go-formly/pkg/sanitize"
)

type errorBag map[string][]string

func (e errorBag) Errors(name string) []string {
	return e[name]
}

func TestMessageKeepsInlineFormatting(t *testing.T) {
	got := sanitize.Message(`<strong>Email</strong> is invalid<script>alert(1)</script>`)
	if got != `<strong>Email</strong> is invalid` {
		t.Fatalf("unexpected sanitised message %q", got)
	}
}

func TestMessageLinksGetNoFollow(t *testing.T) {
	got := sanitize.Message(`See <a href="https://example.com/help" onclick="x()">help</a>`)
	if !strings.Contains(got, `rel="nofollow"`) || strings.Contains(got, "onclick") {
		t.Fatalf("unexpected link sanitising %q", got)
	}
}

func TestStrictRemovesMarkup(t *testing.T) {
	if got := sanitize.Strict(`<em>Name</em> required`); got != "Name required" {
		t.Fatalf("unexpected strict output %q", got)
	}
	if got := sanitize.Strict("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestMessageAsRendererFilter(t *testing.T) {
	cfg := formly.DefaultConfig()
	cfg.DisplayInlineErrors = true
	r := formly.New(formly.WithConfig(cfg), formly.WithMessageFilter(sanitize.Message)).
		WithRequest(formly.Request{Errors: errorBag{"name": {`<img src=x onerror=alert(1)>Required`}}})

	got := r.Text("name", "Name", "", nil)
	if !strings.Contains(got, `<span class="help-inline">Required</span>`) {
		t.Fatalf("expected sanitised inline error:\n%s", got)
	}
}
