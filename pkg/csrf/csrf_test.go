package csrf_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goliatone/go-formly/pkg/csrf"
)

func TestFieldToken(t *testing.T) {
	got := csrf.Field{Value: "abc"}.Token()
	want := `<input type="hidden" name="csrf_token" value="abc">`
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestNewTokenIsUnique(t *testing.T) {
	a, b := csrf.NewToken(), csrf.NewToken()
	if a == "" || a == b {
		t.Fatalf("expected distinct tokens, got %q and %q", a, b)
	}
}

func TestValid(t *testing.T) {
	if !csrf.Valid("abc", "abc") {
		t.Fatal("equal tokens must be valid")
	}
	if csrf.Valid("abc", "abd") || csrf.Valid("", "") {
		t.Fatal("mismatched or empty tokens must be invalid")
	}
}

func TestCookieIssueAndVerify(t *testing.T) {
	store := csrf.Cookie{}

	rec := httptest.NewRecorder()
	field := store.Issue(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != field.Value || cookies[0].Name != csrf.DefaultCookieName {
		t.Fatalf("expected issued cookie matching field, got %+v", cookies)
	}

	reuse := httptest.NewRequest(http.MethodGet, "/", nil)
	reuse.AddCookie(cookies[0])
	second := httptest.NewRecorder()
	if again := store.Issue(second, reuse); again.Value != field.Value {
		t.Fatalf("expected token reuse, got %q", again.Value)
	}
	if len(second.Result().Cookies()) != 0 {
		t.Fatal("existing cookie must not be reissued")
	}

	post := func(value string) *http.Request {
		body := url.Values{csrf.DefaultFieldName: {value}}.Encode()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		r.AddCookie(cookies[0])
		return r
	}

	if err := store.Verify(post(field.Value)); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := store.Verify(post("forged")); !errors.Is(err, csrf.ErrTokenMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if err := store.Verify(post("")); !errors.Is(err, csrf.ErrMissingToken) {
		t.Fatalf("expected missing token, got %v", err)
	}

	noCookie := httptest.NewRequest(http.MethodPost, "/", nil)
	if err := store.Verify(noCookie); !errors.Is(err, csrf.ErrMissingToken) {
		t.Fatalf("expected missing token without cookie, got %v", err)
	}
}
