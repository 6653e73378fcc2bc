package main

import (
	"html"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/goliatone/go-formly/pkg/csrf"
	"github.com/goliatone/go-formly/pkg/formly"
	"github.com/goliatone/go-formly/pkg/formspec"
	"github.com/goliatone/go-formly/pkg/request"
	"github.com/goliatone/go-formly/pkg/sanitize"
)

const signupForm = `
action: /signup
fields:
  - name: name
    label: Name.req
  - kind: email
    name: email
    label: Email.req
    attributes:
      placeholder: you@example.com
  - kind: password
    name: password
    label: Password.req
  - kind: select
    name: plan
    label: Plan
    options:
      - value: free
        label: Free
      - value: team
        label: Team
  - kind: checkbox
    name: terms
    label: I accept the terms.req
buttons:
  - value: Create account
    variant: primary
  - kind: reset
    value: Clear
defaults:
  plan: free
`

const minPasswordLength = 8

type server struct {
	renderer *formly.Renderer
	form     formspec.Document
	csrf     csrf.Cookie
}

func newServer(renderer *formly.Renderer) (*server, error) {
	doc, err := formspec.Parse([]byte(signupForm))
	if err != nil {
		return nil, err
	}
	return &server{
		renderer: renderer.ReplaceDefaults(mergeDefaults(renderer.Defaults(), doc.Defaults)),
		form:     doc,
	}, nil
}

func (s *server) routes() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
	}).Methods(http.MethodGet)
	router.HandleFunc("/signup", s.showSignup).Methods(http.MethodGet)
	router.HandleFunc("/signup", s.submitSignup).Methods(http.MethodPost)
	router.HandleFunc("/signup/done", s.signupDone).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return router
}

func (s *server) showSignup(w http.ResponseWriter, r *http.Request) {
	token := s.csrf.Issue(w, r)
	s.writePage(w, http.StatusOK, request.Bind(r, nil, token), nil)
}

func (s *server) submitSignup(w http.ResponseWriter, r *http.Request) {
	if err := s.csrf.Verify(r); err != nil {
		http.Error(w, "invalid form token", http.StatusForbidden)
		return
	}

	errs := validateSignup(r)
	if !errs.Any() {
		http.Redirect(w, r, "/signup/done", http.StatusSeeOther)
		return
	}

	token := s.csrf.Issue(w, r)
	req := request.Bind(r, errs, token, "password", token.Name)
	s.writePage(w, http.StatusUnprocessableEntity, req, errs.Form())
}

func (s *server) signupDone(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte("<!doctype html>\n<p>Account created.</p>\n"))
}

func (s *server) writePage(w http.ResponseWriter, status int, req formly.Request, formErrors []string) {
	var page strings.Builder
	page.WriteString("<!doctype html>\n<html><head><title>Sign up</title></head><body>\n")
	for _, message := range formErrors {
		page.WriteString(`<div class="alert alert-error">`)
		page.WriteString(sanitize.Message(message))
		page.WriteString("</div>\n")
	}
	page.WriteString(formspec.Render(s.renderer.WithRequest(req), s.form))
	page.WriteString("</body></html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(page.String())); err != nil {
		log.Printf("write response: %v", err)
	}
}

func validateSignup(r *http.Request) *request.ErrorBag {
	errs := request.NewErrorBag(nil)
	if strings.TrimSpace(r.PostFormValue("name")) == "" {
		errs.Add("name", "Name is required.")
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	switch {
	case email == "":
		errs.Add("email", "Email is required.")
	case !strings.Contains(email, "@"):
		errs.Add("email", "<strong>"+html.EscapeString(email)+"</strong> is not a valid email address.")
	}
	if len(r.PostFormValue("password")) < minPasswordLength {
		errs.Add("password", "Password must be at least 8 characters.")
	}
	if r.PostFormValue("terms") == "" {
		errs.Add("terms", "You must accept the terms.")
	}
	if errs.Any() {
		errs.Add("form", "Please correct the highlighted fields.")
	}
	return errs
}

func mergeDefaults(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for key, value := range extra {
		out[key] = value
	}
	for key, value := range base {
		out[key] = value
	}
	return out
}
