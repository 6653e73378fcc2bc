// Package formly renders Bootstrap-style form fragments on top of a tag
// builder. Each field builder resolves the value to display (flashed old input
// first, then the explicit value, then the form-level default), derives an id
// from the field name, and wraps the control in a control-group container with
// its label and optional inline error. Submit, reset and hidden controls are
// returned without the wrapper.
//
// Request-scoped collaborators (old input, validation errors, CSRF token and
// current URI) are injected through Request so a Renderer stays immutable and
// can be shared across goroutines:
//
//	base := formly.New(formly.WithDefaults(map[string]string{"country": "es"}))
//	form := base.WithRequest(request.Bind(r, errs, token))
//	html := form.Open("", "POST", nil, false) +
//		form.Text("name", "Name.req", "", nil) +
//		form.Actions(form.SubmitPrimary("Save", nil)) +
//		form.Close()
package formly
