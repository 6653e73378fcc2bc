package formly

import "strings"

const (
	defaultMethod   = "POST"
	multipartFormat = "multipart/form-data"
)

// Open renders the opening form tag. An empty action falls back to the
// current request URI and an empty method to POST. The configured FormClass
// is added unless the caller already supplied a form-* class. With AutoToken
// enabled the CSRF token field follows the tag.
func (r *Renderer) Open(action, method string, attrs Attributes, https bool) string {
	if action == "" && r.request.URI != nil {
		action = r.request.URI.Current()
	}
	if method == "" {
		method = defaultMethod
	}

	out := attrs.Clone()
	if class := r.formClass(out.Get("class")); class != "" {
		out["class"] = class
	} else {
		delete(out, "class")
	}

	markup := r.tags.Open(action, method, out, https)
	if r.config.AutoToken && r.request.Token != nil {
		markup += r.request.Token.Token()
	}
	return markup
}

// OpenForFiles is Open with a multipart/form-data enctype.
func (r *Renderer) OpenForFiles(action, method string, attrs Attributes, https bool) string {
	out := attrs.Clone()
	out["enctype"] = multipartFormat
	return r.Open(action, method, out, https)
}

// Close renders the closing form tag.
func (r *Renderer) Close() string {
	return r.tags.Close()
}

func (r *Renderer) formClass(class string) string {
	class = strings.TrimSpace(class)
	if r.config.FormClass == "" {
		return class
	}
	if class == "" {
		return r.config.FormClass
	}
	for _, token := range strings.Fields(class) {
		if strings.HasPrefix(token, "form-") {
			return class
		}
	}
	return class + " " + r.config.FormClass
}
