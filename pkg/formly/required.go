package formly

import "strings"

// RequiredPolicy decides whether a field is required and how its label text
// reads once the required decoration is applied.
type RequiredPolicy interface {
	IsRequired(name, label string) bool
	// Text returns the label text without any marker. It is only called for
	// required fields.
	Text(name, label string) string
}

// SuffixMarker flags labels ending with the marker, e.g. "Email.req". An
// empty marker never matches.
type SuffixMarker string

func (m SuffixMarker) IsRequired(_ string, label string) bool {
	return m != "" && strings.HasSuffix(label, string(m))
}

func (m SuffixMarker) Text(_ string, label string) string {
	return strings.TrimSuffix(label, string(m))
}

// RequiredFields flags fields by name and leaves label text untouched.
type RequiredFields map[string]struct{}

// NewRequiredFields builds a RequiredFields set from names.
func NewRequiredFields(names ...string) RequiredFields {
	set := make(RequiredFields, len(names))
	for _, name := range names {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			set[trimmed] = struct{}{}
		}
	}
	return set
}

func (f RequiredFields) IsRequired(name, _ string) bool {
	_, ok := f[name]
	return ok
}

func (f RequiredFields) Text(_ string, label string) string {
	return label
}
