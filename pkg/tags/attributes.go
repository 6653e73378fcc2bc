package tags

import (
	"html"
	"sort"
	"strings"
)

// Attributes maps HTML attribute names to their (unescaped) values.
type Attributes map[string]string

// Clone returns a copy of the attributes. A nil receiver yields an empty,
// writable map so callers can inject values without touching the original.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a)+2)
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Has reports whether the attribute key is present, even with an empty value.
func (a Attributes) Has(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a[key]
	return ok
}

// Get returns the attribute value or an empty string.
func (a Attributes) Get(key string) string {
	if a == nil {
		return ""
	}
	return a[key]
}

// SelectOption is a single <option>, or an <optgroup> when Options is set.
type SelectOption struct {
	Value   string         `json:"value" yaml:"value"`
	Label   string         `json:"label" yaml:"label"`
	Options []SelectOption `json:"options,omitempty" yaml:"options,omitempty"`
}

// writeAttributes emits ` key="value"` pairs sorted by key, skipping the
// provided names. Keys are trimmed; empty keys are dropped.
func writeAttributes(builder *strings.Builder, attrs Attributes, skip ...string) {
	if len(attrs) == 0 {
		return
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		name := strings.TrimSpace(key)
		if name == "" || contains(skip, name) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		writeAttribute(builder, strings.TrimSpace(key), attrs[key])
	}
}

func writeAttribute(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(html.EscapeString(name))
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteByte('"')
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
