package formly

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// resolveValue picks the value to display: flashed old input wins even when
// empty, then a non-empty explicit value, then the form-level default.
func (r *Renderer) resolveValue(name, value string) string {
	if old, ok := r.oldInput(name); ok {
		return old
	}
	if value != "" {
		return value
	}
	return r.defaults[name]
}

// resolveChecked mirrors resolveValue for checkbox state. Browsers omit
// unchecked boxes from submissions, so a box that is checked by default and
// unchecked by the user cannot be told apart from one never submitted.
func (r *Renderer) resolveChecked(name string, checked bool) bool {
	if old, ok := r.oldInput(name); ok {
		return truthy(old)
	}
	if checked {
		return true
	}
	return truthy(r.defaults[name])
}

func (r *Renderer) oldInput(name string) (string, bool) {
	if r.request.OldInput == nil {
		return "", false
	}
	return r.request.OldInput.Old(name)
}

func truthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "off":
		return false
	default:
		return true
	}
}

// DefaultsFromStruct flattens the top-level scalar fields of a JSON-encodable
// value into form defaults, keyed by their JSON names. Nested objects, arrays
// and nulls are skipped; booleans map to "1" when true.
func DefaultsFromStruct(v any) (map[string]string, error) {
	if v == nil {
		return nil, nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("formly: encode defaults: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return nil, fmt.Errorf("formly: defaults must encode to an object: %w", err)
	}

	out := make(map[string]string, len(fields))
	for key, value := range fields {
		switch typed := value.(type) {
		case string:
			out[key] = typed
		case json.Number:
			out[key] = typed.String()
		case bool:
			if typed {
				out[key] = "1"
			}
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
