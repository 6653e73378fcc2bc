package request

import "strings"

// ErrorBag holds validation messages keyed by field name. Form-level messages
// (keys such as "", "form" or "non_field_errors") are kept apart and never
// attached to a control.
type ErrorBag struct {
	fields map[string][]string
	form   []string
}

// NewErrorBag normalises a payload of field messages: keys and messages are
// trimmed, blank and duplicate messages dropped, order preserved.
func NewErrorBag(payload map[string][]string) *ErrorBag {
	bag := &ErrorBag{}
	for key, messages := range payload {
		bag.Add(key, messages...)
	}
	return bag
}

// Add appends messages for the field.
func (b *ErrorBag) Add(field string, messages ...string) {
	key := strings.TrimSpace(field)
	if isFormLevelKey(key) {
		b.form = normalizeMessages(append(b.form, messages...))
		return
	}
	merged := normalizeMessages(append(b.Errors(key), messages...))
	if len(merged) == 0 {
		return
	}
	if b.fields == nil {
		b.fields = make(map[string][]string)
	}
	b.fields[key] = merged
}

// Errors returns the messages recorded for the field.
func (b *ErrorBag) Errors(field string) []string {
	if b == nil || len(b.fields) == 0 {
		return nil
	}
	messages := b.fields[strings.TrimSpace(field)]
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, len(messages))
	copy(out, messages)
	return out
}

// First returns the first message for the field or an empty string.
func (b *ErrorBag) First(field string) string {
	if messages := b.Errors(field); len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// Has reports whether the field has at least one message.
func (b *ErrorBag) Has(field string) bool {
	return b.First(field) != ""
}

// Form returns the form-level messages.
func (b *ErrorBag) Form() []string {
	if b == nil || len(b.form) == 0 {
		return nil
	}
	out := make([]string, len(b.form))
	copy(out, b.form)
	return out
}

// Any reports whether the bag holds any message at all.
func (b *ErrorBag) Any() bool {
	return b != nil && (len(b.fields) > 0 || len(b.form) > 0)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(key) {
	case "", "form", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
