package formly

import (
	"strings"

	"github.com/goliatone/go-formly/pkg/render/template"
)

const (
	labelClass        = "control-label"
	controlGroupClass = "control-group"
	inlineErrorClass  = "help-inline"

	// ChromeControlGroupTemplate is rendered for every wrapped field when
	// WithChromeTemplates is configured.
	ChromeControlGroupTemplate = "chrome/control_group"
)

// buildLabel renders the label for a field. Required fields get the
// configured prefix, suffix and class; the label points at controlID when set.
func (r *Renderer) buildLabel(name, label, controlID string) string {
	if label == "" {
		return ""
	}

	text := label
	class := labelClass
	if r.required != nil && r.required.IsRequired(name, label) {
		text = r.config.RequiredPrefix + r.required.Text(name, label) + r.config.RequiredSuffix
		class = mergeClass(class, r.config.RequiredClass)
	}

	attrs := Attributes{"class": class}
	if controlID != "" {
		attrs["for"] = controlID
	}
	return r.tags.Label(name, text, attrs)
}

// buildWrapper places a control inside its control group together with the
// label and, when enabled, the first validation message.
func (r *Renderer) buildWrapper(field, name, label, controlID string) string {
	message := r.firstError(name)

	class := controlGroupClass
	if message != "" && r.config.ControlGroupError != "" {
		class += " " + r.config.ControlGroupError
	}

	labelHTML := r.buildLabel(name, label, controlID)

	// The error class follows the raw message; a filter that empties it only
	// drops the inline span.
	inline := ""
	if r.config.DisplayInlineErrors && message != "" {
		inline = message
		if r.messageFilter != nil {
			inline = r.messageFilter(message)
		}
	}

	if out, ok := r.renderChrome(class, labelHTML, field, message, inline); ok {
		return out
	}

	var builder strings.Builder
	builder.Grow(len(field) + len(labelHTML) + 96)
	builder.WriteString(`<div class="`)
	builder.WriteString(class)
	builder.WriteString(`">`)
	builder.WriteString(labelHTML)
	builder.WriteString("<div class=\"controls\">\n")
	builder.WriteString(field)
	if inline != "" {
		builder.WriteString(`<span class="` + inlineErrorClass + `">`)
		builder.WriteString(inline)
		builder.WriteString(`</span>`)
	}
	builder.WriteString(`</div>`)
	builder.WriteString("</div>\n")
	return builder.String()
}

func (r *Renderer) renderChrome(class, label, field, message, inline string) (string, bool) {
	if r.chrome == nil {
		return "", false
	}
	out, err := r.chrome.RenderTemplate(ChromeControlGroupTemplate, map[string]any{
		"class":  class,
		"label":  template.HTML(label),
		"field":  template.HTML(field),
		"error":  message,
		"inline": template.HTML(inline),
	})
	if err != nil {
		return "", false
	}
	return out, true
}

func (r *Renderer) firstError(name string) string {
	if r.request.Errors == nil {
		return ""
	}
	messages := r.request.Errors.Errors(name)
	if len(messages) == 0 {
		return ""
	}
	return messages[0]
}

// mergeClass appends every token of extra missing from existing.
func mergeClass(existing, extra string) string {
	tokens := strings.Fields(existing)
	for _, token := range strings.Fields(extra) {
		if !hasToken(tokens, token) {
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

func hasToken(tokens []string, token string) bool {
	for _, candidate := range tokens {
		if candidate == token {
			return true
		}
	}
	return false
}
