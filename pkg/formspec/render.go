package formspec

import (
	"strings"

	"github.com/goliatone/go-formly/pkg/formly"
)

// Render emits the whole document: envelope, fields in order, the actions
// block when buttons are declared, and the closing tag.
func Render(r *formly.Renderer, doc Document) string {
	var builder strings.Builder

	attrs := formly.Attributes(doc.Attributes)
	if doc.Files {
		builder.WriteString(r.OpenForFiles(doc.Action, doc.Method, attrs, doc.HTTPS))
	} else {
		builder.WriteString(r.Open(doc.Action, doc.Method, attrs, doc.HTTPS))
	}
	builder.WriteByte('\n')

	for _, field := range doc.Fields {
		builder.WriteString(RenderField(r, field))
	}

	if len(doc.Buttons) > 0 {
		buttons := make([]string, 0, len(doc.Buttons))
		for _, button := range doc.Buttons {
			buttons = append(buttons, RenderButton(r, button))
		}
		builder.WriteString(r.Actions(buttons...))
		builder.WriteByte('\n')
	}

	builder.WriteString(r.Close())
	builder.WriteByte('\n')
	return builder.String()
}

// RenderField dispatches a field to the matching renderer method.
func RenderField(r *formly.Renderer, field Field) string {
	attrs := formly.Attributes(field.Attributes)
	switch kind := field.ResolvedKind(); kind {
	case KindText:
		return r.Text(field.Name, field.Label, field.Value, attrs)
	case KindTextarea:
		return r.Textarea(field.Name, field.Label, field.Value, attrs)
	case KindPassword:
		return r.Password(field.Name, field.Label, attrs)
	case KindSelect:
		return r.Select(field.Name, field.Label, field.Options, field.Value, attrs)
	case KindCheckbox:
		return r.Checkbox(field.Name, field.Label, field.Value, field.Checked, attrs)
	case KindFile:
		return r.File(field.Name, field.Label, attrs)
	case KindHidden:
		return r.Hidden(field.Name, field.Value, attrs) + "\n"
	default:
		return r.Input(kind, field.Name, field.Label, field.Value, attrs)
	}
}

// RenderButton renders a submit or reset button.
func RenderButton(r *formly.Renderer, button Button) string {
	attrs := formly.Attributes(button.Attributes)
	if button.kind() == "reset" {
		return r.Reset(button.Value, attrs)
	}
	return r.Submit(button.Value, attrs, button.Variant)
}
