package tags

import (
	"html"
	"strings"
)

const (
	defaultCharset     = "UTF-8"
	defaultMethodField = "_method"
)

// Option configures a Builder.
type Option func(*Builder)

// WithCharset overrides the accept-charset emitted on <form> tags. An empty
// value removes the attribute.
func WithCharset(charset string) Option {
	return func(b *Builder) {
		b.charset = strings.TrimSpace(charset)
	}
}

// WithMethodField overrides the hidden input name used to spoof PUT, PATCH
// and DELETE submissions.
func WithMethodField(name string) Option {
	return func(b *Builder) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			b.methodField = trimmed
		}
	}
}

// Builder emits individual form tags. Attribute values are always escaped and
// emitted in a stable order so identical inputs produce identical markup.
type Builder struct {
	charset     string
	methodField string
}

// New constructs a Builder applying the provided options.
func New(options ...Option) *Builder {
	b := &Builder{
		charset:     defaultCharset,
		methodField: defaultMethodField,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Open emits the opening <form> tag. Browsers only submit GET and POST, so
// other verbs are sent as POST with a hidden method field appended.
func (b *Builder) Open(action, method string, attrs Attributes, https bool) string {
	verb := strings.ToUpper(strings.TrimSpace(method))
	if verb == "" {
		verb = "POST"
	}
	formMethod := verb
	if verb != "GET" && verb != "POST" {
		formMethod = "POST"
	}
	if https && strings.HasPrefix(action, "http://") {
		action = "https://" + strings.TrimPrefix(action, "http://")
	}

	var builder strings.Builder
	builder.WriteString("<form")
	writeAttribute(&builder, "method", formMethod)
	writeAttribute(&builder, "action", action)
	if b.charset != "" && !attrs.Has("accept-charset") {
		writeAttribute(&builder, "accept-charset", b.charset)
	}
	writeAttributes(&builder, attrs, "method", "action")
	builder.WriteString(">")

	if formMethod != verb {
		builder.WriteString(b.Input("hidden", b.methodField, verb, nil))
	}
	return builder.String()
}

// Close emits the closing </form> tag.
func (b *Builder) Close() string {
	return "</form>"
}

// Input emits an <input> of the given type. The value attribute is omitted
// when value is empty.
func (b *Builder) Input(kind, name, value string, attrs Attributes) string {
	var builder strings.Builder
	builder.WriteString("<input")
	writeAttribute(&builder, "type", kind)
	writeAttribute(&builder, "name", name)
	if value != "" {
		writeAttribute(&builder, "value", value)
	}
	writeAttributes(&builder, attrs, "type", "name", "value")
	builder.WriteString(">")
	return builder.String()
}

func (b *Builder) Text(name, value string, attrs Attributes) string {
	return b.Input("text", name, value, attrs)
}

func (b *Builder) Password(name string, attrs Attributes) string {
	return b.Input("password", name, "", attrs)
}

func (b *Builder) File(name string, attrs Attributes) string {
	return b.Input("file", name, "", attrs)
}

// Checkbox emits a checkbox input carrying value, checked when requested.
func (b *Builder) Checkbox(name, value string, checked bool, attrs Attributes) string {
	var builder strings.Builder
	builder.WriteString("<input")
	writeAttribute(&builder, "type", "checkbox")
	writeAttribute(&builder, "name", name)
	writeAttribute(&builder, "value", value)
	if checked {
		writeAttribute(&builder, "checked", "checked")
	}
	writeAttributes(&builder, attrs, "type", "name", "value", "checked")
	builder.WriteString(">")
	return builder.String()
}

// Textarea emits a <textarea> with the escaped value as its body.
func (b *Builder) Textarea(name, value string, attrs Attributes) string {
	var builder strings.Builder
	builder.WriteString("<textarea")
	writeAttribute(&builder, "name", name)
	writeAttributes(&builder, attrs, "name")
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(value))
	builder.WriteString("</textarea>")
	return builder.String()
}

// Select emits a <select> with its options. Options carrying children are
// rendered as <optgroup> elements.
func (b *Builder) Select(name string, options []SelectOption, selected string, attrs Attributes) string {
	var builder strings.Builder
	builder.WriteString("<select")
	writeAttribute(&builder, "name", name)
	writeAttributes(&builder, attrs, "name")
	builder.WriteString(">")
	writeOptions(&builder, options, selected)
	builder.WriteString("</select>")
	return builder.String()
}

func writeOptions(builder *strings.Builder, options []SelectOption, selected string) {
	for _, option := range options {
		if len(option.Options) > 0 {
			builder.WriteString("<optgroup")
			writeAttribute(builder, "label", option.Label)
			builder.WriteString(">")
			writeOptions(builder, option.Options, selected)
			builder.WriteString("</optgroup>")
			continue
		}
		builder.WriteString("<option")
		writeAttribute(builder, "value", option.Value)
		if option.Value == selected {
			writeAttribute(builder, "selected", "selected")
		}
		builder.WriteString(">")
		label := option.Label
		if label == "" {
			label = option.Value
		}
		builder.WriteString(html.EscapeString(label))
		builder.WriteString("</option>")
	}
}

// Button emits a <button> whose body is the escaped value. The type attribute
// is written first when present.
func (b *Builder) Button(value string, attrs Attributes) string {
	var builder strings.Builder
	builder.WriteString("<button")
	if kind := attrs.Get("type"); kind != "" {
		writeAttribute(&builder, "type", kind)
	}
	writeAttributes(&builder, attrs, "type")
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(value))
	builder.WriteString("</button>")
	return builder.String()
}

// Label emits a <label>. The for attribute defaults to the field name unless
// attrs supplies one.
func (b *Builder) Label(name, text string, attrs Attributes) string {
	target := name
	if attrs.Has("for") {
		target = attrs.Get("for")
	}

	var builder strings.Builder
	builder.WriteString("<label")
	writeAttribute(&builder, "for", target)
	writeAttributes(&builder, attrs, "for")
	builder.WriteString(">")
	builder.WriteString(html.EscapeString(text))
	builder.WriteString("</label>")
	return builder.String()
}
