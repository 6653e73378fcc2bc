package formly

const defaultTextareaRows = "4"

// resolveAttributes clones attrs and injects IDPrefix+name as the id unless
// ids are disabled or the caller supplied one.
func (r *Renderer) resolveAttributes(name string, attrs Attributes) Attributes {
	out := attrs.Clone()
	if !r.config.NameAsID || out.Has("id") {
		return out
	}
	out["id"] = r.config.IDPrefix + name
	return out
}

// Text renders a wrapped text input.
func (r *Renderer) Text(name, label, value string, attrs Attributes) string {
	value = r.resolveValue(name, value)
	attrs = r.resolveAttributes(name, attrs)
	return r.buildWrapper(r.tags.Text(name, value, attrs), name, label, attrs.Get("id"))
}

// Input renders a wrapped input of an arbitrary type such as email, number or
// date, resolving its value like Text.
func (r *Renderer) Input(kind, name, label, value string, attrs Attributes) string {
	value = r.resolveValue(name, value)
	attrs = r.resolveAttributes(name, attrs)
	return r.buildWrapper(r.tags.Input(kind, name, value, attrs), name, label, attrs.Get("id"))
}

// Textarea renders a wrapped textarea, four rows high unless attrs says
// otherwise.
func (r *Renderer) Textarea(name, label, value string, attrs Attributes) string {
	value = r.resolveValue(name, value)
	attrs = r.resolveAttributes(name, attrs)
	if !attrs.Has("rows") {
		attrs["rows"] = defaultTextareaRows
	}
	return r.buildWrapper(r.tags.Textarea(name, value, attrs), name, label, attrs.Get("id"))
}

// Password renders a wrapped password input. Passwords are never repopulated.
func (r *Renderer) Password(name, label string, attrs Attributes) string {
	attrs = r.resolveAttributes(name, attrs)
	return r.buildWrapper(r.tags.Password(name, attrs), name, label, attrs.Get("id"))
}

// Select renders a wrapped select; the selected option is resolved like a
// value.
func (r *Renderer) Select(name, label string, options []SelectOption, selected string, attrs Attributes) string {
	selected = r.resolveValue(name, selected)
	attrs = r.resolveAttributes(name, attrs)
	return r.buildWrapper(r.tags.Select(name, options, selected, attrs), name, label, attrs.Get("id"))
}

// Checkbox renders a wrapped checkbox submitting value (default "1"). The
// checked state is resolved from old input, then checked, then the form
// default. Browsers do not submit unchecked boxes, so after a failed
// submission a box the user unchecked cannot be distinguished from one that
// was never submitted and falls back to checked/default.
func (r *Renderer) Checkbox(name, label, value string, checked bool, attrs Attributes) string {
	if value == "" {
		value = "1"
	}
	checked = r.resolveChecked(name, checked)
	attrs = r.resolveAttributes(name, attrs)
	return r.buildWrapper(r.tags.Checkbox(name, value, checked, attrs), name, label, attrs.Get("id"))
}

// File renders a wrapped file input.
func (r *Renderer) File(name, label string, attrs Attributes) string {
	attrs = r.resolveAttributes(name, attrs)
	return r.buildWrapper(r.tags.File(name, attrs), name, label, attrs.Get("id"))
}

// Hidden renders a bare hidden input with a resolved value. No id is derived
// and no wrapper is applied.
func (r *Renderer) Hidden(name, value string, attrs Attributes) string {
	value = r.resolveValue(name, value)
	return r.tags.Input("hidden", name, value, attrs.Clone())
}
