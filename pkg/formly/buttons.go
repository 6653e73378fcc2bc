package formly

import "strings"

// ButtonVariant selects the Bootstrap button style of a submit control.
type ButtonVariant string

const (
	ButtonDefault ButtonVariant = ""
	ButtonPrimary ButtonVariant = "primary"
	ButtonInfo    ButtonVariant = "info"
	ButtonSuccess ButtonVariant = "success"
	ButtonWarning ButtonVariant = "warning"
	ButtonDanger  ButtonVariant = "danger"
	ButtonInverse ButtonVariant = "inverse"
)

const buttonClass = "btn"

// Class returns the class tokens for the variant: "btn" for the default
// variant, "btn btn-<variant>" otherwise.
func (v ButtonVariant) Class() string {
	variant := strings.TrimSpace(string(v))
	if variant == "" || variant == buttonClass || variant == "default" {
		return buttonClass
	}
	return buttonClass + " " + buttonClass + "-" + variant
}

// Submit renders a submit button, merging the variant classes into any class
// the caller supplied.
func (r *Renderer) Submit(value string, attrs Attributes, variant ButtonVariant) string {
	out := attrs.Clone()
	out["type"] = "submit"
	out["class"] = mergeClass(out.Get("class"), variant.Class())
	return r.tags.Button(value, out)
}

func (r *Renderer) SubmitDefault(value string, attrs Attributes) string {
	return r.Submit(value, attrs, ButtonDefault)
}

func (r *Renderer) SubmitPrimary(value string, attrs Attributes) string {
	return r.Submit(value, attrs, ButtonPrimary)
}

func (r *Renderer) SubmitInfo(value string, attrs Attributes) string {
	return r.Submit(value, attrs, ButtonInfo)
}

func (r *Renderer) SubmitSuccess(value string, attrs Attributes) string {
	return r.Submit(value, attrs, ButtonSuccess)
}

func (r *Renderer) SubmitWarning(value string, attrs Attributes) string {
	return r.Submit(value, attrs, ButtonWarning)
}

func (r *Renderer) SubmitDanger(value string, attrs Attributes) string {
	return r.Submit(value, attrs, ButtonDanger)
}

func (r *Renderer) SubmitInverse(value string, attrs Attributes) string {
	return r.Submit(value, attrs, ButtonInverse)
}

// Reset renders a reset button. The btn class is merged like Submit, so a
// missing class attribute is fine.
func (r *Renderer) Reset(value string, attrs Attributes) string {
	out := attrs.Clone()
	out["type"] = "reset"
	out["class"] = mergeClass(out.Get("class"), buttonClass)
	return r.tags.Button(value, out)
}

// Actions wraps pre-rendered buttons in a form-actions container, keeping
// their order.
func (r *Renderer) Actions(buttons ...string) string {
	return `<div class="form-actions">` + strings.Join(buttons, "") + `</div>`
}
