// Package formspec describes whole forms declaratively (YAML or JSON) and
// renders them through a formly.Renderer.
package formspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formly/pkg/formly"
)

// Field kinds understood by Render. Any other kind is rendered as an <input>
// of that type.
const (
	KindText     = "text"
	KindTextarea = "textarea"
	KindPassword = "password"
	KindSelect   = "select"
	KindCheckbox = "checkbox"
	KindFile     = "file"
	KindHidden   = "hidden"
)

// Document is a complete form.
type Document struct {
	Action     string            `json:"action" yaml:"action"`
	Method     string            `json:"method" yaml:"method"`
	HTTPS      bool              `json:"https" yaml:"https"`
	Files      bool              `json:"files" yaml:"files"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
	// Config holds formly options keyed by their yaml names; see
	// formly.ApplyOptions.
	Config   map[string]any    `json:"config" yaml:"config"`
	Defaults map[string]string `json:"defaults" yaml:"defaults"`
	Fields   []Field           `json:"fields" yaml:"fields"`
	Buttons  []Button          `json:"buttons" yaml:"buttons"`
}

// Field is a single control.
type Field struct {
	Kind       string                `json:"kind" yaml:"kind"`
	Name       string                `json:"name" yaml:"name"`
	Label      string                `json:"label" yaml:"label"`
	Value      string                `json:"value" yaml:"value"`
	Checked    bool                  `json:"checked" yaml:"checked"`
	Options    []formly.SelectOption `json:"options" yaml:"options"`
	Attributes map[string]string     `json:"attributes" yaml:"attributes"`
}

// Button is a submit or reset control rendered inside the form actions.
type Button struct {
	Kind       string               `json:"kind" yaml:"kind"`
	Value      string               `json:"value" yaml:"value"`
	Variant    formly.ButtonVariant `json:"variant" yaml:"variant"`
	Attributes map[string]string    `json:"attributes" yaml:"attributes"`
}

// Parse decodes a document, rejecting unknown keys, and validates it.
func Parse(data []byte) (Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, errors.New("formspec: document is empty")
		}
		return Document{}, fmt.Errorf("formspec: decode document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Load reads and parses path from fsys.
func Load(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, errors.New("formspec: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("formspec: read %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%w (file %s)", err, path)
	}
	return doc, nil
}

// Validate checks that every field has a name and every button a known kind.
func (d Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Fields))
	for i, field := range d.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("formspec: field %d has no name", i)
		}
		if _, dup := seen[name]; dup && field.ResolvedKind() != KindCheckbox {
			return fmt.Errorf("formspec: duplicate field %q", name)
		}
		seen[name] = struct{}{}
	}
	for i, button := range d.Buttons {
		switch button.kind() {
		case "submit", "reset":
		default:
			return fmt.Errorf("formspec: button %d has unsupported kind %q", i, button.Kind)
		}
	}
	return nil
}

// ResolveConfig layers the document's config on top of base.
func (d Document) ResolveConfig(base formly.Config) (formly.Config, error) {
	cfg, err := formly.ApplyOptions(base, d.Config)
	if err != nil {
		return base, fmt.Errorf("formspec: %w", err)
	}
	return cfg, nil
}

// Options converts the document's config and defaults into renderer options
// layered on top of base.
func (d Document) Options(base formly.Config) ([]formly.Option, error) {
	cfg, err := d.ResolveConfig(base)
	if err != nil {
		return nil, err
	}
	return []formly.Option{
		formly.WithConfig(cfg),
		formly.WithDefaults(d.Defaults),
	}, nil
}

// ResolvedKind returns the lower-cased kind, defaulting to KindText.
func (f Field) ResolvedKind() string {
	kind := strings.ToLower(strings.TrimSpace(f.Kind))
	if kind == "" {
		return KindText
	}
	return kind
}

func (b Button) kind() string {
	kind := strings.ToLower(strings.TrimSpace(b.Kind))
	if kind == "" {
		return "submit"
	}
	return kind
}
