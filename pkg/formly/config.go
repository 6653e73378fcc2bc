package formly

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownOption is returned when bulk options name a key Config does not
// declare.
var ErrUnknownOption = errors.New("formly: unknown option")

// Config holds the rendering options. It is copied into each Renderer and
// never mutated afterwards.
type Config struct {
	// FormClass is added to <form> tags that carry no form-* class. Typical
	// values are form-vertical, form-horizontal, form-inline and form-search.
	FormClass string `json:"form_class" yaml:"form_class"`
	// AutoToken appends the CSRF token field after the opening form tag.
	AutoToken bool `json:"auto_token" yaml:"auto_token"`
	// NameAsID derives an id from the field name when none is supplied.
	NameAsID bool `json:"name_as_id" yaml:"name_as_id"`
	// IDPrefix is prepended to generated ids.
	IDPrefix string `json:"id_prefix" yaml:"id_prefix"`
	// RequiredLabel is the trailing label marker flagging required fields.
	RequiredLabel string `json:"required_label" yaml:"required_label"`
	// RequiredPrefix and RequiredSuffix decorate required label text.
	RequiredPrefix string `json:"required_prefix" yaml:"required_prefix"`
	RequiredSuffix string `json:"required_suffix" yaml:"required_suffix"`
	// RequiredClass is added to the label of required fields.
	RequiredClass string `json:"required_class" yaml:"required_class"`
	// ControlGroupError is added to the control group of a field with errors.
	ControlGroupError string `json:"control_group_error" yaml:"control_group_error"`
	// DisplayInlineErrors renders the first error message inside the group.
	DisplayInlineErrors bool `json:"display_inline_errors" yaml:"display_inline_errors"`
}

// DefaultConfig returns the stock Bootstrap 2 configuration.
func DefaultConfig() Config {
	return Config{
		FormClass:         "form-horizontal",
		AutoToken:         true,
		NameAsID:          true,
		IDPrefix:          "field_",
		RequiredLabel:     ".req",
		RequiredSuffix:    " *",
		RequiredClass:     "label-required",
		ControlGroupError: "error",
	}
}

var optionKeys = map[string]struct{}{
	"form_class":            {},
	"auto_token":            {},
	"name_as_id":            {},
	"id_prefix":             {},
	"required_label":        {},
	"required_prefix":       {},
	"required_suffix":       {},
	"required_class":        {},
	"control_group_error":   {},
	"display_inline_errors": {},
}

// ApplyOptions returns base with the supplied options applied. Keys use the
// yaml names of Config fields. Unknown keys and values of the wrong type are
// rejected and base is returned unchanged.
func ApplyOptions(base Config, options map[string]any) (Config, error) {
	if len(options) == 0 {
		return base, nil
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := optionKeys[key]; !ok {
			return base, fmt.Errorf("%w %q", ErrUnknownOption, key)
		}
	}

	payload, err := yaml.Marshal(options)
	if err != nil {
		return base, fmt.Errorf("formly: encode options: %w", err)
	}

	cfg := base
	if err := decodeStrict(payload, &cfg); err != nil {
		return base, fmt.Errorf("formly: apply options: %w", err)
	}
	return cfg, nil
}

// LoadConfig decodes a YAML (or JSON) document on top of DefaultConfig.
// Unknown keys are rejected. Empty input yields the defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := decodeStrict(data, &cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), fmt.Errorf("formly: load config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFS reads path from fsys and decodes it with LoadConfig.
func LoadConfigFS(fsys fs.FS, path string) (Config, error) {
	if fsys == nil {
		return DefaultConfig(), errors.New("formly: config filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("formly: read config %s: %w", path, err)
	}
	return LoadConfig(data)
}

func decodeStrict(data []byte, out *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}
