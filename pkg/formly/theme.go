package formly

import (
	"fmt"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme token names read by ConfigFromTheme. Tokens that are missing or empty
// leave the corresponding Config field untouched.
const (
	TokenFormClass           = "formly.form-class"
	TokenIDPrefix            = "formly.id-prefix"
	TokenRequiredLabel       = "formly.required-label"
	TokenRequiredPrefix      = "formly.required-prefix"
	TokenRequiredSuffix      = "formly.required-suffix"
	TokenRequiredClass       = "formly.required-class"
	TokenControlGroupError   = "formly.control-group-error"
	TokenDisplayInlineErrors = "formly.display-inline-errors"
)

// ConfigFromTheme resolves a theme selection and overlays its formly.* tokens
// on base. A nil selector or a selection without a manifest returns base.
func ConfigFromTheme(base Config, selector theme.ThemeSelector, name, variant string) (Config, error) {
	if selector == nil {
		return base, nil
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return base, fmt.Errorf("formly: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return base, nil
	}
	return applyThemeTokens(base, selection.Manifest.Tokens)
}

func applyThemeTokens(base Config, tokens map[string]string) (Config, error) {
	cfg := base
	fields := map[string]*string{
		TokenFormClass:         &cfg.FormClass,
		TokenIDPrefix:          &cfg.IDPrefix,
		TokenRequiredLabel:     &cfg.RequiredLabel,
		TokenRequiredPrefix:    &cfg.RequiredPrefix,
		TokenRequiredSuffix:    &cfg.RequiredSuffix,
		TokenRequiredClass:     &cfg.RequiredClass,
		TokenControlGroupError: &cfg.ControlGroupError,
	}
	for token, field := range fields {
		if value, ok := tokens[token]; ok && value != "" {
			*field = value
		}
	}

	if raw := strings.TrimSpace(tokens[TokenDisplayInlineErrors]); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return base, fmt.Errorf("formly: theme token %s: %w", TokenDisplayInlineErrors, err)
		}
		cfg.DisplayInlineErrors = enabled
	}
	return cfg, nil
}
