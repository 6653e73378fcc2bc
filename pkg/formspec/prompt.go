package formspec

import (
	"fmt"
	"strings"
)

// Prompter asks for a value for a field. current is the value the renderer
// would show without an answer.
type Prompter interface {
	Prompt(field Field, current string) (string, error)
}

// CollectDefaults prompts for every field that can carry a default and
// returns the document defaults overlaid with the answers. Passwords, file
// inputs and hidden fields are skipped; blank answers keep the current value.
func CollectDefaults(doc Document, prompter Prompter) (map[string]string, error) {
	out := make(map[string]string, len(doc.Defaults)+len(doc.Fields))
	for key, value := range doc.Defaults {
		out[key] = value
	}
	if prompter == nil {
		return out, nil
	}

	for _, field := range doc.Fields {
		switch field.ResolvedKind() {
		case KindPassword, KindFile, KindHidden:
			continue
		}

		current := out[field.Name]
		if current == "" {
			current = field.Value
		}
		if field.ResolvedKind() == KindCheckbox && current == "" && field.Checked {
			current = "1"
		}

		answer, err := prompter.Prompt(field, current)
		if err != nil {
			return nil, fmt.Errorf("formspec: prompt %q: %w", field.Name, err)
		}
		if strings.TrimSpace(answer) == "" && field.ResolvedKind() != KindCheckbox {
			continue
		}
		out[field.Name] = answer
	}
	return out, nil
}
