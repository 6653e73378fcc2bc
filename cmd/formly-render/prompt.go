package main

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-formly/pkg/formspec"
)

// surveyPrompter asks on the terminal. requiredLabel is the marker stripped
// from labels before they are shown.
type surveyPrompter struct {
	requiredLabel string
}

func (p surveyPrompter) Prompt(field formspec.Field, current string) (string, error) {
	message := promptLabel(field, p.requiredLabel)

	switch field.ResolvedKind() {
	case formspec.KindCheckbox:
		var checked bool
		prompt := &survey.Confirm{
			Message: message,
			Default: current != "" && current != "0",
		}
		if err := survey.AskOne(prompt, &checked); err != nil {
			return "", err
		}
		if checked {
			return "1", nil
		}
		return "0", nil

	case formspec.KindSelect:
		if len(field.Options) == 0 {
			break
		}
		labels := make([]string, 0, len(field.Options))
		values := make(map[string]string, len(field.Options))
		var selected string
		for _, option := range field.Options {
			label := option.Label
			if label == "" {
				label = option.Value
			}
			labels = append(labels, label)
			values[label] = option.Value
			if option.Value == current {
				selected = label
			}
		}
		prompt := &survey.Select{
			Message: message,
			Options: labels,
		}
		if selected != "" {
			prompt.Default = selected
		}
		var answer string
		if err := survey.AskOne(prompt, &answer); err != nil {
			return "", err
		}
		return values[answer], nil

	case formspec.KindTextarea:
		var answer string
		prompt := &survey.Multiline{
			Message: message,
			Default: current,
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return "", err
		}
		return answer, nil
	}

	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: current,
	}
	if err := survey.AskOne(prompt, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func promptLabel(field formspec.Field, requiredLabel string) string {
	label := field.Label
	if requiredLabel != "" {
		label = strings.TrimSuffix(label, requiredLabel)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = field.Name
	}
	return label
}
