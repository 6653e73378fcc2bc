package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formly/pkg/formly"
	"github.com/goliatone/go-formly/pkg/formspec"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, nil); err != nil {
		log.Fatalf("formly-render: %v", err)
	}
}

// run parses flags and renders the requested document. A nil prompter means
// the survey prompter is used when -interactive is set.
func run(args []string, stdout io.Writer, prompter formspec.Prompter) error {
	flags := flag.NewFlagSet("formly-render", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	input := flags.String("input", "", "form document (YAML or JSON)")
	output := flags.String("output", "", "output file (stdout if empty)")
	configPath := flags.String("config", "", "formly config file applied before the document config")
	interactive := flags.Bool("interactive", false, "prompt for field defaults before rendering")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("-input is required")
	}

	doc, err := formspec.Load(os.DirFS(filepath.Dir(*input)), filepath.Base(*input))
	if err != nil {
		return err
	}

	base := formly.DefaultConfig()
	if *configPath != "" {
		base, err = formly.LoadConfigFS(os.DirFS(filepath.Dir(*configPath)), filepath.Base(*configPath))
		if err != nil {
			return err
		}
	}

	cfg, err := doc.ResolveConfig(base)
	if err != nil {
		return err
	}

	if *interactive {
		if prompter == nil {
			prompter = surveyPrompter{requiredLabel: cfg.RequiredLabel}
		}
		defaults, err := formspec.CollectDefaults(doc, prompter)
		if err != nil {
			return err
		}
		doc.Defaults = defaults
	}

	renderer := formly.New(formly.WithConfig(cfg), formly.WithDefaults(doc.Defaults))
	html := formspec.Render(renderer, doc)

	if *output == "" {
		_, err := io.WriteString(stdout, html)
		return err
	}
	if err := os.WriteFile(*output, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stdout, "Form written to %s\n", *output)
	return nil
}
