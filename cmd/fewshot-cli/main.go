package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-fewshot"
	"github.com/goliatone/go-fewshot/internal/config"
	"github.com/goliatone/go-fewshot/pkg/describe"
	"github.com/goliatone/go-fewshot/pkg/explore"
	"github.com/goliatone/go-fewshot/pkg/loader"
	"github.com/goliatone/go-fewshot/pkg/openapi"
	"github.com/goliatone/go-fewshot/pkg/report"
	"github.com/goliatone/go-fewshot/pkg/schema"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("fewshot: %v", err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("fewshot-cli", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		schemaFlag      = flags.String("schema", cfg.Schema, "Schema document or directory of documents")
		formFlag        = flags.String("form", "", "Form id to render (optional when only one form is loaded)")
		formatFlag      = flags.String("format", cfg.Format, "Output format: text, json, typescript, bullet, openapi, report")
		logLevelFlag    = flags.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
		sanitizeFlag    = flags.Bool("sanitize", cfg.Sanitize, "Strip markup from example texts")
		interactiveFlag = flags.Bool("interactive", false, "Browse the form interactively")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := config.NewLogger(stderr, *logLevelFlag)

	store, err := config.LoadStore(ctx, *schemaFlag,
		loader.WithLogger(logger),
		loader.WithSanitizer(*sanitizeFlag),
	)
	if err != nil {
		return err
	}

	form, err := selectForm(store, *formFlag)
	if err != nil {
		return err
	}
	logger.Debug("form selected", slog.String("form", form.ID()), slog.String("source", store.Source(form.ID())))

	if *interactiveFlag {
		return explore.New(explore.WithDriver(explore.NewSurveyDriver(stdout))).Run(ctx, form)
	}
	return render(ctx, stdout, form, *formatFlag)
}

func selectForm(store *loader.Store, id string) (*schema.Form, error) {
	if id != "" {
		form, ok := store.Form(id)
		if !ok {
			return nil, fmt.Errorf("form %q not found (available: %s)", id, strings.Join(store.IDs(), ", "))
		}
		return form, nil
	}
	ids := store.IDs()
	switch len(ids) {
	case 0:
		return nil, errors.New("no forms loaded")
	case 1:
		form, _ := store.Form(ids[0])
		return form, nil
	default:
		return nil, fmt.Errorf("several forms loaded, pick one with -form (available: %s)", strings.Join(ids, ", "))
	}
}

func render(ctx context.Context, out io.Writer, form *schema.Form, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return writeText(out, fewshot.Compile(form))
	case "json":
		return writeJSON(out, fewshot.Compile(form))
	case "typescript", "ts":
		_, err := io.WriteString(out, describe.TypeScript{}.Describe(form))
		return err
	case "bullet":
		_, err := fmt.Fprintln(out, describe.BulletPoint{}.Describe(form))
		return err
	case "openapi":
		doc, err := openapi.Document(ctx, []*schema.Form{form})
		if err != nil {
			return err
		}
		return writeJSON(out, doc)
	case "report":
		renderer, err := report.New()
		if err != nil {
			return err
		}
		_, err = renderer.Render(form, out)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(out io.Writer, demos fewshot.Demonstrations) error {
	var b strings.Builder
	b.WriteString("Fields:\n")
	for _, d := range demos.Descriptors {
		fmt.Fprintf(&b, "  %s: %s\n", d.ID, d.TypeName)
	}
	b.WriteString("\nExamples:\n")
	for _, ex := range demos.Examples {
		fmt.Fprintf(&b, "  Input: %s\n  Output: %s\n\n", ex.Text, ex.Output)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(value)
}
