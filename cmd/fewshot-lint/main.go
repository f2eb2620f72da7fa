package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goliatone/go-fewshot/internal/config"
	"github.com/goliatone/go-fewshot/pkg/lint"
	"github.com/goliatone/go-fewshot/pkg/loader"
)

func main() {
	code, err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fewshot-lint: %v\n", err)
	}
	os.Exit(code)
}

// run returns 1 when violations are found and 2 on load errors.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 2, err
	}

	flags := flag.NewFlagSet("fewshot-lint", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flags.Output(), "\nLint schema documents for demonstrations the tagged format cannot carry.\n")
		flags.PrintDefaults()
	}
	logLevel := flags.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	if err := flags.Parse(args); err != nil {
		return 2, err
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{cfg.Schema}
	}
	logger := config.NewLogger(stderr, *logLevel)

	found := 0
	for _, path := range paths {
		store, err := config.LoadStore(ctx, path, loader.WithLogger(logger))
		if err != nil {
			return 2, fmt.Errorf("lint %s: %w", path, err)
		}
		for _, form := range store.Forms() {
			for _, v := range lint.Check(form) {
				found++
				fmt.Fprintf(stdout, "%s: %s -> %s\n", store.Source(form.ID()), form.ID(), v)
			}
		}
	}
	if found > 0 {
		return 1, nil
	}
	return 0, nil
}
