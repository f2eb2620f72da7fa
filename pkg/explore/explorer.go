// Package explore lets a schema author browse a form interactively: pick an
// element, see its descriptor and the demonstrations it compiles to, repeat.
package explore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-fewshot/pkg/schema"
)

// Option configures an Explorer.
type Option func(*Explorer)

// WithDriver injects the prompt driver.
func WithDriver(driver PromptDriver) Option {
	return func(e *Explorer) {
		e.driver = driver
	}
}

// WithPageSize sets how many choices the select prompt shows at once.
func WithPageSize(size int) Option {
	return func(e *Explorer) {
		e.pageSize = size
	}
}

// Explorer walks a user through the elements of a form.
type Explorer struct {
	driver   PromptDriver
	pageSize int
}

// New constructs an Explorer. Without WithDriver a survey driver writing to
// stdout is used.
func New(options ...Option) *Explorer {
	e := &Explorer{}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	if e.driver == nil {
		e.driver = NewSurveyDriver(nil)
	}
	return e
}

// Run prompts for an element, prints it, and asks whether to continue until
// the user declines. The form-level demonstrations are listed first under
// the form id.
func (e *Explorer) Run(ctx context.Context, form *schema.Form) error {
	if form == nil {
		return errors.New("explore: form is required")
	}

	type entry struct {
		path     string
		typeName string
		examples []schema.Example
	}
	entries := []entry{{path: form.ID(), typeName: form.TypeName(), examples: form.Examples()}}
	_ = schema.Walk(form, func(path string, el schema.Element) error {
		entries = append(entries, entry{path: path, typeName: el.TypeName(), examples: el.Examples()})
		return nil
	})

	choices := make([]string, len(entries))
	for i, en := range entries {
		choices[i] = en.path + " (" + en.typeName + ")"
	}

	last := 0
	for {
		idx, err := e.driver.Select(ctx, SelectConfig{
			Message:      "Inspect which field?",
			Options:      choices,
			DefaultIndex: last,
			PageSize:     e.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(entries) {
			return fmt.Errorf("explore: selection %d out of range", idx)
		}
		last = idx

		selected := entries[idx]
		if err := e.driver.Info(ctx, FormatEntry(selected.path, selected.typeName, selected.examples)); err != nil {
			return err
		}

		again, err := e.driver.Confirm(ctx, ConfirmConfig{Message: "Inspect another field?", Default: true})
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// FormatEntry renders a path, its type name and its demonstrations as an
// indented block.
func FormatEntry(path, typeName string, examples []schema.Example) string {
	var b strings.Builder
	b.WriteString(path)
	b.WriteString(": ")
	b.WriteString(typeName)
	if len(examples) == 0 {
		b.WriteString("\n  (no examples)")
		return b.String()
	}
	for _, ex := range examples {
		output := ex.Output
		if output == "" {
			output = "(nothing)"
		}
		fmt.Fprintf(&b, "\n  Input: %s\n  Output: %s", ex.Text, output)
	}
	return b.String()
}
