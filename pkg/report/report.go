// Package report renders a Markdown demonstration sheet for a form: one
// section per element with its descriptor, description and the compiled
// (input, output) pairs. It is meant for reviewing a schema before it is
// handed to a prompt builder.
package report

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-fewshot/internal/labels"
	"github.com/goliatone/go-fewshot/pkg/schema"
)

//go:embed templates/sheet.md.tpl
var defaultTemplate string

// Section is the template view of one element.
type Section struct {
	ID          string
	Label       string
	TypeName    string
	Description string
	Examples    []schema.Example
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	template string
	title    func(*schema.Form) string
}

// WithTemplate replaces the embedded pongo2 template. The template receives
// `title`, `description` and `sections`.
func WithTemplate(content string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(content) != "" {
			cfg.template = content
		}
	}
}

// WithTitle overrides how the sheet title is derived from the form.
func WithTitle(fn func(*schema.Form) string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.title = fn
		}
	}
}

// Renderer renders demonstration sheets.
type Renderer struct {
	tpl   *pongo2.Template
	title func(*schema.Form) string
}

// New compiles the template.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		template: defaultTemplate,
		title:    func(form *schema.Form) string { return labels.Humanize(form.ID()) },
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	tpl, err := pongo2.FromString(cfg.template)
	if err != nil {
		return nil, fmt.Errorf("report: compile template: %w", err)
	}
	return &Renderer{tpl: tpl, title: cfg.title}, nil
}

// Sections builds the template view of form: a section for the form-level
// examples when present, then one per element depth first.
func Sections(form *schema.Form) []Section {
	if form == nil {
		return nil
	}
	var sections []Section
	if examples := form.Examples(); len(examples) > 0 {
		sections = append(sections, Section{
			ID:       form.ID(),
			Label:    labels.Humanize(form.ID()),
			TypeName: form.TypeName(),
			Examples: examples,
		})
	}
	_ = schema.Walk(form, func(path string, el schema.Element) error {
		sections = append(sections, Section{
			ID:          path,
			Label:       labels.Humanize(path),
			TypeName:    el.TypeName(),
			Description: el.Description(),
			Examples:    el.Examples(),
		})
		return nil
	})
	return sections
}

// Render executes the template for form and writes the result to every
// supplied writer.
func (r *Renderer) Render(form *schema.Form, out ...io.Writer) (string, error) {
	if r == nil || r.tpl == nil {
		return "", errors.New("report: renderer is not initialised")
	}
	if form == nil {
		return "", errors.New("report: form is required")
	}

	rendered, err := r.tpl.Execute(pongo2.Context{
		"title":       r.title(form),
		"description": form.Description(),
		"sections":    Sections(form),
	})
	if err != nil {
		return "", fmt.Errorf("report: execute template: %w", err)
	}
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", fmt.Errorf("report: write output: %w", err)
		}
	}
	return rendered, nil
}
