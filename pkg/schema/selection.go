package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-fewshot/pkg/tags"
)

// Option is one selectable choice of a Selection. Its examples are texts for
// which the option should be selected.
type Option struct {
	base
	examples []string
}

// NewOption builds an option. WithMultiple has no effect on options.
func NewOption(id string, examples []string, options ...FieldOption) (*Option, error) {
	b, err := newBase(KindOption, id, options)
	if err != nil {
		return nil, err
	}
	b.multiple = false
	return &Option{base: b, examples: cloneStrings(examples)}, nil
}

// Examples returns a copy of the texts that select this option.
func (o *Option) Examples() []string {
	return cloneStrings(o.examples)
}

// Selection lets the model pick one option, or several when Multiple is set.
type Selection struct {
	base
	options      []*Option
	nullExamples []string
}

// NewSelection builds a selection over options. Option ids must be unique.
func NewSelection(id string, options []*Option, nullExamples []string, fieldOptions ...FieldOption) (*Selection, error) {
	b, err := newBase(KindSelection, id, fieldOptions)
	if err != nil {
		return nil, err
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingOptions, id)
	}
	seen := make(map[string]struct{}, len(options))
	for i, option := range options {
		if option == nil {
			return nil, fmt.Errorf("%w: selection %q option %d", ErrNilElement, id, i)
		}
		if _, exists := seen[option.id]; exists {
			return nil, fmt.Errorf("%w: selection %q option %q", ErrDuplicateIdentifier, id, option.id)
		}
		seen[option.id] = struct{}{}
	}
	return &Selection{
		base:         b,
		options:      append([]*Option(nil), options...),
		nullExamples: cloneStrings(nullExamples),
	}, nil
}

// Options returns the options in declared order.
func (s *Selection) Options() []*Option {
	return append([]*Option(nil), s.options...)
}

// NullExamples returns the texts for which no option should be selected.
func (s *Selection) NullExamples() []string {
	return cloneStrings(s.nullExamples)
}

// OptionIDs returns the option ids sorted ascending.
func (s *Selection) OptionIDs() []string {
	ids := make([]string, 0, len(s.options))
	for _, option := range s.options {
		ids = append(ids, option.id)
	}
	sort.Strings(ids)
	return ids
}

// TypeName renders `Select[a,b]` over the sorted option ids, prefixed with
// "Multiple " when several options may be selected.
func (s *Selection) TypeName() string {
	return qualify("Select["+strings.Join(s.OptionIDs(), ",")+"]", s.multiple)
}

// Examples emits every option example tagged with the selection id and the
// option id as content, options and their examples in declared order,
// followed by one empty output per null example.
func (s *Selection) Examples() []Example {
	out := make([]Example, 0, len(s.nullExamples)+len(s.options))
	for _, option := range s.options {
		encoded := tags.WriteTag(s.id, tags.Single(option.id))
		for _, text := range option.examples {
			out = append(out, Example{Text: text, Output: encoded})
		}
	}
	for _, text := range s.nullExamples {
		out = append(out, Example{Text: text})
	}
	return out
}

func (*Selection) element() {}

func cloneStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}
