package schema

import (
	"fmt"

	"github.com/goliatone/go-fewshot/pkg/tags"
)

// ExtractionExample pairs a source text with the value that should be
// extracted from it. A blank single value declares a null example.
type ExtractionExample struct {
	Text  string
	Value tags.Value
}

// Extract is shorthand for a single-value example.
func Extract(text, value string) ExtractionExample {
	return ExtractionExample{Text: text, Value: tags.Single(value)}
}

// ExtractAll is shorthand for a multi-value example.
func ExtractAll(text string, values ...string) ExtractionExample {
	return ExtractionExample{Text: text, Value: tags.List(values...)}
}

// Extraction is a scalar extraction field such as Text or Number.
type Extraction struct {
	base
	examples []ExtractionExample
}

// NewExtraction builds a scalar extraction field of the given kind.
func NewExtraction(kind Kind, id string, examples []ExtractionExample, options ...FieldOption) (*Extraction, error) {
	if !kind.IsScalar() {
		return nil, fmt.Errorf("%w: %q is not an extraction kind", ErrUnsupportedKind, kind)
	}
	b, err := newBase(kind, id, options)
	if err != nil {
		return nil, err
	}
	return &Extraction{base: b, examples: cloneExtractionExamples(examples)}, nil
}

// NewText builds a Text field.
func NewText(id string, examples []ExtractionExample, options ...FieldOption) (*Extraction, error) {
	return NewExtraction(KindText, id, examples, options...)
}

// NewNumber builds a Number field.
func NewNumber(id string, examples []ExtractionExample, options ...FieldOption) (*Extraction, error) {
	return NewExtraction(KindNumber, id, examples, options...)
}

// NewDate builds a Date field.
func NewDate(id string, examples []ExtractionExample, options ...FieldOption) (*Extraction, error) {
	return NewExtraction(KindDate, id, examples, options...)
}

// NewTimePeriod builds a field for general time periods such as
// "after dinner" or "next year".
func NewTimePeriod(id string, examples []ExtractionExample, options ...FieldOption) (*Extraction, error) {
	return NewExtraction(KindTimePeriod, id, examples, options...)
}

// NewNumericRange builds a numeric range field.
func NewNumericRange(id string, examples []ExtractionExample, options ...FieldOption) (*Extraction, error) {
	return NewExtraction(KindNumericRange, id, examples, options...)
}

// DeclaredExamples returns a copy of the examples as declared.
func (e *Extraction) DeclaredExamples() []ExtractionExample {
	return cloneExtractionExamples(e.examples)
}

// Examples encodes every declared example under the field id. Blank single
// values produce an empty output rather than an empty tag.
func (e *Extraction) Examples() []Example {
	return compileExtraction(e.id, e.examples)
}

func (*Extraction) element() {}

func compileExtraction(id string, examples []ExtractionExample) []Example {
	out := make([]Example, 0, len(examples))
	for _, ex := range examples {
		output := ""
		if !ex.Value.IsBlank() {
			output = tags.WriteTag(id, ex.Value)
		}
		out = append(out, Example{Text: ex.Text, Output: output})
	}
	return out
}

func cloneExtractionExamples(examples []ExtractionExample) []ExtractionExample {
	if len(examples) == 0 {
		return nil
	}
	return append([]ExtractionExample(nil), examples...)
}
