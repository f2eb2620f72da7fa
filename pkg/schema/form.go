package schema

import "fmt"

// Form groups extraction elements collected together. Its description should
// give the context in which the data is collected. Forms nest inside other
// forms and can be the root of an extraction task.
type Form struct {
	base
	elements []Element
	examples []ExtractionExample
}

// NewForm builds a form owning elements. Element ids must be unique within the
// form. examples are form-level demonstrations encoded like a scalar field.
func NewForm(id string, elements []Element, examples []ExtractionExample, options ...FieldOption) (*Form, error) {
	b, err := newBase(KindForm, id, options)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(elements))
	for i, el := range elements {
		if el == nil {
			return nil, fmt.Errorf("%w: form %q element %d", ErrNilElement, id, i)
		}
		if _, exists := seen[el.ID()]; exists {
			return nil, fmt.Errorf("%w: form %q element %q", ErrDuplicateIdentifier, id, el.ID())
		}
		seen[el.ID()] = struct{}{}
	}
	return &Form{
		base:     b,
		elements: append([]Element(nil), elements...),
		examples: cloneExtractionExamples(examples),
	}, nil
}

// Elements returns the owned elements in declared order.
func (f *Form) Elements() []Element {
	return append([]Element(nil), f.elements...)
}

// Element looks up a direct child by id.
func (f *Form) Element(id string) (Element, bool) {
	for _, el := range f.elements {
		if el.ID() == id {
			return el, true
		}
	}
	return nil, false
}

// DeclaredExamples returns a copy of the form-level examples.
func (f *Form) DeclaredExamples() []ExtractionExample {
	return cloneExtractionExamples(f.examples)
}

// Examples encodes the form-level examples under the form id.
func (f *Form) Examples() []Example {
	return compileExtraction(f.id, f.examples)
}

func (*Form) element() {}
