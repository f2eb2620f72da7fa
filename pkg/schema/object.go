package schema

import (
	"sort"

	"github.com/goliatone/go-fewshot/pkg/tags"
)

// ObjectExample pairs a source text with the nested values that should be
// extracted from it. Keys are opaque sub-field names.
type ObjectExample struct {
	Text   string
	Values map[string]tags.Value
}

// Object captures a single nested composite value whose shape is given by the
// keys of its examples.
type Object struct {
	base
	examples []ObjectExample
}

// NewObject builds an object field.
func NewObject(id string, examples []ObjectExample, options ...FieldOption) (*Object, error) {
	b, err := newBase(KindObject, id, options)
	if err != nil {
		return nil, err
	}
	return &Object{base: b, examples: cloneObjectExamples(examples)}, nil
}

// DeclaredExamples returns a copy of the examples as declared.
func (o *Object) DeclaredExamples() []ObjectExample {
	return cloneObjectExamples(o.examples)
}

// Keys returns the sorted union of keys used across all examples.
func (o *Object) Keys() []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, ex := range o.examples {
		for key := range ex.Values {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Examples wraps each example's values in a single tag named after the
// field, children in ascending key order.
func (o *Object) Examples() []Example {
	out := make([]Example, 0, len(o.examples))
	for _, ex := range o.examples {
		out = append(out, Example{Text: ex.Text, Output: tags.WriteComplexTag(o.id, ex.Values)})
	}
	return out
}

func (*Object) element() {}

func cloneObjectExamples(examples []ObjectExample) []ObjectExample {
	if len(examples) == 0 {
		return nil
	}
	out := make([]ObjectExample, len(examples))
	for i, ex := range examples {
		values := make(map[string]tags.Value, len(ex.Values))
		for k, v := range ex.Values {
			values[k] = v
		}
		out[i] = ObjectExample{Text: ex.Text, Values: values}
	}
	return out
}
