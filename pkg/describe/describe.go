// Package describe renders the type of a schema element as text for prompt
// builders. Two styles are provided: a bullet list and a TypeScript-like
// declaration. Describers hold no state between calls.
package describe

import "github.com/goliatone/go-fewshot/pkg/schema"

// Describer renders an element, and its children when it is a form, as a
// type description.
type Describer interface {
	Describe(el schema.Element) string
}

// DescriberFunc adapts a function into a Describer.
type DescriberFunc func(el schema.Element) string

// Describe calls the underlying function.
func (fn DescriberFunc) Describe(el schema.Element) string {
	return fn(el)
}

// typeName prefers the custom type name declared on the field.
func typeName(field schema.Field, fallback string) string {
	if custom := field.CustomTypeName(); custom != "" {
		return custom
	}
	return fallback
}
