package describe

import (
	"strings"

	"github.com/goliatone/go-fewshot/pkg/schema"
)

// TypeScript renders elements as a TypeScript-like declaration wrapped in a
// fenced code block. Forms become object literals; a non-form root is wrapped
// in braces so the output is always an object.
type TypeScript struct{}

var _ Describer = TypeScript{}

// Describe implements Describer.
func (TypeScript) Describe(el schema.Element) string {
	if el == nil {
		return ""
	}
	var lines []string
	if _, isForm := el.(*schema.Form); isForm {
		typeScriptLines(el, 0, &lines)
	} else {
		lines = append(lines, "{")
		typeScriptLines(el, 1, &lines)
		lines = append(lines, "}")
	}
	return "```TypeScript\n\n" + strings.Join(lines, "\n") + "\n```\n"
}

func typeScriptLines(el schema.Element, depth int, lines *[]string) {
	space := strings.Repeat(" ", depth)

	if form, ok := el.(*schema.Form); ok {
		*lines = append(*lines, space+form.ID()+": { // "+form.Description())
		for _, child := range form.Elements() {
			typeScriptLines(child, depth+1, lines)
		}
		closing := space + "}"
		if form.Multiple() {
			closing += "[]"
		}
		*lines = append(*lines, closing)
		return
	}

	finalized := typeName(el, typeScriptType(el))
	if el.Multiple() {
		finalized += "[]"
	}
	*lines = append(*lines, space+el.ID()+": "+finalized+" // "+el.Description())
}

func typeScriptType(el schema.Element) string {
	switch v := el.(type) {
	case *schema.Selection:
		quoted := make([]string, 0, len(v.Options()))
		for _, option := range v.Options() {
			quoted = append(quoted, `"`+option.ID()+`"`)
		}
		return "(" + strings.Join(quoted, " | ") + ")"
	case *schema.Object:
		return "Record<string, string>"
	}
	switch el.Kind() {
	case schema.KindNumber:
		return "number"
	default:
		return "string"
	}
}
