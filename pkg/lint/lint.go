// Package lint checks a form for demonstrations that the tagged wire format
// cannot carry faithfully. The encoder never escapes content, so example text
// holding `<id>` or `</id>` for an id in scope would be indistinguishable from
// real tags once rendered.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-fewshot/pkg/schema"
)

// Rule names a class of violation.
type Rule string

const (
	// RuleTagCollision flags example content containing a tag for an id in
	// scope.
	RuleTagCollision Rule = "tag-collision"
	// RuleMultipleValues flags list extractions on fields that are not
	// multiple.
	RuleMultipleValues Rule = "multiple-values"
	// RuleNoExamples flags elements that declare no demonstrations at all.
	RuleNoExamples Rule = "no-examples"
)

// Violation describes one finding. Path is the dotted element path.
type Violation struct {
	Path    string
	Rule    Rule
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s [%s] %s", v.Path, v.Rule, v.Message)
}

// Check returns every violation found in form, sorted by path, rule, then
// message.
func Check(form *schema.Form) []Violation {
	if form == nil {
		return nil
	}
	markers := tagMarkers(form)

	var out []Violation
	out = append(out, checkTexts(form.ID(), form.Examples(), markers)...)
	_ = schema.Walk(form, func(path string, el schema.Element) error {
		out = append(out, checkElement(path, el, markers)...)
		return nil
	})

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		if out[i].Rule != out[j].Rule {
			return out[i].Rule < out[j].Rule
		}
		return out[i].Message < out[j].Message
	})
	return out
}

func checkElement(path string, el schema.Element, markers []string) []Violation {
	var out []Violation
	examples := el.Examples()
	out = append(out, checkTexts(path, examples, markers)...)

	switch v := el.(type) {
	case *schema.Extraction:
		out = append(out, checkValues(path, v, markers)...)
		if len(examples) == 0 {
			out = append(out, Violation{Path: path, Rule: RuleNoExamples, Message: "field declares no examples"})
		}
	case *schema.Object:
		for i, ex := range v.DeclaredExamples() {
			for key, value := range ex.Values {
				for _, s := range value.Values() {
					if marker := findMarker(s, markers); marker != "" {
						out = append(out, Violation{
							Path:    path,
							Rule:    RuleTagCollision,
							Message: fmt.Sprintf("example %d value %q contains %s", i, key, marker),
						})
					}
				}
			}
		}
		if len(examples) == 0 {
			out = append(out, Violation{Path: path, Rule: RuleNoExamples, Message: "object declares no examples"})
		}
	case *schema.Selection:
		if len(examples) == 0 {
			out = append(out, Violation{Path: path, Rule: RuleNoExamples, Message: "no option examples and no null examples"})
		}
	}
	return out
}

func checkValues(path string, field *schema.Extraction, markers []string) []Violation {
	var out []Violation
	for i, ex := range field.DeclaredExamples() {
		if ex.Value.IsList() && len(ex.Value.Values()) > 1 && !field.Multiple() {
			out = append(out, Violation{
				Path:    path,
				Rule:    RuleMultipleValues,
				Message: fmt.Sprintf("example %d extracts %d values but the field is not multiple", i, len(ex.Value.Values())),
			})
		}
		for _, s := range ex.Value.Values() {
			if marker := findMarker(s, markers); marker != "" {
				out = append(out, Violation{
					Path:    path,
					Rule:    RuleTagCollision,
					Message: fmt.Sprintf("example %d value contains %s", i, marker),
				})
			}
		}
	}
	return out
}

func checkTexts(path string, examples []schema.Example, markers []string) []Violation {
	var out []Violation
	for i, ex := range examples {
		if marker := findMarker(ex.Text, markers); marker != "" {
			out = append(out, Violation{
				Path:    path,
				Rule:    RuleTagCollision,
				Message: fmt.Sprintf("example %d text contains %s", i, marker),
			})
		}
	}
	return out
}

// tagMarkers lists `<id>` and `</id>` for every id that can appear as a tag:
// the form, its elements, and object keys.
func tagMarkers(form *schema.Form) []string {
	seen := map[string]struct{}{form.ID(): {}}
	_ = schema.Walk(form, func(_ string, el schema.Element) error {
		seen[el.ID()] = struct{}{}
		if object, ok := el.(*schema.Object); ok {
			for _, key := range object.Keys() {
				seen[key] = struct{}{}
			}
		}
		return nil
	})

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	markers := make([]string, 0, len(ids)*2)
	for _, id := range ids {
		markers = append(markers, "<"+id+">", "</"+id+">")
	}
	return markers
}

func findMarker(s string, markers []string) string {
	if !strings.Contains(s, "<") {
		return ""
	}
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return marker
		}
	}
	return ""
}
