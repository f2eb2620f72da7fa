package describe

import (
	"strings"

	"github.com/goliatone/go-fewshot/pkg/schema"
)

// BulletPoint renders one line per element:
//
//	* id: TypeName # description
//
// Children of a form are indented by one space per level after the bullet.
type BulletPoint struct{}

var _ Describer = BulletPoint{}

// Describe implements Describer.
func (BulletPoint) Describe(el schema.Element) string {
	if el == nil {
		return ""
	}
	var lines []string
	bulletLines(el, 0, &lines)
	return strings.Join(lines, "\n")
}

func bulletLines(el schema.Element, depth int, lines *[]string) {
	space := "* " + strings.Repeat(" ", depth)
	*lines = append(*lines, space+el.ID()+": "+typeName(el, el.TypeName())+" # "+el.Description())
	form, ok := el.(*schema.Form)
	if !ok {
		return
	}
	for _, child := range form.Elements() {
		bulletLines(child, depth+1, lines)
	}
}
