package schema

import "errors"

// SkipChildren can be returned from a WalkFunc to skip the elements of the
// form just visited.
var SkipChildren = errors.New("schema: skip children")

// WalkFunc is invoked for every element reached by Walk. path is the dotted
// id path from the root form's children, e.g. `address.city`.
type WalkFunc func(path string, el Element) error

// Walk visits the elements of form depth first in declared order. The root
// form itself is not visited.
func Walk(form *Form, fn WalkFunc) error {
	if form == nil {
		return nil
	}
	return walkElements("", form.elements, fn)
}

func walkElements(prefix string, elements []Element, fn WalkFunc) error {
	for _, el := range elements {
		path := joinPath(prefix, el.ID())
		err := fn(path, el)
		if errors.Is(err, SkipChildren) {
			continue
		}
		if err != nil {
			return err
		}
		if nested, ok := el.(*Form); ok {
			if err := walkElements(path, nested.elements, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}
