package schema

// Descriptor pairs a field path with its TypeName.
type Descriptor struct {
	ID          string `json:"id"`
	TypeName    string `json:"typeName"`
	Description string `json:"description,omitempty"`
}

// Descriptors lists every element of form depth first with its type name.
// Nested forms contribute their own entry followed by their children under
// dotted paths.
func Descriptors(form *Form) []Descriptor {
	var out []Descriptor
	_ = Walk(form, func(path string, el Element) error {
		out = append(out, Descriptor{ID: path, TypeName: el.TypeName(), Description: el.Description()})
		return nil
	})
	return out
}

// CollectExamples returns the form-level demonstrations followed by the
// demonstrations of every element, depth first in declared order.
func CollectExamples(form *Form) []Example {
	if form == nil {
		return nil
	}
	out := form.Examples()
	_ = Walk(form, func(_ string, el Element) error {
		out = append(out, el.Examples()...)
		return nil
	})
	return out
}
