package tags

import "strings"

// Value holds either a single string or an ordered list of strings. The zero
// value is an empty single string.
type Value struct {
	values []string
	list   bool
}

// Single wraps one string.
func Single(value string) Value {
	return Value{values: []string{value}}
}

// List wraps an ordered sequence of strings. Order is preserved when written.
func List(values ...string) Value {
	return Value{values: append([]string(nil), values...), list: true}
}

// IsList reports whether the value was built from a sequence.
func (v Value) IsList() bool { return v.list }

// Values returns a copy of the underlying strings.
func (v Value) Values() []string {
	if !v.list && len(v.values) == 0 {
		return []string{""}
	}
	return append([]string(nil), v.values...)
}

// String returns the single value, or the list values joined by ", ".
func (v Value) String() string {
	return strings.Join(v.Values(), ", ")
}

// IsBlank reports whether v is a single string that is empty or only
// whitespace. Lists are never blank, even when empty.
func (v Value) IsBlank() bool {
	if v.list {
		return false
	}
	return strings.TrimSpace(v.String()) == ""
}
