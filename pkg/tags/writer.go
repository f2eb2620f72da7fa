package tags

import (
	"sort"
	"strings"
)

// WriteSingleTag renders `<name>value</name>`.
func WriteSingleTag(name, value string) string {
	var b strings.Builder
	b.Grow(len(name)*2 + len(value) + 5)
	writeSingle(&b, name, value)
	return b.String()
}

// WriteTag renders a single value as one tag and a list as one tag per entry,
// in list order.
func WriteTag(name string, value Value) string {
	var b strings.Builder
	writeTag(&b, name, value)
	return b.String()
}

// WriteComplexTag renders each entry of data as a tag, concatenated in
// ascending key order, and wraps the result in a single `name` tag. The
// mapping's own iteration order never affects the output.
func WriteComplexTag(name string, data map[string]Value) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var inner strings.Builder
	for _, key := range keys {
		writeTag(&inner, key, data[key])
	}
	return WriteSingleTag(name, inner.String())
}

func writeTag(b *strings.Builder, name string, value Value) {
	for _, v := range value.Values() {
		writeSingle(b, name, v)
	}
}

func writeSingle(b *strings.Builder, name, value string) {
	b.WriteByte('<')
	b.WriteString(name)
	b.WriteByte('>')
	b.WriteString(value)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteByte('>')
}
