package tags_test

import (
	"testing"

	"github.com/goliatone/go-fewshot/pkg/tags"
)

func TestWriteTag(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		value tags.Value
		want  string
	}{
		{name: "single", tag: "x", value: tags.Single("hello"), want: "<x>hello</x>"},
		{name: "list keeps order", tag: "x", value: tags.List("b", "a"), want: "<x>b</x><x>a</x>"},
		{name: "empty list", tag: "x", value: tags.List(), want: ""},
		{name: "zero value", tag: "x", value: tags.Value{}, want: "<x></x>"},
		{name: "no escaping", tag: "x", value: tags.Single("a < b & c"), want: "<x>a < b & c</x>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tags.WriteTag(tt.tag, tt.value); got != tt.want {
				t.Fatalf("WriteTag(%q) = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestWriteSingleTag(t *testing.T) {
	if got := tags.WriteSingleTag("price", "$10"); got != "<price>$10</price>" {
		t.Fatalf("unexpected tag: %q", got)
	}
}

func TestWriteComplexTag_SortsKeys(t *testing.T) {
	got := tags.WriteComplexTag("obj", map[string]tags.Value{
		"b": tags.Single("2"),
		"a": tags.Single("1"),
	})
	if want := "<obj><a>1</a><b>2</b></obj>"; got != want {
		t.Fatalf("WriteComplexTag = %q, want %q", got, want)
	}
}

func TestWriteComplexTag_ListValues(t *testing.T) {
	got := tags.WriteComplexTag("address", map[string]tags.Value{
		"street": tags.List("1 Main St", "Suite 2"),
		"city":   tags.Single("Boston"),
	})
	want := "<address><city>Boston</city><street>1 Main St</street><street>Suite 2</street></address>"
	if got != want {
		t.Fatalf("WriteComplexTag = %q, want %q", got, want)
	}
}

func TestWriteComplexTag_Empty(t *testing.T) {
	if got := tags.WriteComplexTag("obj", nil); got != "<obj></obj>" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestValue_IsBlank(t *testing.T) {
	cases := map[string]struct {
		value tags.Value
		want  bool
	}{
		"empty":      {tags.Single(""), true},
		"whitespace": {tags.Single(" \t\n"), true},
		"text":       {tags.Single("x"), false},
		"empty list": {tags.List(), false},
		"blank list": {tags.List(""), false},
		"zero":       {tags.Value{}, true},
	}
	for name, tc := range cases {
		if got := tc.value.IsBlank(); got != tc.want {
			t.Errorf("%s: IsBlank() = %v, want %v", name, got, tc.want)
		}
	}
}

func TestValue_ValuesReturnsCopy(t *testing.T) {
	v := tags.List("a", "b")
	values := v.Values()
	values[0] = "mutated"
	if got := v.Values()[0]; got != "a" {
		t.Fatalf("Value mutated through Values(): %q", got)
	}
}
