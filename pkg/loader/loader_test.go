package loader_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fewshot/pkg/loader"
	"github.com/goliatone/go-fewshot/pkg/schema"
)

func TestLoadFS_Testdata(t *testing.T) {
	store, err := loader.New().LoadFS(context.Background(), os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"contact", "purchase"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if got := store.Source("purchase"); got != "purchase.yaml" {
		t.Fatalf("source = %q", got)
	}

	purchase, ok := store.Form("purchase")
	if !ok {
		t.Fatalf("expected purchase form")
	}
	if purchase.Description() != "Details of a purchase" {
		t.Fatalf("description = %q", purchase.Description())
	}

	wantDescriptors := []schema.Descriptor{
		{ID: "price", TypeName: "Number", Description: "Amount paid"},
		{ID: "method", TypeName: "Multiple Select[card,cash]"},
		{ID: "address", TypeName: "Object"},
		{ID: "delivery", TypeName: "Form", Description: "Shipping details"},
		{ID: "delivery.window", TypeName: "TimePeriod"},
	}
	if diff := cmp.Diff(wantDescriptors, schema.Descriptors(purchase)); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}

	wantExamples := []schema.Example{
		{Text: "I bought a lamp", Output: "<purchase>lamp</purchase>"},
		{Text: "It costs $10", Output: "<price>$10</price>"},
		{Text: "nothing to see", Output: ""},
		{Text: "$1 then $2", Output: "<price>$1</price><price>$2</price>"},
		{Text: "paid by visa", Output: "<method>card</method>"},
		{Text: "paid in bills", Output: "<method>cash</method>"},
		{Text: "the weather is nice", Output: ""},
		{Text: "1 Main St, Boston", Output: "<address><city>Boston</city><street>1 Main St</street></address>"},
		{Text: "after dinner", Output: "<window>after dinner</window>"},
	}
	if diff := cmp.Diff(wantExamples, schema.CollectExamples(purchase)); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}

	contact, _ := store.Form("contact")
	name, ok := contact.Element("name")
	if !ok {
		t.Fatalf("expected name element")
	}
	if name.CustomTypeName() != "PersonName" {
		t.Fatalf("custom type name = %q", name.CustomTypeName())
	}
	wantNames := []schema.Example{
		{Text: "I am Alice", Output: "<name>Alice</name>"},
		{Text: "no one", Output: ""},
		{Text: "Bob and Carol", Output: "<name>Bob</name><name>Carol</name>"},
	}
	if diff := cmp.Diff(wantNames, name.Examples()); diff != "" {
		t.Fatalf("name examples mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := loader.New().LoadFS(context.Background(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
}

func TestLoadFS_DuplicateForms(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("forms:\n  - id: dup\n")},
		"b.yaml": {Data: []byte("forms:\n  - id: dup\n")},
	}
	_, err := loader.New().LoadFS(context.Background(), fsys)
	if err == nil || !strings.Contains(err.Error(), `duplicate form "dup"`) {
		t.Fatalf("expected duplicate form error, got %v", err)
	}
}

func TestLoadFS_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := loader.New().LoadFS(ctx, fstest.MapFS{"a.yaml": {Data: []byte("forms:\n  - id: a\n")}})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
		wantMsg string
	}{
		{name: "empty", doc: "   ", wantMsg: "is empty"},
		{name: "no forms", doc: "forms: []", wantMsg: "defines no forms"},
		{name: "invalid form id", doc: "forms:\n  - id: Bad\n", wantErr: schema.ErrInvalidIdentifier},
		{
			name:    "invalid nested id",
			doc:     "forms:\n  - id: a\n    elements:\n      - kind: text\n        id: 9lives\n",
			wantErr: schema.ErrInvalidIdentifier,
			wantMsg: `element "a.9lives"`,
		},
		{
			name:    "duplicate option",
			doc:     "forms:\n  - id: a\n    elements:\n      - kind: selection\n        id: s\n        options:\n          - id: x\n          - id: x\n",
			wantErr: schema.ErrDuplicateIdentifier,
		},
		{
			name:    "unknown kind",
			doc:     "forms:\n  - id: a\n    elements:\n      - kind: color\n        id: c\n",
			wantMsg: `unknown kind "color"`,
		},
		{
			name:    "missing kind",
			doc:     "forms:\n  - id: a\n    elements:\n      - id: c\n",
			wantMsg: "kind is required",
		},
		{
			name:    "root must be form",
			doc:     "forms:\n  - id: a\n    kind: text\n",
			wantMsg: "want form",
		},
		{
			name:    "mapping value",
			doc:     "forms:\n  - id: a\n    elements:\n      - kind: text\n        id: t\n        examples:\n          - text: x\n            value: {a: b}\n",
			wantMsg: "value must be a string or a list of strings",
		},
		{
			name:    "json mapping value",
			doc:     `{"forms": [{"id": "a", "elements": [{"kind": "text", "id": "t", "examples": [{"text": "x", "value": {"a": "b"}}]}]}]}`,
			wantMsg: "value must be a string or a list of strings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.New().Parse([]byte(tt.doc), "doc.yaml")
			if err == nil {
				t.Fatalf("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestParse_KindAliases(t *testing.T) {
	doc := `
forms:
  - id: a
    elements:
      - {kind: TimePeriod, id: t1}
      - {kind: time-period, id: t2}
      - {kind: numeric_range, id: r}
      - {kind: Date, id: d}
`
	forms, err := loader.New().Parse([]byte(doc), "doc.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var kinds []schema.Kind
	for _, el := range forms[0].Elements() {
		kinds = append(kinds, el.Kind())
	}
	want := []schema.Kind{schema.KindTimePeriod, schema.KindTimePeriod, schema.KindNumericRange, schema.KindDate}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Sanitizer(t *testing.T) {
	doc := `
forms:
  - id: a
    elements:
      - kind: text
        id: name
        examples:
          - text: "<p>I am <b>Alice</b></p>"
            value: "<i>Alice</i>"
      - kind: selection
        id: s
        options:
          - id: x
            examples: ["<em>pick x</em>"]
        nullExamples: ["<div>none</div>"]
`
	forms, err := loader.New(loader.WithSanitizer(true)).Parse([]byte(doc), "doc.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []schema.Example{
		{Text: "I am Alice", Output: "<name>Alice</name>"},
		{Text: "pick x", Output: "<s>x</s>"},
		{Text: "none", Output: ""},
	}
	if diff := cmp.Diff(want, schema.CollectExamples(forms[0])); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}

	raw, err := loader.New().Parse([]byte(doc), "doc.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	name, _ := raw[0].Element("name")
	if got := name.Examples()[0].Text; got != "<p>I am <b>Alice</b></p>" {
		t.Fatalf("text altered without sanitizer: %q", got)
	}
}

func TestLoadFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"schema.txt": {Data: []byte("forms:\n  - id: plain\n")},
		"other.yaml": {Data: []byte("forms:\n  - id: other\n")},
	}
	store, err := loader.New().LoadFiles(context.Background(), fsys, "schema.txt")
	if err != nil {
		t.Fatalf("load files: %v", err)
	}
	if diff := cmp.Diff([]string{"plain"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	if _, err := loader.New().LoadFiles(context.Background(), fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
