package schema_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fewshot/pkg/schema"
	"github.com/goliatone/go-fewshot/pkg/tags"
)

func buildPurchaseForm(t *testing.T) *schema.Form {
	t.Helper()

	price, err := schema.NewNumber("price", []schema.ExtractionExample{
		schema.Extract("It costs $10", "$10"),
		schema.Extract("free lunch", ""),
	}, schema.WithDescription("price paid"))
	if err != nil {
		t.Fatalf("new number: %v", err)
	}
	method, err := schema.NewSelection("method", []*schema.Option{
		mustOption(t, "card", "paid by visa"),
		mustOption(t, "cash", "paid in bills"),
	}, []string{"the weather is nice"})
	if err != nil {
		t.Fatalf("new selection: %v", err)
	}
	city, err := schema.NewText("city", []schema.ExtractionExample{schema.Extract("shipped to Boston", "Boston")})
	if err != nil {
		t.Fatalf("new text: %v", err)
	}
	shipping, err := schema.NewForm("shipping", []schema.Element{city}, nil, schema.WithDescription("where it goes"))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	address, err := schema.NewObject("address", []schema.ObjectExample{
		{Text: "1 Main St, Boston", Values: map[string]tags.Value{"street": tags.Single("1 Main St"), "city": tags.Single("Boston")}},
	})
	if err != nil {
		t.Fatalf("new object: %v", err)
	}

	form, err := schema.NewForm("purchase", []schema.Element{price, method, shipping, address}, []schema.ExtractionExample{
		schema.Extract("bought stuff", "stuff"),
	}, schema.WithDescription("a purchase"))
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return form
}

func TestDescriptors(t *testing.T) {
	form := buildPurchaseForm(t)

	want := []schema.Descriptor{
		{ID: "price", TypeName: "Number", Description: "price paid"},
		{ID: "method", TypeName: "Select[card,cash]"},
		{ID: "shipping", TypeName: "Form", Description: "where it goes"},
		{ID: "shipping.city", TypeName: "Text"},
		{ID: "address", TypeName: "Object"},
	}
	if diff := cmp.Diff(want, schema.Descriptors(form)); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectExamples(t *testing.T) {
	form := buildPurchaseForm(t)

	want := []schema.Example{
		{Text: "bought stuff", Output: "<purchase>stuff</purchase>"},
		{Text: "It costs $10", Output: "<price>$10</price>"},
		{Text: "free lunch", Output: ""},
		{Text: "paid by visa", Output: "<method>card</method>"},
		{Text: "paid in bills", Output: "<method>cash</method>"},
		{Text: "the weather is nice", Output: ""},
		{Text: "shipped to Boston", Output: "<city>Boston</city>"},
		{Text: "1 Main St, Boston", Output: "<address><city>Boston</city><street>1 Main St</street></address>"},
	}
	if diff := cmp.Diff(want, schema.CollectExamples(form)); diff != "" {
		t.Fatalf("examples mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_SkipChildrenAndErrors(t *testing.T) {
	form := buildPurchaseForm(t)

	var visited []string
	err := schema.Walk(form, func(path string, el schema.Element) error {
		visited = append(visited, path)
		if el.Kind() == schema.KindForm {
			return schema.SkipChildren
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
	if diff := cmp.Diff([]string{"price", "method", "shipping", "address"}, visited); diff != "" {
		t.Fatalf("visited mismatch (-want +got):\n%s", diff)
	}

	stop := errors.New("stop")
	err = schema.Walk(form, func(path string, _ schema.Element) error {
		if path == "method" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected stop error, got %v", err)
	}

	if err := schema.Walk(nil, nil); err != nil {
		t.Fatalf("walk nil form: %v", err)
	}
}
