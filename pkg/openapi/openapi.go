// Package openapi exports schema forms as OpenAPI 3 schemas so the shape
// documented to the model can be shared with API tooling.
package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-fewshot/pkg/schema"
)

// TypeExtension carries the custom type name of a field, when declared.
const TypeExtension = "x-fewshot-type"

const defaultVersion = "1.0.0"

// Schema converts an element into an OpenAPI schema. Forms become objects
// with one property per element; scalars become strings or numbers;
// selections become string enums over the option ids in declared order;
// objects accept arbitrary string properties. Multiple fields are wrapped in
// arrays.
func Schema(el schema.Element) *openapi3.Schema {
	if el == nil {
		return nil
	}

	var out *openapi3.Schema
	switch v := el.(type) {
	case *schema.Form:
		out = openapi3.NewObjectSchema()
		for _, child := range v.Elements() {
			out.WithProperty(child.ID(), Schema(child))
		}
	case *schema.Selection:
		out = openapi3.NewStringSchema()
		enum := make([]any, 0, len(v.Options()))
		for _, option := range v.Options() {
			enum = append(enum, option.ID())
		}
		out.WithEnum(enum...)
	case *schema.Object:
		out = openapi3.NewObjectSchema()
		out.WithAdditionalProperties(openapi3.NewStringSchema())
		for _, key := range v.Keys() {
			out.WithProperty(key, openapi3.NewStringSchema())
		}
	default:
		if el.Kind() == schema.KindNumber {
			out = openapi3.NewFloat64Schema()
		} else {
			out = openapi3.NewStringSchema()
		}
	}

	if el.Multiple() {
		out = openapi3.NewArraySchema().WithItems(out)
	}
	out.Description = el.Description()
	if custom := el.CustomTypeName(); custom != "" {
		out.Extensions = map[string]any{TypeExtension: custom}
	}
	return out
}

// DocumentOption configures Document.
type DocumentOption func(*documentConfig)

type documentConfig struct {
	title   string
	version string
}

// WithTitle overrides the document title, which defaults to the form id.
func WithTitle(title string) DocumentOption {
	return func(cfg *documentConfig) {
		cfg.title = title
	}
}

// WithVersion overrides the document version.
func WithVersion(version string) DocumentOption {
	return func(cfg *documentConfig) {
		cfg.version = version
	}
}

// Document wraps the schema of each form as a component of a minimal OpenAPI
// document and validates the result.
func Document(ctx context.Context, forms []*schema.Form, options ...DocumentOption) (*openapi3.T, error) {
	cfg := documentConfig{version: defaultVersion}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.title == "" && len(forms) > 0 && forms[0] != nil {
		cfg.title = forms[0].ID()
	}

	components := openapi3.Schemas{}
	for _, form := range forms {
		if form == nil {
			continue
		}
		if _, exists := components[form.ID()]; exists {
			return nil, fmt.Errorf("openapi: duplicate form %q", form.ID())
		}
		components[form.ID()] = openapi3.NewSchemaRef("", Schema(form))
	}

	doc := &openapi3.T{
		OpenAPI:    "3.0.3",
		Info:       &openapi3.Info{Title: cfg.title, Version: cfg.version},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: components},
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}
