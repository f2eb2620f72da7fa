// Package fewshot exposes the common entry points of the module: loading
// schema documents and compiling a form into the descriptors and
// demonstrations a prompt builder embeds.
package fewshot

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-fewshot/pkg/loader"
	"github.com/goliatone/go-fewshot/pkg/schema"
)

// Demonstrations bundles what a prompt builder needs from a form, both in a
// stable order.
type Demonstrations struct {
	FormID      string              `json:"formId"`
	Descriptors []schema.Descriptor `json:"descriptors"`
	Examples    []schema.Example    `json:"examples"`
}

// Compile returns the descriptors and demonstrations of form.
func Compile(form *schema.Form) Demonstrations {
	if form == nil {
		return Demonstrations{}
	}
	return Demonstrations{
		FormID:      form.ID(),
		Descriptors: schema.Descriptors(form),
		Examples:    schema.CollectExamples(form),
	}
}

// NewLoader constructs a schema document loader.
func NewLoader(options ...loader.Option) *loader.Loader {
	return loader.New(options...)
}

// LoadForms loads every schema document in fsys.
func LoadForms(ctx context.Context, fsys fs.FS, options ...loader.Option) (*loader.Store, error) {
	return loader.New(options...).LoadFS(ctx, fsys)
}
