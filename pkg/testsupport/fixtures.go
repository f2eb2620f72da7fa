// Package testsupport provides fixture and golden-file helpers shared by the
// package tests.
package testsupport

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-fewshot/pkg/loader"
	"github.com/goliatone/go-fewshot/pkg/schema"
)

// MustLoadStore loads every schema document under dir.
func MustLoadStore(t *testing.T, dir string, options ...loader.Option) *loader.Store {
	t.Helper()

	store, err := loader.New(options...).LoadFS(context.Background(), os.DirFS(dir))
	if err != nil {
		t.Fatalf("load schemas: %v", err)
	}
	return store
}

// MustForm loads the schema documents under dir and returns the form id.
func MustForm(t *testing.T, dir, id string) *schema.Form {
	t.Helper()

	form, ok := MustLoadStore(t, dir).Form(id)
	if !ok {
		t.Fatalf("form %q not found in %s", id, dir)
	}
	return form
}

// WriteGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// MustLoadGolden decodes a JSON golden file into out.
func MustLoadGolden(t *testing.T, path string, out any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
