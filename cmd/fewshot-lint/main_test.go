package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	t.Setenv("FEWSHOT_LOG_LEVEL", "error")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "violations",
			args:     []string{filepath.Join("testdata", "leaky.yaml")},
			wantCode: 1,
			wantOut:  "leaky.yaml: leaky -> name [tag-collision] example 0 text contains <name>",
		},
		{
			name:     "clean",
			args:     []string{filepath.Join("testdata", "clean.yaml")},
			wantCode: 0,
		},
		{
			name:     "missing",
			args:     []string{filepath.Join("testdata", "missing.yaml")},
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code, _ := run(context.Background(), tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stdout: %s)", code, tt.wantCode, stdout.String())
			}
			if tt.wantOut != "" && !strings.Contains(stdout.String(), tt.wantOut) {
				t.Fatalf("output missing %q:\n%s", tt.wantOut, stdout.String())
			}
		})
	}
}
