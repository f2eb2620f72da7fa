// Package config holds the settings shared by the binaries. Values come from
// the environment first and flags override them.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joeshaw/envdecode"

	"github.com/goliatone/go-fewshot/pkg/loader"
)

// Config lists the environment driven defaults.
type Config struct {
	// Schema is a schema document or a directory of documents. ENV: FEWSHOT_SCHEMA
	Schema string `env:"FEWSHOT_SCHEMA,default=schemas"`
	// Format selects the CLI output. ENV: FEWSHOT_FORMAT
	Format string `env:"FEWSHOT_FORMAT,default=text"`
	// LogLevel is one of debug, info, warn, error. ENV: FEWSHOT_LOG_LEVEL
	LogLevel string `env:"FEWSHOT_LOG_LEVEL,default=info"`
	// Sanitize strips markup from example texts. ENV: FEWSHOT_SANITIZE
	Sanitize bool `env:"FEWSHOT_SANITIZE,default=false"`
}

// Load decodes Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("config: decode environment: %w", err)
	}
	return cfg, nil
}

// ParseLevel maps a level name onto slog levels, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text logger writing to w at the named level.
func NewLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// LoadStore loads path, which may be a single document or a directory.
func LoadStore(ctx context.Context, path string, options ...loader.Option) (*loader.Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("config: schema path: %w", err)
	}
	if info.IsDir() {
		return loader.New(options...).LoadFS(ctx, os.DirFS(path))
	}
	return loader.New(options...).LoadFiles(ctx, os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
