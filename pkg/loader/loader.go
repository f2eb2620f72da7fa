package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-fewshot/pkg/schema"
	"github.com/goliatone/go-fewshot/pkg/tags"
)

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used to report loaded documents.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSanitizer strips markup from example texts and values before the
// schema is built. Tagged content in examples would otherwise collide with
// the wire format.
func WithSanitizer(enabled bool) Option {
	return func(l *Loader) {
		l.sanitize = enabled
	}
}

// Loader parses schema documents into forms.
type Loader struct {
	logger   *slog.Logger
	sanitize bool
}

// New constructs a Loader.
func New(options ...Option) *Loader {
	l := &Loader{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// LoadFS walks fsys and parses every .json, .yaml and .yml file. Form ids
// must be unique across files. When fsys is nil the store is empty.
func (l *Loader) LoadFS(ctx context.Context, fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}
		return l.loadFile(fsys, path, store)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFiles parses the named documents of fsys regardless of extension.
func (l *Loader) LoadFiles(ctx context.Context, fsys fs.FS, paths ...string) (*Store, error) {
	store := newStore()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.loadFile(fsys, path, store); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (l *Loader) loadFile(fsys fs.FS, path string, store *Store) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("loader: read %s: %w", path, err)
	}
	forms, err := l.Parse(data, path)
	if err != nil {
		return err
	}
	for _, form := range forms {
		if err := store.add(form, path); err != nil {
			return err
		}
	}
	l.logger.Debug("schema document loaded", slog.String("file", path), slog.Int("forms", len(forms)))
	return nil
}

// Parse decodes a single document. source names the document in errors.
func (l *Loader) Parse(data []byte, source string) ([]*schema.Form, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	if len(doc.Forms) == 0 {
		return nil, fmt.Errorf("loader: file %s defines no forms", source)
	}

	forms := make([]*schema.Form, 0, len(doc.Forms))
	for i, raw := range doc.Forms {
		if raw.Kind != "" && normalizeKind(raw.Kind) != "form" {
			return nil, fmt.Errorf("loader: file %s: forms[%d] has kind %q, want form", source, i, raw.Kind)
		}
		raw.Kind = "form"
		el, err := l.buildElement(raw, "")
		if err != nil {
			return nil, fmt.Errorf("loader: file %s: %w", source, err)
		}
		forms = append(forms, el.(*schema.Form))
	}
	return forms, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return documentFile{}, fmt.Errorf("loader: file %s is empty", source)
	}

	var doc documentFile
	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return documentFile{}, fmt.Errorf("loader: parse %s: %w", source, err)
		}
		return doc, nil
	}
	if err := yaml.Unmarshal(trimmed, &doc); err != nil {
		return documentFile{}, fmt.Errorf("loader: parse %s: %w", source, err)
	}
	return doc, nil
}

func (l *Loader) buildElement(raw elementFile, parent string) (schema.Element, error) {
	path := raw.ID
	if parent != "" {
		path = parent + "." + raw.ID
	}
	options := []schema.FieldOption{
		schema.WithDescription(raw.Description),
		schema.WithMultiple(raw.Multiple),
		schema.WithCustomTypeName(raw.CustomTypeName),
	}

	var (
		el  schema.Element
		err error
	)
	switch kind := normalizeKind(raw.Kind); kind {
	case "form":
		el, err = l.buildForm(raw, path, options)
	case "selection":
		el, err = l.buildSelection(raw, options)
	case "object":
		el, err = schema.NewObject(raw.ID, l.objectExamples(raw.Examples), options...)
	case "":
		return nil, fmt.Errorf("element %q: kind is required", path)
	default:
		scalar, ok := scalarKinds[kind]
		if !ok {
			return nil, fmt.Errorf("element %q: unknown kind %q", path, raw.Kind)
		}
		el, err = schema.NewExtraction(scalar, raw.ID, l.extractionExamples(raw.Examples), options...)
	}
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", path, err)
	}
	return el, nil
}

func (l *Loader) buildForm(raw elementFile, path string, options []schema.FieldOption) (schema.Element, error) {
	elements := make([]schema.Element, 0, len(raw.Elements))
	for _, child := range raw.Elements {
		el, err := l.buildElement(child, path)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	return schema.NewForm(raw.ID, elements, l.extractionExamples(raw.Examples), options...)
}

func (l *Loader) buildSelection(raw elementFile, options []schema.FieldOption) (schema.Element, error) {
	choices := make([]*schema.Option, 0, len(raw.Options))
	for _, rawOption := range raw.Options {
		option, err := schema.NewOption(rawOption.ID, l.cleanAll(rawOption.Examples), schema.WithDescription(rawOption.Description))
		if err != nil {
			return nil, err
		}
		choices = append(choices, option)
	}
	return schema.NewSelection(raw.ID, choices, l.cleanAll(raw.NullExamples), options...)
}

func (l *Loader) extractionExamples(raw []exampleFile) []schema.ExtractionExample {
	out := make([]schema.ExtractionExample, 0, len(raw))
	for _, ex := range raw {
		out = append(out, schema.ExtractionExample{Text: l.clean(ex.Text), Value: l.cleanValue(ex.Value.value)})
	}
	return out
}

func (l *Loader) objectExamples(raw []exampleFile) []schema.ObjectExample {
	out := make([]schema.ObjectExample, 0, len(raw))
	for _, ex := range raw {
		values := make(map[string]tags.Value, len(ex.Values))
		for key, value := range ex.Values {
			values[key] = l.cleanValue(value.value)
		}
		out = append(out, schema.ObjectExample{Text: l.clean(ex.Text), Values: values})
	}
	return out
}

var scalarKinds = map[string]schema.Kind{
	"text":         schema.KindText,
	"number":       schema.KindNumber,
	"date":         schema.KindDate,
	"timeperiod":   schema.KindTimePeriod,
	"numericrange": schema.KindNumericRange,
}

// normalizeKind accepts `time_period`, `TimePeriod` and `timeperiod` alike.
func normalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	kind = strings.ReplaceAll(kind, "_", "")
	return strings.ReplaceAll(kind, "-", "")
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
