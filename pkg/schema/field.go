package schema

// Field is the read-only contract shared by every input variant.
type Field interface {
	ID() string
	Description() string
	Multiple() bool
	// CustomTypeName returns the override declared for external renderers.
	// TypeName never consults it.
	CustomTypeName() string
	Kind() Kind
	TypeName() string
}

// Element is a Field that can be placed inside a Form. Options are Fields but
// not Elements: they only exist inside a Selection.
type Element interface {
	Field
	// Examples compiles the declared demonstrations into (text, output) pairs.
	Examples() []Example
	element()
}

// Example is one demonstration: given Text, the expected tagged Output. An
// empty Output means nothing should be extracted.
type Example struct {
	Text   string `json:"text"`
	Output string `json:"output"`
}

// FieldOption configures the shared attributes of a field at construction.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	description    string
	multiple       bool
	customTypeName string
}

// WithDescription documents what the field is about.
func WithDescription(description string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.description = description
	}
}

// WithMultiple allows the field to bind more than one value per example.
// Options ignore it.
func WithMultiple(multiple bool) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.multiple = multiple
	}
}

// WithCustomTypeName records a type name override for external renderers.
func WithCustomTypeName(name string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.customTypeName = name
	}
}

type base struct {
	id             string
	description    string
	multiple       bool
	customTypeName string
	kind           Kind
}

func newBase(kind Kind, id string, options []FieldOption) (base, error) {
	if err := ValidateIdentifier(id); err != nil {
		return base{}, err
	}
	var cfg fieldConfig
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return base{
		id:             id,
		description:    cfg.description,
		multiple:       cfg.multiple,
		customTypeName: cfg.customTypeName,
		kind:           kind,
	}, nil
}

func (b base) ID() string             { return b.id }
func (b base) Description() string    { return b.description }
func (b base) Multiple() bool         { return b.multiple }
func (b base) CustomTypeName() string { return b.customTypeName }
func (b base) Kind() Kind             { return b.kind }

// TypeName returns the kind name, prefixed with "Multiple " when the field
// accepts several values.
func (b base) TypeName() string {
	return qualify(b.kind.String(), b.multiple)
}

func qualify(name string, multiple bool) string {
	if multiple {
		return "Multiple " + name
	}
	return name
}
