package schema

import "errors"

var (
	// ErrInvalidIdentifier is returned when an id does not match
	// ValidIdentifierPattern.
	ErrInvalidIdentifier = errors.New("schema: invalid identifier")
	// ErrDuplicateIdentifier is returned when two options of a selection, or
	// two elements of a form, share an id.
	ErrDuplicateIdentifier = errors.New("schema: duplicate identifier")
	// ErrMissingOptions is returned when a selection is built without options.
	ErrMissingOptions = errors.New("schema: selection requires at least one option")
	// ErrNilElement is returned when a nil option or element is supplied.
	ErrNilElement = errors.New("schema: nil element")
	// ErrUnsupportedKind is returned when NewExtraction receives a kind that
	// is not a scalar extraction kind.
	ErrUnsupportedKind = errors.New("schema: unsupported kind")
)
