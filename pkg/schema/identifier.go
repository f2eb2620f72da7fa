package schema

import (
	"fmt"
	"regexp"
)

// ValidIdentifierPattern restricts ids to names usable both as tag names in
// the wire format and as TypeScript identifiers.
const ValidIdentifierPattern = `^[a-z_][0-9a-z_]*$`

var identifierPattern = regexp.MustCompile(ValidIdentifierPattern)

// ValidateIdentifier returns an error wrapping ErrInvalidIdentifier unless id
// matches ValidIdentifierPattern.
func ValidateIdentifier(id string) error {
	if identifierPattern.MatchString(id) {
		return nil
	}
	return fmt.Errorf("%w: %q, only lower cased a-z, _ or the digits 0-9 are allowed and it must not start with a digit", ErrInvalidIdentifier, id)
}
