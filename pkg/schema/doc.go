// Package schema models the inputs that should be extracted from free text:
// scalar extraction fields (Text, Number, Date, TimePeriod, NumericRange),
// selections made of options, opaque nested objects, and forms that group
// other elements. Every entity is built through a New* constructor that
// validates identifiers and returns an immutable value; descriptors and
// compiled demonstrations are pure reads over that value and are safe for
// concurrent use.
package schema
