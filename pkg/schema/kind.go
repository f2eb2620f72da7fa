package schema

// Kind enumerates the concrete input variants. The string value doubles as
// the descriptor name used by TypeName.
type Kind string

const (
	KindDate         Kind = "Date"
	KindNumber       Kind = "Number"
	KindTimePeriod   Kind = "TimePeriod"
	KindNumericRange Kind = "NumericRange"
	KindText         Kind = "Text"
	KindOption       Kind = "Option"
	KindSelection    Kind = "Selection"
	KindObject       Kind = "Object"
	KindForm         Kind = "Form"
)

// String returns the descriptor name of the kind.
func (k Kind) String() string { return string(k) }

// IsScalar reports whether k is a leaf extraction kind.
func (k Kind) IsScalar() bool {
	switch k {
	case KindDate, KindNumber, KindTimePeriod, KindNumericRange, KindText:
		return true
	default:
		return false
	}
}

// ScalarKinds lists the leaf extraction kinds in a stable order.
func ScalarKinds() []Kind {
	return []Kind{KindDate, KindNumber, KindTimePeriod, KindNumericRange, KindText}
}
