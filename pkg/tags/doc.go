// Package tags writes the tagged-text wire format used for few-shot
// demonstrations. A single value renders as `<id>value</id>`, an ordered list
// renders as one tag per value, and a mapping renders as a wrapping tag whose
// children are emitted in ascending key order. No escaping is performed:
// callers must keep `<id>` and `</id>` for the ids in scope out of values.
package tags
