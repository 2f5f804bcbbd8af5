package grid

import (
	"math"
)

// DefaultRowKeyField is the record field used for row identity when no spec is given.
const DefaultRowKeyField = "id"

// RowKeySpec tells ResolveRowKey where a record's identity comes from.
// Func takes precedence over Field; the zero value reads DefaultRowKeyField.
type RowKeySpec struct {
	Field string
	Func  func(record Record) any
}

// RowKeyField returns a spec that reads identity from field.
func RowKeyField(field string) RowKeySpec {
	return RowKeySpec{Field: field}
}

// RowKeyFunc returns a spec that derives identity with fn.
func RowKeyFunc(fn func(record Record) any) RowKeySpec {
	return RowKeySpec{Func: fn}
}

// ResolveRowKey derives a stable identity for record at position index.
//
// A function spec is called and its result returned verbatim. Otherwise the spec's
// field is read; a non-empty string or a non-zero number is returned as-is and
// anything else (missing, nil, "", 0, NaN, other types) falls back to index.
func ResolveRowKey(record Record, index int, spec RowKeySpec) any {
	if spec.Func != nil {
		return spec.Func(record)
	}

	field := spec.Field
	if field == "" {
		field = DefaultRowKeyField
	}

	value, ok := record[field]
	if !ok || value == nil {
		return index
	}

	if s, isString := value.(string); isString {
		if s == "" {
			return index
		}
		return s
	}

	if n, isNumber := toFloat(value); isNumber {
		if n == 0 || math.IsNaN(n) {
			return index
		}
		return value
	}

	return index
}
