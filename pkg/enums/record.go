/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import "slices"

// Record is the ordered, read-only associated data of one member.
//
// The enumeration owns the record; members borrow it by name and never copy
// it. Once the enumeration is built the record is never changed.
type Record struct {
	names  []string
	values map[string]any
}

var nullRecord = Record{}

// Returns fields count.
func (r Record) Len() int { return len(r.names) }

// Returns field names in definition order.
func (r Record) FieldNames() []string { return slices.Clone(r.names) }

// Returns field value and true, or nil and false if there is no such field.
func (r Record) Field(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Enumerates all fields in definition order.
func (r Record) Fields(cb func(name string, value any)) {
	for _, n := range r.names {
		cb(n, r.values[n])
	}
}

// Returns field value as string.
//
// If the field exists but holds another type, ok is true and
// ErrFieldTypeMismatchError is returned.
func (r Record) AsString(name string) (val string, ok bool, err error) {
	switch v := r.values[name].(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	default:
		return "", true, ErrFieldTypeMismatch("field «%s» must be a string", name)
	}
}

// Returns field value as int64. Integer and integral float values convert.
func (r Record) AsInt64(name string) (val int64, ok bool, err error) {
	switch v := r.values[name].(type) {
	case nil:
		return 0, false, nil
	case int:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case float64:
		return int64(v), true, nil
	default:
		return 0, true, ErrFieldTypeMismatch("field «%s» must be an int64", name)
	}
}

// Returns field value as float64. Integer values convert.
func (r Record) AsFloat64(name string) (val float64, ok bool, err error) {
	switch v := r.values[name].(type) {
	case nil:
		return 0, false, nil
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	default:
		return 0, true, ErrFieldTypeMismatch("field «%s» must be a float64", name)
	}
}

// Returns field value as bool.
func (r Record) AsBool(name string) (val bool, ok bool, err error) {
	switch v := r.values[name].(type) {
	case nil:
		return false, false, nil
	case bool:
		return v, true, nil
	default:
		return false, true, ErrFieldTypeMismatch("field «%s» must be a boolean", name)
	}
}
