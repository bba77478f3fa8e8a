/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import (
	"math"
	"strconv"
)

// CanonicalName normalizes a name-like value to its canonical string form.
//
// Strings are canonical as is. Signed and unsigned integers are rendered in
// decimal. Floats with an integral value are rendered as that integer, so
// 0.0 and negative zero both canonicalize to «0»; other finite floats use
// the shortest decimal form.
//
// Everything else is not name-like and returns false: nil, booleans, NaN,
// infinities and values of any other type. In particular no falsy value ever
// canonicalizes to «0» or to the empty string by accident.
func CanonicalName(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.FormatInt(int64(v), 10), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return canonicalFloat(float64(v), 32)
	case float64:
		return canonicalFloat(v, 64)
	}
	return "", false
}

const maxIntegralFloat = float64(1 << 62)

func canonicalFloat(f float64, bitSize int) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	// integral floats join the integer members, -0.0 included
	if f == math.Trunc(f) && math.Abs(f) < maxIntegralFloat {
		return strconv.FormatInt(int64(f), 10), true
	}
	return strconv.FormatFloat(f, 'g', -1, bitSize), true
}
