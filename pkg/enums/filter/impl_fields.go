/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package filter

import (
	"fmt"
	"reflect"

	"github.com/madison-web-solutions/go-enum/pkg/enums"
)

// hasFieldFilter matches members whose associated data has a field.
//
// # Supports:
//   - enums.IFilter
//   - fmt.Stringer
type hasFieldFilter struct {
	field string
}

func makeHasFieldFilter(field string) enums.IFilter {
	return &hasFieldFilter{field: field}
}

func (f hasFieldFilter) Match(m enums.Member) bool {
	_, ok := m.Field(f.field)
	return ok
}

func (f hasFieldFilter) String() string {
	return fmt.Sprintf("filter HasField «%s»", f.field)
}

// fieldEqualsFilter matches members by an associated data field value.
//
// # Supports:
//   - enums.IFilter
//   - fmt.Stringer
type fieldEqualsFilter struct {
	field string
	value any
}

func makeFieldEqualsFilter(field string, value any) enums.IFilter {
	return &fieldEqualsFilter{field: field, value: value}
}

func (f fieldEqualsFilter) Match(m enums.Member) bool {
	v, ok := m.Field(f.field)
	// DeepEqual: field values are opaque and may be uncomparable
	return ok && reflect.DeepEqual(v, f.value)
}

func (f fieldEqualsFilter) String() string {
	return fmt.Sprintf("filter FieldEquals «%s» = «%v»", f.field, f.value)
}
