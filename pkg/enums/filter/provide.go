/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

// Package filter provides composable member filters for enumerations.
//
// A filter's Match method is directly usable as the predicate of
// enums.IEnum.Filter:
//
//	vines := fruit.Filter(filter.FieldEquals("type", "Vine").Match)
package filter

import "github.com/madison-web-solutions/go-enum/pkg/enums"

// And returns a filter matching members that match all of the specified
// filters.
func And(f1, f2 enums.IFilter, ff ...enums.IFilter) enums.IFilter {
	return makeAndFilter(f1, f2, ff...)
}

// Or returns a filter matching members that match at least one of the
// specified filters.
func Or(f1, f2 enums.IFilter, ff ...enums.IFilter) enums.IFilter {
	return makeOrFilter(f1, f2, ff...)
}

// Not returns a filter matching members that do not match the specified
// filter.
func Not(f enums.IFilter) enums.IFilter {
	return makeNotFilter(f)
}

// Names returns a filter matching members by name.
func Names(name string, names ...string) enums.IFilter {
	return makeNamesFilter(name, names...)
}

// HasField returns a filter matching members whose associated data has the
// specified field.
func HasField(field string) enums.IFilter {
	return makeHasFieldFilter(field)
}

// FieldEquals returns a filter matching members whose associated data field
// equals the specified value.
func FieldEquals(field string, value any) enums.IFilter {
	return makeFieldEqualsFilter(field, value)
}
