/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package filter

import (
	"fmt"

	"github.com/madison-web-solutions/go-enum/pkg/enums"
)

// # Supports:
//   - enums.IFilter
//   - fmt.Stringer
type andFilter struct {
	filters []enums.IFilter
}

func makeAndFilter(f1, f2 enums.IFilter, ff ...enums.IFilter) enums.IFilter {
	f := &andFilter{filters: []enums.IFilter{f1, f2}}
	f.filters = append(f.filters, ff...)
	return f
}

func (f andFilter) Match(m enums.Member) bool {
	for _, flt := range f.filters {
		if !flt.Match(m) {
			return false
		}
	}
	return true
}

func (f andFilter) String() string {
	s := "filter And("
	for i, flt := range f.filters {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(flt)
	}
	return s + ")"
}
