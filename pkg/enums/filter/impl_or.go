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
type orFilter struct {
	filters []enums.IFilter
}

func makeOrFilter(f1, f2 enums.IFilter, ff ...enums.IFilter) enums.IFilter {
	f := &orFilter{filters: []enums.IFilter{f1, f2}}
	f.filters = append(f.filters, ff...)
	return f
}

func (f orFilter) Match(m enums.Member) bool {
	for _, flt := range f.filters {
		if flt.Match(m) {
			return true
		}
	}
	return false
}

func (f orFilter) String() string {
	s := "filter Or("
	for i, flt := range f.filters {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(flt)
	}
	return s + ")"
}
