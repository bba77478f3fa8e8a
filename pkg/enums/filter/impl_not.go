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
type notFilter struct {
	f enums.IFilter
}

func makeNotFilter(f enums.IFilter) enums.IFilter {
	return &notFilter{f: f}
}

func (f notFilter) Match(m enums.Member) bool {
	return !f.f.Match(m)
}

func (f notFilter) String() string {
	return fmt.Sprintf("filter Not(%v)", f.f)
}
