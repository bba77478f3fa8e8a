/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package filter

import (
	"fmt"
	"slices"

	"github.com/madison-web-solutions/go-enum/pkg/enums"
)

// namesFilter matches members by their names.
//
// # Supports:
//   - enums.IFilter
//   - fmt.Stringer
type namesFilter struct {
	names []string
}

func makeNamesFilter(name string, names ...string) enums.IFilter {
	f := &namesFilter{names: []string{name}}
	f.names = append(f.names, names...)
	return f
}

func (f namesFilter) Match(m enums.Member) bool {
	return slices.Contains(f.names, m.Name())
}

func (f namesFilter) String() string {
	return fmt.Sprintf("filter Names %v", f.names)
}
