/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import (
	"fmt"
	"math/rand"
	"slices"
)

// # Implements:
//   - IEnum
type enum struct {
	name  string
	names []string
	data  map[string]Record
}

func (e *enum) Name() string { return e.name }

func (e *enum) MemberCount() int { return len(e.names) }

func (e *enum) Names() []string { return slices.Clone(e.names) }

func (e *enum) Members() []Member {
	mm := make([]Member, len(e.names))
	for i, n := range e.names {
		mm[i] = Member{e, n}
	}
	return mm
}

func (e *enum) Filter(pred func(Member) bool) []Member {
	mm := []Member{}
	for _, n := range e.names {
		if m := (Member{e, n}); pred(m) {
			mm = append(mm, m)
		}
	}
	return mm
}

func (e *enum) Has(value any) bool {
	_, ok := e.NameOf(value)
	return ok
}

func (e *enum) Named(name string) (Member, error) {
	if _, ok := e.data[name]; ok {
		return Member{e, name}, nil
	}
	return NullMember, ErrUnknownMember("no member «%s» in %v", name, e)
}

func (e *enum) MustNamed(name string) Member {
	m, err := e.Named(name)
	if err != nil {
		panic(err)
	}
	return m
}

func (e *enum) MaybeNamed(value any) (Member, bool) {
	if name, ok := e.NameOf(value); ok {
		return Member{e, name}, true
	}
	return NullMember, false
}

func (e *enum) NameOf(value any) (string, bool) {
	if m, ok := value.(interface {
		Enum() IEnum
		Name() string
	}); ok {
		// members of other enumerations are not names here
		if m.Enum() == IEnum(e) {
			return m.Name(), true
		}
		return "", false
	}
	name, ok := CanonicalName(value)
	if !ok {
		return "", false
	}
	if _, ok := e.data[name]; ok {
		return name, true
	}
	return "", false
}

func (e *enum) Random() (Member, error) {
	if len(e.names) == 0 {
		return NullMember, ErrEmptyEnum("%v has no members", e)
	}
	return Member{e, e.names[rand.Intn(len(e.names))]}, nil
}

func (e *enum) String() string { return fmt.Sprintf("enum «%s»", e.name) }
