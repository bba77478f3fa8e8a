/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import (
	"reflect"

	"github.com/untillpro/goutils/logger"

	"github.com/madison-web-solutions/go-enum/pkg/enums/internal/typecache"
)

// New builds an enumeration with the specified name from the declaration
// function.
//
// The name only labels the enumeration; identity is the returned object
// itself, so two New-built enumerations never share members even with equal
// names. Use Of for the declaration-typed, process-wide variant.
//
// If the declaration is invalid, returns ErrInvalidDefinitionError with
// every defect joined.
func New(name string, declare func(IDeclarer)) (IEnum, error) {
	if name == "" {
		return nil, ErrInvalidDefinition("enumeration name cannot be empty")
	}

	d := newDeclarer(name)
	declare(d)
	e, err := d.build()
	if err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbose("enum «"+name+"» loaded,", e.MemberCount(), "members")
	}
	return e, nil
}

// MustNew is like New.
//
// # Panics:
//   - if the declaration is invalid.
func MustNew(name string, declare func(IDeclarer)) IEnum {
	e, err := New(name, declare)
	if err != nil {
		panic(err)
	}
	return e
}

var enumTypes = typecache.New[reflect.Type, IEnum]()

// Of returns the process-wide enumeration declared by D.
//
// The first call for a given D runs D's Declare exactly once and caches the
// built enumeration under D's type identity; concurrent first calls are
// serialized. Every later call returns the same object, so members obtained
// through any call compare equal.
//
// D should be a (usually empty) named struct type; its type name labels the
// enumeration.
//
// # Panics:
//   - if the declaration is invalid. No cache entry is made, so every call
//     with the same D fails identically.
func Of[D Declaration]() IEnum {
	t := reflect.TypeOf((*D)(nil)).Elem()
	if e, ok := enumTypes.Get(t); ok {
		return e
	}

	e, err := enumTypes.Ensure(t, func() (IEnum, error) {
		name := t.Name()
		if name == "" {
			return nil, ErrInvalidDefinition("declaration type %v cannot name an enumeration", t)
		}
		var decl D
		return New(name, decl.Declare)
	})
	if err != nil {
		panic(err)
	}
	return e
}
