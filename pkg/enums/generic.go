/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

// Package-level sugar over Of: each function resolves D's enumeration and
// forwards to the IEnum method of the same name.

// Returns all member names of D's enumeration in definition order.
func Names[D Declaration]() []string { return Of[D]().Names() }

// Returns all members of D's enumeration in definition order.
func Members[D Declaration]() []Member { return Of[D]().Members() }

// Returns members of D's enumeration matching the predicate, preserving
// definition order.
func Filter[D Declaration](pred func(Member) bool) []Member { return Of[D]().Filter(pred) }

// Returns whether the value names a member of D's enumeration.
func Has[D Declaration](value any) bool { return Of[D]().Has(value) }

// Returns the named member of D's enumeration, or ErrUnknownMemberError.
func Named[D Declaration](name string) (Member, error) { return Of[D]().Named(name) }

// Returns the named member of D's enumeration.
//
// # Panics:
//   - if there is no such member.
func MustNamed[D Declaration](name string) Member { return Of[D]().MustNamed(name) }

// Returns the member of D's enumeration named by the value and true, or
// NullMember and false. Never fails.
func MaybeNamed[D Declaration](value any) (Member, bool) { return Of[D]().MaybeNamed(value) }

// Normalizes the value to a canonical member name of D's enumeration.
func NameOf[D Declaration](value any) (string, bool) { return Of[D]().NameOf(value) }

// Returns a member of D's enumeration selected uniformly at random, or
// ErrEmptyEnumError.
func Random[D Declaration]() (Member, error) { return Of[D]().Random() }
