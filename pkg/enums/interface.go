/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

// Declaration supplies the definition of an enumeration type.
//
// A caller-defined (usually empty) struct type implements it. The struct's
// Go type name labels the enumeration and its type identity keys the
// process-wide cache used by Of.
type Declaration interface {
	// Declares the members of the enumeration in definition order.
	Declare(IDeclarer)
}

// Ordered collector of member definitions.
//
// Ref. impl_declare.go for implementation.
type IDeclarer interface {
	// Adds a member with the specified name.
	//
	// Acceptable name values are strings, signed and unsigned integers and
	// floats; numeric names are stored in canonical decimal form, see
	// CanonicalName. Empty, nil, boolean and duplicate names make the
	// definition invalid.
	Add(name any) IMemberDeclarer
}

// Appends associated data fields to the member just added.
//
// Ref. impl_declare.go for implementation.
type IMemberDeclarer interface {
	IDeclarer

	// Adds an associated data field. Field order is preserved.
	//
	// Empty field names, the reserved name «name» and duplicates within one
	// member make the definition invalid. Field values are opaque to the
	// enumeration and are stored as is.
	Field(name string, value any) IMemberDeclarer
}

// Built enumeration: a closed, ordered, read-only set of named members with
// associated data.
//
// Identity is nominal. Two enumerations with identically named members are
// never interchangeable, their members never compare equal.
//
// Ref. impl.go for implementation.
type IEnum interface {
	// Returns enumeration name.
	Name() string

	// Returns count of members.
	MemberCount() int

	// Returns all member names in definition order.
	Names() []string

	// Returns all members in definition order.
	Members() []Member

	// Returns members matching the predicate, preserving definition order.
	//
	// The predicate is called once per member, in definition order.
	Filter(func(Member) bool) []Member

	// Returns whether the value names a member of this enumeration.
	//
	// Accepts members of this enumeration and the name-like values of
	// CanonicalName. nil never names a member.
	Has(value any) bool

	// Returns the named member.
	//
	// If there is no such member, returns ErrUnknownMemberError.
	Named(name string) (Member, error)

	// Returns the named member.
	//
	// # Panics:
	//   - if there is no such member.
	MustNamed(name string) Member

	// Returns the member named by the value and true. Never fails: if the
	// value (including nil) names no member, returns NullMember and false.
	//
	// Accepts the same values as Has.
	MaybeNamed(value any) (Member, bool)

	// Normalizes the value to a canonical member name.
	//
	// Members of this enumeration resolve to their name; name-like values
	// are membership-tested in canonical form. Everything else, including
	// members of other enumerations, returns false.
	NameOf(value any) (string, bool)

	// Returns a member selected uniformly at random.
	//
	// If the enumeration has no members, returns ErrEmptyEnumError.
	Random() (Member, error)
}

// Member filter.
//
// Ref. filter subpackage for composable implementations.
type IFilter interface {
	// Returns whether the member matches the filter.
	Match(Member) bool
}
