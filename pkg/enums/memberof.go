/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import "strconv"

// MemberOf is a member bound to its declaration type, for use as a struct
// field or map key at a serialization boundary.
//
// It marshals to the bare member name and re-validates the name against D's
// current definition on unmarshal, so a stored name that is no longer a
// member fails with ErrUnknownMemberError instead of resurrecting silently.
type MemberOf[D Declaration] struct {
	Member
}

// Returns the member wrapped for (un)marshaling against D's enumeration.
func BindMember[D Declaration](m Member) MemberOf[D] {
	return MemberOf[D]{m}
}

func (m *MemberOf[D]) UnmarshalText(text []byte) error {
	v, err := Of[D]().Named(string(text))
	if err != nil {
		return err
	}
	m.Member = v
	return nil
}

func (m *MemberOf[D]) UnmarshalJSON(text []byte) error {
	m.Member = NullMember

	str, err := strconv.Unquote(string(text))
	if err != nil {
		return err
	}
	return m.UnmarshalText([]byte(str))
}
