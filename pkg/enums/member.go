/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import (
	"encoding/json"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// Member is one named member of one enumeration.
//
// Members are cheap comparable handles: a member carries its name and
// borrows associated data from its enumeration. Independently obtained
// members with the same enumeration and name compare equal with ==; copies
// compare equal to the original. Members of different enumerations are never
// equal, even when names and data coincide.
type Member struct {
	enum *enum
	name string
}

// NullMember is the absent member value.
var NullMember = Member{}

// Field is one name/value pair of a structured export.
type Field struct {
	Name  string
	Value any
}

// Returns member name.
func (m Member) Name() string { return m.name }

// Returns member name. The canonical string form of a member is its name.
func (m Member) String() string { return m.name }

// Returns the enumeration this member belongs to, or nil for NullMember.
func (m Member) Enum() IEnum {
	if m.enum == nil {
		return nil
	}
	return m.enum
}

func (m Member) IsZero() bool { return m == NullMember }

// Returns the member's associated data record, shared with every other
// member handle of the same name.
func (m Member) Data() Record {
	if m.enum == nil {
		return nullRecord
	}
	return m.enum.data[m.name]
}

// Returns associated data field value and true, or nil and false if there is
// no such field.
func (m Member) Field(name string) (any, bool) { return m.Data().Field(name) }

// Returns whether both values are the same member of the same enumeration.
// Equivalent to ==.
func (m Member) Equal(o Member) bool { return m == o }

// Always fails with ErrImmutableFieldError: associated data is read-only.
func (m Member) SetField(name string, value any) error {
	return ErrImmutableField("cannot set field «%s» of member «%s»", name, m.name)
}

// Always fails with ErrImmutableFieldError: associated data is read-only.
func (m Member) UnsetField(name string) error {
	return ErrImmutableField("cannot unset field «%s» of member «%s»", name, m.name)
}

// Returns the ordered structured export: the member name under the reserved
// «name» key first, then the associated data fields in definition order.
func (m Member) Export() []Field {
	d := m.Data()
	ff := make([]Field, 0, d.Len()+1)
	ff = append(ff, Field{NameField, m.name})
	d.Fields(func(n string, v any) {
		ff = append(ff, Field{n, v})
	})
	return ff
}

// Returns the structured export encoded as a JSON object, field order
// preserved.
func (m Member) ExportJSON() ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_ = buf.WriteByte('{')
	for i, f := range m.Export() {
		if i > 0 {
			_ = buf.WriteByte(',')
		}
		_, _ = buf.WriteString(strconv.Quote(f.Name))
		_ = buf.WriteByte(':')
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		_, _ = buf.Write(v)
	}
	_ = buf.WriteByte('}')

	res := make([]byte, buf.Len())
	copy(res, buf.B)
	return res, nil
}

// JSON marshaling support. The durable form is the bare member name;
// associated data is never persisted, it is re-derived from the definition
// on load.
func (m Member) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.name)
}

// need to marshal map[Member]any
func (m Member) MarshalText() (text []byte, err error) {
	return []byte(m.name), nil
}
