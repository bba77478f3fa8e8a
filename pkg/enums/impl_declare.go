/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import "errors"

// # Implements:
//   - IDeclarer
//   - IMemberDeclarer
type declarer struct {
	enum *enum
	errs []error
	last string // member currently accepting fields; empty after a failed Add
}

func newDeclarer(name string) *declarer {
	return &declarer{
		enum: &enum{name: name, data: make(map[string]Record)},
	}
}

func (d *declarer) Add(name any) IMemberDeclarer {
	d.last = ""

	n, nameLike := CanonicalName(name)
	switch {
	case !nameLike:
		d.errs = append(d.errs, ErrInvalidDefinition("member name «%v» (%T) is not a name", name, name))
	case n == "":
		// absent and empty names are the same failure
		d.errs = append(d.errs, ErrInvalidDefinition("member name cannot be empty"))
	default:
		if _, dup := d.enum.data[n]; dup {
			d.errs = append(d.errs, ErrInvalidDefinition("member name «%s» already used", n))
			break
		}
		d.enum.names = append(d.enum.names, n)
		d.enum.data[n] = Record{}
		d.last = n
	}

	return d
}

func (d *declarer) Field(name string, value any) IMemberDeclarer {
	if d.last == "" {
		return d // the failed Add is already reported
	}

	rec := d.enum.data[d.last]
	switch {
	case name == "":
		d.errs = append(d.errs, ErrInvalidDefinition("member «%s»: field name cannot be empty", d.last))
	case name == NameField:
		d.errs = append(d.errs, ErrInvalidDefinition("member «%s»: field name «%s» is reserved", d.last, NameField))
	default:
		if _, dup := rec.values[name]; dup {
			d.errs = append(d.errs, ErrInvalidDefinition("member «%s»: field name «%s» already used", d.last, name))
			break
		}
		if rec.values == nil {
			rec.values = make(map[string]any)
		}
		rec.names = append(rec.names, name)
		rec.values[name] = value
		d.enum.data[d.last] = rec
	}

	return d
}

// Returns the built enumeration, or the joined definition errors. A failed
// build leaves nothing behind and the same declaration fails identically.
func (d *declarer) build() (*enum, error) {
	if err := errors.Join(d.errs...); err != nil {
		return nil, err
	}
	return d.enum, nil
}
