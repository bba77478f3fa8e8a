/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrInvalidDefinitionError = errors.New("invalid definition")

func ErrInvalidDefinition(msg string, args ...any) error {
	return EnrichError(ErrInvalidDefinitionError, msg, args...)
}

var ErrUnknownMemberError = errors.New("unknown member")

func ErrUnknownMember(msg string, args ...any) error {
	return EnrichError(ErrUnknownMemberError, msg, args...)
}

var ErrImmutableFieldError = errors.New("immutable field")

func ErrImmutableField(msg string, args ...any) error {
	return EnrichError(ErrImmutableFieldError, msg, args...)
}

var ErrEmptyEnumError = errors.New("empty enumeration")

func ErrEmptyEnum(msg string, args ...any) error {
	return EnrichError(ErrEmptyEnumError, msg, args...)
}

var ErrFieldTypeMismatchError = errors.New("field type mismatch")

func ErrFieldTypeMismatch(msg string, args ...any) error {
	return EnrichError(ErrFieldTypeMismatchError, msg, args...)
}
