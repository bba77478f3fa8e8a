/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package require

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Returns a constraint that checks that value (panic or error) contains the
// given substring.
func (r *Require) Has(substr any, msgAndArgs ...any) Constraint {
	return func(t assert.TestingT, v any, _ ...any) bool {
		return assert.Contains(t, fmt.Sprint(v), fmt.Sprint(substr), msgAndArgs...)
	}
}

// Returns a constraint that checks that value (panic or error) does not
// contain the given substring.
func (r *Require) NotHas(substr any, msgAndArgs ...any) Constraint {
	return func(t assert.TestingT, v any, _ ...any) bool {
		return assert.NotContains(t, fmt.Sprint(v), fmt.Sprint(substr), msgAndArgs...)
	}
}

// Returns a constraint that checks that the error (or an error in its chain)
// matches the target.
func (r *Require) Is(target error, msgAndArgs ...any) Constraint {
	return func(t assert.TestingT, v any, _ ...any) bool {
		err, ok := v.(error)
		if !ok {
			return assert.Fail(t, fmt.Sprintf("«%#v» is not an error", v), msgAndArgs...)
		}
		return assert.ErrorIs(t, err, target, msgAndArgs...)
	}
}

// Returns a constraint that checks that no error in the chain matches the
// target.
func (r *Require) NotIs(target error, msgAndArgs ...any) Constraint {
	return func(t assert.TestingT, v any, _ ...any) bool {
		err, ok := v.(error)
		if !ok {
			return true
		}
		return assert.NotErrorIs(t, err, target, msgAndArgs...)
	}
}

// Returns a constraint that checks that value (panic or error) matches the
// specified regexp.
func (r *Require) Rx(rx any, msgAndArgs ...any) Constraint {
	return func(t assert.TestingT, v any, _ ...any) bool {
		return assert.Regexp(t, rx, v, msgAndArgs...)
	}
}
