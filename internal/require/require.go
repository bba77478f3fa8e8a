/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

// Package require extends testify's require with constraint-checked
// assertions for panics and errors.
package require

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Require struct {
	*require.Assertions
	t *testing.T
}

func New(t *testing.T) *Require {
	return &Require{
		Assertions: require.New(t),
		t:          t,
	}
}

// Constraint validates a recovered panic value or an error.
type Constraint assert.ValueAssertionFunc

// PanicsWith asserts that the code inside the specified function panics and
// that the recovered value satisfies all given constraints.
//
//	require := require.New(t)
//	require.PanicsWith(
//		func() { GoCrazy() },
//		require.Has("crazy"),
//		require.Is(ErrCrazyError))
func (r *Require) PanicsWith(f func(), cc ...Constraint) {
	recovered := func() (v any) {
		defer func() { v = recover() }()
		f()
		return nil
	}()

	if recovered == nil {
		r.t.Fatal("function has not panicked")
	}
	r.check(recovered, cc)
}

// ErrorWith asserts that the given error is not nil and satisfies all given
// constraints.
//
//	require := require.New(t)
//	require.ErrorWith(err,
//		require.Is(ErrUnknownMemberError),
//		require.Has("pineapple"))
func (r *Require) ErrorWith(e error, cc ...Constraint) {
	if e == nil {
		r.t.Fatal("error is nil")
	}
	r.check(e, cc)
}

func (r *Require) check(v any, cc []Constraint) {
	ok := true
	for _, c := range cc {
		ok = c(r.t, v) && ok
	}
	if !ok {
		r.t.FailNow()
	}
}
