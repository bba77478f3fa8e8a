/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums_test

import (
	"encoding/json"
	"testing"

	"github.com/madison-web-solutions/go-enum/internal/require"
	"github.com/madison-web-solutions/go-enum/pkg/enums"
)

func TestMember_Equality(t *testing.T) {

	require := require.New(t)

	apple := enums.MustNamed[Fruit]("apple")
	pear := enums.MustNamed[Fruit]("pear")

	require.True(apple.Equal(apple))
	require.False(apple.Equal(pear))
	require.False(apple.Equal(enums.NullMember))

	t.Run("copies should compare equal to the original", func(t *testing.T) {
		clone := apple
		require.True(clone == apple)
		require.True(clone.Equal(apple))
		require.Equal(apple.Data(), clone.Data())
	})
}

func TestMember_Immutability(t *testing.T) {

	require := require.New(t)

	apple := enums.MustNamed[Fruit]("apple")

	err := apple.SetField("type", "Vine")
	require.ErrorWith(err,
		require.Is(enums.ErrImmutableFieldError),
		require.Has("type"),
		require.Has("apple"))

	err = apple.UnsetField("type")
	require.ErrorWith(err, require.Is(enums.ErrImmutableFieldError))

	// the field is unchanged
	v, ok := apple.Field("type")
	require.True(ok)
	require.Equal("Orchard", v)
}

func TestMember_Export(t *testing.T) {

	require := require.New(t)

	apple := enums.MustNamed[Fruit]("apple")

	require.Equal(
		[]enums.Field{
			{Name: "name", Value: "apple"},
			{Name: "type", Value: "Orchard"},
		},
		apple.Export())

	t.Run("ExportJSON should keep name first and field order", func(t *testing.T) {
		e := enums.MustNew("Planet", func(d enums.IDeclarer) {
			d.Add("mars").
				Field("orbit", 4).
				Field("moons", 2).
				Field("inhabited", false)
		})

		j, err := e.MustNamed("mars").ExportJSON()
		require.NoError(err)
		require.Equal(`{"name":"mars","orbit":4,"moons":2,"inhabited":false}`, string(j))
	})
}

func TestMember_Marshal(t *testing.T) {

	require := require.New(t)

	apple := enums.MustNamed[Fruit]("apple")

	t.Run("durable form should be the bare name", func(t *testing.T) {
		j, err := json.Marshal(apple)
		require.NoError(err)
		require.Equal(`"apple"`, string(j))

		text, err := apple.MarshalText()
		require.NoError(err)
		require.Equal("apple", string(text))
	})

	t.Run("export and durable form should stay apart", func(t *testing.T) {
		ex, err := apple.ExportJSON()
		require.NoError(err)
		require.NotEqual(`"apple"`, string(ex))
	})
}

func TestNullMember(t *testing.T) {

	require := require.New(t)

	require.True(enums.NullMember.IsZero())
	require.Nil(enums.NullMember.Enum())
	require.Empty(enums.NullMember.Name())
	require.Zero(enums.NullMember.Data().Len())

	_, ok := enums.NullMember.Field("type")
	require.False(ok)
}
