package game

import (
	"testing"
	"tugame/coalition"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid number of players", func(t *testing.T) {
		g, err := New(3)
		require.NoError(t, err)
		require.Equal(t, 3, g.NumberOfPlayers())
		require.Zero(t, g.Len())
	})

	t.Run("out of range number of players", func(t *testing.T) {
		_, err := New(0)
		require.ErrorIs(t, err, coalition.ErrNumberOfPlayers)
		_, err = New(coalition.MaximumNumberOfPlayers + 1)
		require.ErrorIs(t, err, coalition.ErrNumberOfPlayers)
	})
}

func TestValues(t *testing.T) {
	g, err := New(2)
	require.NoError(t, err)
	pair, err := coalition.New(0, 1)
	require.NoError(t, err)

	t.Run("unset value is an error", func(t *testing.T) {
		_, err := g.Value(pair)
		require.ErrorIs(t, err, ErrValueNotSet)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, g.SetValue(pair, 2.5))
		v, err := g.Value(pair)
		require.NoError(t, err)
		require.Equal(t, 2.5, v)
	})

	t.Run("rejects players outside the game", func(t *testing.T) {
		outside, err := coalition.New(2)
		require.NoError(t, err)
		require.ErrorIs(t, g.SetValue(outside, 1), coalition.ErrPlayerOutOfRange)
	})

	t.Run("set values is all or nothing", func(t *testing.T) {
		outside, err := coalition.New(0, 5)
		require.NoError(t, err)
		before := g.Len()
		err = g.SetValues(map[coalition.Coalition]float64{
			coalition.Empty: 0,
			outside:         1,
		})
		require.ErrorIs(t, err, coalition.ErrPlayerOutOfRange)
		require.Equal(t, before, g.Len())

		require.NoError(t, g.SetValues(map[coalition.Coalition]float64{coalition.Empty: 0}))
		v, err := g.Value(coalition.Empty)
		require.NoError(t, err)
		require.Zero(t, v)
	})
}
