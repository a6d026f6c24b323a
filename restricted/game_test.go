package restricted

import (
	"testing"
	"tugame/coalition"
	"tugame/feasible"
	"tugame/game"

	"github.com/stretchr/testify/require"
)

/*
- construction: matching player counts -> game; mismatch -> domain error
- feasibility: delegates to the family for every input shape
- get/set: feasible -> delegate to base game; infeasible -> domain error, base untouched
- base game errors propagate unchanged
- monotonicity on the feasible family only
*/

func TestNew(t *testing.T) {
	t.Run("matching number of players", func(t *testing.T) {
		g := newGame(t)
		require.Equal(t, 3, g.NumberOfPlayers())
		require.NotNil(t, g.BaseGame())
		require.NotNil(t, g.Family())
		require.Equal(t, "RestrictedGame(n=3, |F|=5)", g.String())
	})

	t.Run("mismatched number of players", func(t *testing.T) {
		base, err := game.New(2)
		require.NoError(t, err)
		fam, err := feasible.New(3)
		require.NoError(t, err)

		g, err := New(base, fam)
		require.ErrorIs(t, err, ErrPlayerCountMismatch)
		require.ErrorIs(t, err, coalition.ErrDomain)
		require.Nil(t, g)
	})
}

func TestIsFeasible(t *testing.T) {
	g := newGame(t)

	require.True(t, g.IsFeasible(coalition.Empty))
	require.True(t, g.IsFeasible(coalition.Player(0)))
	require.True(t, g.IsFeasible(coalition.Players{0, 2}))
	require.False(t, g.IsFeasible(coalition.Player(1)))
	require.False(t, g.IsFeasible(coalition.Players{1, 2}))
	require.False(t, g.IsFeasible(nil))
}

func TestValue(t *testing.T) {
	g := newGame(t)

	t.Run("feasible coalition returns base value", func(t *testing.T) {
		v, err := g.Value(coalition.Players{0, 1})
		require.NoError(t, err)
		require.Equal(t, 3.0, v)
	})

	t.Run("infeasible coalition is a domain error", func(t *testing.T) {
		_, err := g.Value(coalition.Player(1))
		require.ErrorIs(t, err, ErrNotFeasible)
		require.ErrorIs(t, err, coalition.ErrDomain)
	})

	t.Run("input that is not a coalition", func(t *testing.T) {
		_, err := g.Value(nil)
		require.ErrorIs(t, err, coalition.ErrInvalidInput)
	})

	t.Run("missing base value propagates", func(t *testing.T) {
		base, err := game.New(2)
		require.NoError(t, err)
		fam, err := feasible.New(2, coalition.All(2)...)
		require.NoError(t, err)
		rg, err := New(base, fam)
		require.NoError(t, err)

		_, err = rg.Value(coalition.Player(1))
		require.ErrorIs(t, err, game.ErrValueNotSet)
	})
}

func TestSetValue(t *testing.T) {
	t.Run("feasible coalition is stored in the base game", func(t *testing.T) {
		g := newGame(t)
		require.NoError(t, g.SetValue(coalition.Players{0, 2}, 7))

		v, err := g.Value(coalition.Players{0, 2})
		require.NoError(t, err)
		require.Equal(t, 7.0, v)

		c, err := coalition.New(0, 2)
		require.NoError(t, err)
		v, err = g.BaseGame().Value(c)
		require.NoError(t, err)
		require.Equal(t, 7.0, v)
	})

	t.Run("infeasible coalition leaves the base game untouched", func(t *testing.T) {
		g := newGame(t)
		c, err := coalition.New(1, 2)
		require.NoError(t, err)

		err = g.SetValue(c, 100)
		require.ErrorIs(t, err, ErrNotFeasible)

		v, err := g.BaseGame().Value(c)
		require.NoError(t, err)
		require.Equal(t, 1.1, v)
	})
}

func TestIsMonotone(t *testing.T) {
	t.Run("increasing values", func(t *testing.T) {
		g := newGame(t)
		ok, err := g.IsMonotone()
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("decrease along a feasible chain", func(t *testing.T) {
		g := newGame(t)
		require.NoError(t, g.SetValue(coalition.Players{0, 1, 2}, 2))
		ok, err := g.IsMonotone()
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("decrease through an infeasible coalition is ignored", func(t *testing.T) {
		g := newGame(t)
		// {1} is not feasible, so its large value never compares against {0,1}.
		one, err := coalition.New(1)
		require.NoError(t, err)
		require.NoError(t, g.BaseGame().SetValue(one, 50))

		ok, err := g.IsMonotone()
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("missing value propagates", func(t *testing.T) {
		base, err := game.New(1)
		require.NoError(t, err)
		fam, err := feasible.New(1, coalition.All(1)...)
		require.NoError(t, err)
		g, err := New(base, fam)
		require.NoError(t, err)

		_, err = g.IsMonotone()
		require.ErrorIs(t, err, game.ErrValueNotSet)
	})
}

// newGame builds the three-player game with feasible family
// {∅, {0}, {0,1}, {0,2}, {0,1,2}}: players 1 and 2 both require player 0.
func newGame(t *testing.T) *Game {
	t.Helper()
	base, err := game.New(3)
	require.NoError(t, err)
	set := func(v float64, players ...coalition.Player) {
		c, err := coalition.New(players...)
		require.NoError(t, err)
		require.NoError(t, base.SetValue(c, v))
	}
	set(0)
	set(1, 0)
	set(1, 1)
	set(0.5, 2)
	set(3, 0, 1)
	set(1.2, 0, 2)
	set(1.1, 1, 2)
	set(4, 0, 1, 2)

	fam, err := feasible.New(3)
	require.NoError(t, err)
	for _, players := range []coalition.Players{{0}, {0, 1}, {0, 2}, {0, 1, 2}} {
		require.NoError(t, fam.Add(players, feasible.EnforceHeredity(false)))
	}

	g, err := New(base, fam)
	require.NoError(t, err)
	return g
}
