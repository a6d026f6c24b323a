package restricted

import (
	"fmt"
	"tugame/coalition"
	"tugame/feasible"
)

var (
	ErrNotFeasible         = fmt.Errorf("%w: coalition not feasible", coalition.ErrDomain)
	ErrPlayerCountMismatch = fmt.Errorf("%w: number of players in game and feasible family must match", coalition.ErrDomain)
)

// BaseGame is the unrestricted TU game underneath a restricted one.
type BaseGame interface {
	NumberOfPlayers() int
	Value(c coalition.Coalition) (float64, error)
	SetValue(c coalition.Coalition, value float64) error
}

// Game gates value access of a base game by a feasible family. The player
// counts are checked once in New; mutating either side afterwards is the
// caller's responsibility.
type Game struct {
	base   BaseGame
	family *feasible.Family
}

func New(base BaseGame, family *feasible.Family) (*Game, error) {
	if base.NumberOfPlayers() != family.N() {
		return nil, fmt.Errorf("%w (%d != %d)", ErrPlayerCountMismatch, base.NumberOfPlayers(), family.N())
	}
	return &Game{base: base, family: family}, nil
}

func (g *Game) NumberOfPlayers() int {
	return g.base.NumberOfPlayers()
}

func (g *Game) BaseGame() BaseGame {
	return g.base
}

func (g *Game) Family() *feasible.Family {
	return g.family
}

func (g *Game) Coalitions() []coalition.Coalition {
	return g.family.Coalitions()
}

func (g *Game) IsFeasible(in coalition.Input) bool {
	return g.family.Contains(in)
}

func (g *Game) Value(in coalition.Input) (float64, error) {
	c, err := g.feasible(in)
	if err != nil {
		return 0, err
	}
	return g.base.Value(c)
}

func (g *Game) SetValue(in coalition.Input, value float64) error {
	c, err := g.feasible(in)
	if err != nil {
		return fmt.Errorf("cannot set value: %w", err)
	}
	return g.base.SetValue(c, value)
}

func (g *Game) feasible(in coalition.Input) (coalition.Coalition, error) {
	c, err := coalition.From(in)
	if err != nil {
		return coalition.Empty, err
	}
	if !g.family.IsFeasible(c) {
		return coalition.Empty, fmt.Errorf("%w: %v", ErrNotFeasible, c)
	}
	return c, nil
}

func (g *Game) String() string {
	return fmt.Sprintf("RestrictedGame(n=%d, |F|=%d)", g.NumberOfPlayers(), g.family.Len())
}
