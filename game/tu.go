package game

import (
	"errors"
	"fmt"
	"tugame/coalition"
)

var ErrValueNotSet = errors.New("no value recorded for coalition")

// Game is a transferable-utility game: a real value per coalition of n players.
// Coalitions without a recorded value are unset, not zero.
type Game struct {
	n      int
	values map[coalition.Coalition]float64
}

func New(n int) (*Game, error) {
	if err := coalition.ValidateNumberOfPlayers(n); err != nil {
		return nil, err
	}
	return &Game{
		n:      n,
		values: make(map[coalition.Coalition]float64),
	}, nil
}

func (g *Game) NumberOfPlayers() int {
	return g.n
}

// Len is the number of coalitions with a recorded value.
func (g *Game) Len() int {
	return len(g.values)
}

func (g *Game) Value(c coalition.Coalition) (float64, error) {
	v, ok := g.values[c]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrValueNotSet, c)
	}
	return v, nil
}

func (g *Game) SetValue(c coalition.Coalition, value float64) error {
	if err := g.validate(c); err != nil {
		return err
	}
	g.values[c] = value
	return nil
}

// SetValues records all values, or none if any coalition is out of range.
func (g *Game) SetValues(values map[coalition.Coalition]float64) error {
	for c := range values {
		if err := g.validate(c); err != nil {
			return err
		}
	}
	for c, v := range values {
		g.values[c] = v
	}
	return nil
}

func (g *Game) validate(c coalition.Coalition) error {
	if !c.Within(g.n) {
		return fmt.Errorf("%w: %v not within 0..%d", coalition.ErrPlayerOutOfRange, c, g.n-1)
	}
	return nil
}

func (g *Game) String() string {
	return fmt.Sprintf("Game(n=%d, values=%d)", g.n, len(g.values))
}
