package shapley

import (
	"errors"
	"tugame/coalition"
	"tugame/restricted"

	"gonum.org/v1/gonum/floats"
)

// MaxExactPlayers is the largest game whose n! orderings fit an int64.
const MaxExactPlayers = 20

var (
	ErrTooManyPlayers = errors.New("too many players for exact enumeration")
	ErrNoSamples      = errors.New("monte carlo needs a positive number of samples")
)

// Game is what the feasible Shapley value needs from a restricted game.
type Game interface {
	NumberOfPlayers() int
	IsFeasible(in coalition.Input) bool
	Value(in coalition.Input) (float64, error)
	BaseGame() restricted.BaseGame
}

// Values holds one Shapley value per player, indexed by player.
type Values []float64

func (v Values) Sum() float64 {
	return floats.Sum(v)
}

// PrefixPolicy decides where the walk along an ordering goes after a
// candidate coalition turns out to be infeasible.
type PrefixPolicy int

const (
	// AdvanceAlways moves the prefix onto every candidate, feasible or not.
	// The next marginal contribution is then taken against the base game
	// value of the infeasible prefix.
	AdvanceAlways PrefixPolicy = iota
	// SkipInfeasible keeps the prefix on the last feasible coalition.
	SkipInfeasible
)

func (p PrefixPolicy) String() string {
	switch p {
	case AdvanceAlways:
		return "advance-always"
	case SkipInfeasible:
		return "skip-infeasible"
	default:
		return "unknown"
	}
}

type Mode int

const (
	ExactMode Mode = iota
	MonteCarloMode
)

func (m Mode) String() string {
	if m == MonteCarloMode {
		return "monte-carlo"
	}
	return "exact"
}
