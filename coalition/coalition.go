package coalition

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	MinimumNumberOfPlayers = 1
	MaximumNumberOfPlayers = 32
)

var (
	// ErrDomain is wrapped by every range or feasibility violation.
	ErrDomain = errors.New("domain error")
	// ErrInvalidInput is returned when a value cannot be read as a coalition.
	ErrInvalidInput = errors.New("expected coalition, player or players")

	ErrNumberOfPlayers  = fmt.Errorf("%w: number of players out of range [%d, %d]", ErrDomain, MinimumNumberOfPlayers, MaximumNumberOfPlayers)
	ErrPlayerOutOfRange = fmt.Errorf("%w: player out of range", ErrDomain)
)

type Player int

type Players []Player

// Coalition is a set of players stored as a bitmask, bit i set iff player i is a member.
type Coalition uint64

const Empty Coalition = 0

func New(players ...Player) (Coalition, error) {
	c := Empty
	for _, p := range players {
		if p < 0 || p >= MaximumNumberOfPlayers {
			return Empty, fmt.Errorf("%w: %d", ErrPlayerOutOfRange, p)
		}
		c = c.Add(p)
	}
	return c, nil
}

// Grand returns the coalition of all players 0..n-1.
func Grand(n int) Coalition {
	if n <= 0 {
		return Empty
	}
	return Coalition(uint64(1)<<uint(n) - 1)
}

// All lists every subset of 0..n-1 in increasing bitmask order, Empty first.
func All(n int) []Coalition {
	grand := Grand(n)
	all := make([]Coalition, 0, uint64(grand)+1)
	for c := Empty; ; c++ {
		all = append(all, c)
		if c == grand {
			break
		}
	}
	return all
}

func ValidateNumberOfPlayers(n int) error {
	if n < MinimumNumberOfPlayers || n > MaximumNumberOfPlayers {
		return fmt.Errorf("%w: got %d", ErrNumberOfPlayers, n)
	}
	return nil
}

func (c Coalition) Contains(p Player) bool {
	if p < 0 || p >= MaximumNumberOfPlayers {
		return false
	}
	return c&(1<<uint(p)) != 0
}

func (c Coalition) Add(p Player) Coalition {
	return c | 1<<uint(p)
}

func (c Coalition) Remove(p Player) Coalition {
	return c &^ (1 << uint(p))
}

func (c Coalition) Union(other Coalition) Coalition {
	return c | other
}

func (c Coalition) IsSubsetOf(other Coalition) bool {
	return c&other == c
}

func (c Coalition) Size() int {
	return bits.OnesCount64(uint64(c))
}

// Within reports whether every member is a player of an n-player game.
func (c Coalition) Within(n int) bool {
	if n >= 64 {
		return true
	}
	return uint64(c)>>uint(n) == 0
}

// Players lists the members in increasing order.
func (c Coalition) Players() Players {
	players := make(Players, 0, c.Size())
	for rest := uint64(c); rest != 0; rest &= rest - 1 {
		players = append(players, Player(bits.TrailingZeros64(rest)))
	}
	return players
}

// Subcoalitions lists every subset of c, including Empty and c itself.
func (c Coalition) Subcoalitions() []Coalition {
	subs := make([]Coalition, 0, 1<<uint(c.Size()))
	for sub := c; ; sub = (sub - 1) & c {
		subs = append(subs, sub)
		if sub == Empty {
			break
		}
	}
	return subs
}

// OnePlayerMissing lists c with exactly one member removed, one entry per member.
func (c Coalition) OnePlayerMissing() []Coalition {
	players := c.Players()
	missing := make([]Coalition, len(players))
	for i, p := range players {
		missing[i] = c.Remove(p)
	}
	return missing
}

func (c Coalition) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range c.Players() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(p)))
	}
	sb.WriteByte('}')
	return sb.String()
}
