// Package loader reads restricted games from JSON.
//
// A file holds the player count, the base game values keyed by JSON lists
// of player indices, and optionally the feasible family, either as a
// permission structure or as an explicit list:
//
//	{
//	  "n": 3,
//	  "values": {"[]": 0, "[0]": 1, "[0,1]": 3, "[0,1,2]": 4},
//	  "permission": {"1": [0], "2": [0]}
//	}
//
// A permission structure maps a player to its prerequisite players; the
// feasible coalitions are exactly those in which every member's
// prerequisites are also members. It takes precedence over "feasible".
// Without either, every coalition is feasible.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"tugame/coalition"
	"tugame/feasible"
	"tugame/game"
	"tugame/restricted"
)

var ErrMissingPlayers = errors.New(`missing "n"`)

type record struct {
	N          *int               `json:"n"`
	Values     map[string]float64 `json:"values"`
	Permission map[string][]int   `json:"permission"`
	Feasible   [][]int            `json:"feasible"`
}

func Load(path string) (*restricted.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open game file: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return g, nil
}

func Decode(r io.Reader) (*restricted.Game, error) {
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode game: %w", err)
	}
	if rec.N == nil {
		return nil, ErrMissingPlayers
	}
	n := *rec.N

	base, err := game.New(n)
	if err != nil {
		return nil, err
	}
	values := make(map[coalition.Coalition]float64, len(rec.Values))
	for key, v := range rec.Values {
		c, err := parseCoalition(key)
		if err != nil {
			return nil, err
		}
		values[c] = v
	}
	if err := base.SetValues(values); err != nil {
		return nil, err
	}

	var family *feasible.Family
	switch {
	case rec.Permission != nil:
		family, err = fromPermission(n, rec.Permission)
	case rec.Feasible != nil:
		family, err = fromList(n, rec.Feasible)
	default:
		family, err = feasible.New(n, coalition.All(n)...)
	}
	if err != nil {
		return nil, err
	}

	return restricted.New(base, family)
}

// parseCoalition reads a value key such as "[0, 2]".
func parseCoalition(key string) (coalition.Coalition, error) {
	var players coalition.Players
	if err := json.Unmarshal([]byte(key), &players); err != nil {
		return coalition.Empty, fmt.Errorf("invalid coalition key %q: %w", key, err)
	}
	return coalition.From(players)
}

func fromList(n int, lists [][]int) (*feasible.Family, error) {
	cs := make([]coalition.Coalition, 0, len(lists))
	for _, list := range lists {
		c, err := coalition.From(toPlayers(list))
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return feasible.New(n, cs...)
}

func fromPermission(n int, permission map[string][]int) (*feasible.Family, error) {
	if err := coalition.ValidateNumberOfPlayers(n); err != nil {
		return nil, err
	}

	prerequisites := make([]coalition.Coalition, n)
	for key, list := range permission {
		p, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("invalid permission player %q: %w", key, err)
		}
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: permission player %d", coalition.ErrPlayerOutOfRange, p)
		}
		pre, err := coalition.From(toPlayers(list))
		if err != nil {
			return nil, err
		}
		if !pre.Within(n) {
			return nil, fmt.Errorf("%w: prerequisites %v of player %d", coalition.ErrPlayerOutOfRange, pre, p)
		}
		prerequisites[p] = pre
	}

	var cs []coalition.Coalition
	for _, c := range coalition.All(n) {
		if permitted(c, prerequisites) {
			cs = append(cs, c)
		}
	}
	return feasible.New(n, cs...)
}

func permitted(c coalition.Coalition, prerequisites []coalition.Coalition) bool {
	for _, p := range c.Players() {
		if !prerequisites[p].IsSubsetOf(c) {
			return false
		}
	}
	return true
}

func toPlayers(list []int) coalition.Players {
	players := make(coalition.Players, len(list))
	for i, p := range list {
		players[i] = coalition.Player(p)
	}
	return players
}
