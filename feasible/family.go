package feasible

import (
	"fmt"
	"tugame/coalition"

	"golang.org/x/exp/slices"
)

type AddOption func(a *addConfig)

type addConfig struct {
	heredity    bool
	unionClosed bool
}

// EnforceHeredity also adds every subcoalition of the added coalition. On by default.
func EnforceHeredity(enforce bool) AddOption {
	return func(a *addConfig) {
		a.heredity = enforce
	}
}

// EnforceUnionClosed closes the family under pairwise union after adding. Off by default.
func EnforceUnionClosed(enforce bool) AddOption {
	return func(a *addConfig) {
		a.unionClosed = enforce
	}
}

// Family is the set of coalitions of an n-player game admissible for value queries.
// The empty coalition is always a member.
type Family struct {
	n int
	f map[coalition.Coalition]struct{}
}

func New(n int, coalitions ...coalition.Coalition) (*Family, error) {
	if err := coalition.ValidateNumberOfPlayers(n); err != nil {
		return nil, err
	}

	f := make(map[coalition.Coalition]struct{}, len(coalitions)+1)
	f[coalition.Empty] = struct{}{}
	for _, c := range coalitions {
		if err := validate(n, c); err != nil {
			return nil, err
		}
		f[c] = struct{}{}
	}
	return &Family{n: n, f: f}, nil
}

func (fam *Family) N() int {
	return fam.n
}

func (fam *Family) Len() int {
	return len(fam.f)
}

func (fam *Family) IsFeasible(c coalition.Coalition) bool {
	_, ok := fam.f[c]
	return ok
}

// Contains is IsFeasible for any coalition input; inputs that are not a
// coalition are never feasible.
func (fam *Family) Contains(in coalition.Input) bool {
	c, err := coalition.From(in)
	if err != nil {
		return false
	}
	return fam.IsFeasible(c)
}

// Coalitions returns a copy of the members in increasing bitmask order.
func (fam *Family) Coalitions() []coalition.Coalition {
	cs := make([]coalition.Coalition, 0, len(fam.f))
	for c := range fam.f {
		cs = append(cs, c)
	}
	slices.Sort(cs)
	return cs
}

func (fam *Family) Add(in coalition.Input, options ...AddOption) error {
	cfg := addConfig{heredity: true}
	for _, option := range options {
		option(&cfg)
	}

	c, err := fam.coerce(in)
	if err != nil {
		return err
	}

	fam.f[c] = struct{}{}
	if cfg.heredity {
		for _, sub := range c.Subcoalitions() {
			fam.f[sub] = struct{}{}
		}
	}
	if cfg.unionClosed {
		fam.closeUnderUnion()
	}
	return nil
}

// Remove discards a coalition. The empty coalition stays. No closure
// property is restored afterwards.
func (fam *Family) Remove(in coalition.Input) error {
	c, err := fam.coerce(in)
	if err != nil {
		return err
	}
	if c != coalition.Empty {
		delete(fam.f, c)
	}
	return nil
}

func (fam *Family) IsHereditary() bool {
	for c := range fam.f {
		for _, sub := range c.Subcoalitions() {
			if !fam.IsFeasible(sub) {
				return false
			}
		}
	}
	return true
}

func (fam *Family) IsAccessible() bool {
	for c := range fam.f {
		if c == coalition.Empty {
			continue
		}
		if !slices.ContainsFunc(c.OnePlayerMissing(), fam.IsFeasible) {
			return false
		}
	}
	return true
}

func (fam *Family) IsUnionClosed() bool {
	cs := fam.Coalitions()
	for i, a := range cs {
		for _, b := range cs[i:] {
			if !fam.IsFeasible(a.Union(b)) {
				return false
			}
		}
	}
	return true
}

// closeUnderUnion adds pairwise unions until a full pass adds nothing.
// Each pass is quadratic in the current size.
func (fam *Family) closeUnderUnion() {
	for {
		missing := map[coalition.Coalition]struct{}{}
		cs := fam.Coalitions()
		for i, a := range cs {
			for _, b := range cs[i:] {
				if u := a.Union(b); !fam.IsFeasible(u) {
					missing[u] = struct{}{}
				}
			}
		}
		if len(missing) == 0 {
			return
		}
		for u := range missing {
			fam.f[u] = struct{}{}
		}
	}
}

func (fam *Family) coerce(in coalition.Input) (coalition.Coalition, error) {
	c, err := coalition.From(in)
	if err != nil {
		return coalition.Empty, err
	}
	if err := validate(fam.n, c); err != nil {
		return coalition.Empty, err
	}
	return c, nil
}

func validate(n int, c coalition.Coalition) error {
	if !c.Within(n) {
		return fmt.Errorf("%w: %v contains a player outside 0..%d", coalition.ErrPlayerOutOfRange, c, n-1)
	}
	return nil
}

func (fam *Family) String() string {
	return fmt.Sprintf("FeasibleFamily(n=%d, size=%d)", fam.n, len(fam.f))
}
