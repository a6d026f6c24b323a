package shapley

import "tugame/coalition"

// walk adds the marginal contributions along one ordering of the players
// to totals. Only players whose arrival forms a feasible coalition are
// credited.
func walk(g Game, order []int, policy PrefixPolicy, totals []float64) (counted, skipped int, err error) {
	prefix := coalition.Empty
	for _, i := range order {
		candidate := prefix.Add(coalition.Player(i))
		if !g.IsFeasible(candidate) {
			skipped++
			if policy == AdvanceAlways {
				prefix = candidate
			}
			continue
		}

		after, err := g.Value(candidate)
		if err != nil {
			return counted, skipped, err
		}
		before, err := baseline(g, prefix)
		if err != nil {
			return counted, skipped, err
		}
		totals[i] += after - before
		counted++
		prefix = candidate
	}
	return counted, skipped, nil
}

func baseline(g Game, prefix coalition.Coalition) (float64, error) {
	if g.IsFeasible(prefix) {
		return g.Value(prefix)
	}
	return g.BaseGame().Value(prefix)
}
