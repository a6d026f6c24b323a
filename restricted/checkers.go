package restricted

// IsMonotone reports whether v(S) >= v(T) for every pair of feasible
// coalitions with T a proper subset of S.
func (g *Game) IsMonotone() (bool, error) {
	for _, s := range g.family.Coalitions() {
		vs, err := g.base.Value(s)
		if err != nil {
			return false, err
		}
		for _, t := range s.Subcoalitions() {
			if t == s || !g.family.IsFeasible(t) {
				continue
			}
			vt, err := g.base.Value(t)
			if err != nil {
				return false, err
			}
			if vs < vt {
				return false, nil
			}
		}
	}
	return true, nil
}
