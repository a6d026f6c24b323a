package coalition

import "fmt"

// Input is anything a caller may pass where a coalition is expected:
// a Coalition, a single Player or a list of Players.
type Input interface {
	toCoalition() (Coalition, error)
}

func (c Coalition) toCoalition() (Coalition, error) {
	return c, nil
}

func (p Player) toCoalition() (Coalition, error) {
	return New(p)
}

func (ps Players) toCoalition() (Coalition, error) {
	return New(ps...)
}

// From converts an Input into a Coalition.
func From(in Input) (Coalition, error) {
	if in == nil {
		return Empty, ErrInvalidInput
	}
	c, err := in.toCoalition()
	if err != nil {
		return Empty, fmt.Errorf("convert %v: %w", in, err)
	}
	return c, nil
}
