package shapley

import (
	"sync/atomic"
	"time"
)

type Metric struct {
	Mode          Mode
	Policy        PrefixPolicy
	Goroutines    int
	Seed          uint64
	Orderings     int
	Contributions int
	Skipped       int
	Duration      time.Duration
}

type Collector interface {
	Start(mode Mode, policy PrefixPolicy, goroutines int, seed uint64)
	AddOrdering(contributions, skipped int)
	Complete() Metric
}

type collector struct {
	mode          Mode
	policy        PrefixPolicy
	goroutines    int
	seed          uint64
	startTime     time.Time
	orderings     atomic.Int64
	contributions atomic.Int64
	skipped       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(mode Mode, policy PrefixPolicy, goroutines int, seed uint64) {
	m.startTime = time.Now()
	m.mode = mode
	m.policy = policy
	m.goroutines = goroutines
	m.seed = seed
	m.orderings.Store(0)
	m.contributions.Store(0)
	m.skipped.Store(0)
}

func (m *collector) AddOrdering(contributions, skipped int) {
	m.orderings.Add(1)
	m.contributions.Add(int64(contributions))
	m.skipped.Add(int64(skipped))
}

func (m *collector) Complete() Metric {
	return Metric{
		Mode:          m.mode,
		Policy:        m.policy,
		Goroutines:    m.goroutines,
		Seed:          m.seed,
		Orderings:     int(m.orderings.Load()),
		Contributions: int(m.contributions.Load()),
		Skipped:       int(m.skipped.Load()),
		Duration:      time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(mode Mode, policy PrefixPolicy, goroutines int, seed uint64) {}
func (m *dummyCollector) AddOrdering(contributions, skipped int)                           {}
func (m *dummyCollector) Complete() Metric                                                 { return Metric{} }
