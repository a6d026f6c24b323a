package experiments

import (
	"context"
	"math"
	"time"
	"tugame/shapley"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
)

var (
	DefaultSampleCounts = []int{100, 1000, 10000, 50000}
	DefaultSeeds        = []uint64{1, 2, 3, 4, 5}
)

type Config struct {
	SampleCounts []int
	Seeds        []uint64
	Goroutines   int
	Policy       shapley.PrefixPolicy
}

// Record is one Monte Carlo run measured against the exact value.
type Record struct {
	ID         int
	Samples    int
	Seed       uint64
	Goroutines int
	MaxError   float64 // largest absolute error over players
	MeanError  float64
	Duration   time.Duration
}

// RunConvergence computes the exact feasible Shapley value of g once, then
// a Monte Carlo estimate for every sample count and seed.
func RunConvergence(ctx context.Context, g shapley.Game, cfg Config) (shapley.Values, []Record, error) {
	if len(cfg.SampleCounts) == 0 {
		cfg.SampleCounts = DefaultSampleCounts
	}
	if len(cfg.Seeds) == 0 {
		cfg.Seeds = DefaultSeeds
	}

	log.Info().Msgf("starting convergence experiment with %d players...", g.NumberOfPlayers())

	exact, _, err := shapley.New(
		shapley.WithGoroutines(cfg.Goroutines),
		shapley.WithPrefixPolicy(cfg.Policy),
	).Compute(ctx, g)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Msgf("computed exact value %v", exact)

	count := 0
	records := []Record{}
	for si, samples := range cfg.SampleCounts {
		log.Info().Msgf("starting sample count %d of %d (%d samples)...", si+1, len(cfg.SampleCounts), samples)

		for _, seed := range cfg.Seeds {
			estimate, metric, err := shapley.New(
				shapley.WithSamples(samples),
				shapley.WithSeed(seed),
				shapley.WithGoroutines(cfg.Goroutines),
				shapley.WithPrefixPolicy(cfg.Policy),
				shapley.WithMetrics(),
			).Compute(ctx, g)
			if err != nil {
				return nil, nil, err
			}

			count++
			records = append(records, Record{
				ID:         count,
				Samples:    samples,
				Seed:       seed,
				Goroutines: metric.Goroutines,
				MaxError:   floats.Distance(exact, estimate, math.Inf(1)),
				MeanError:  floats.Distance(exact, estimate, 1) / float64(len(exact)),
				Duration:   metric.Duration,
			})
		}
		log.Info().Msgf("completed sample count %d of %d", si+1, len(cfg.SampleCounts))
	}

	log.Info().Msg("completed convergence experiment")
	return exact, records, nil
}
