package shapley

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/combin"
)

type Option func(c *Calculator)

type Calculator struct {
	samples    int
	goroutines int
	seed       uint64
	seeded     bool
	policy     PrefixPolicy
	metrics    Collector
}

// WithSamples switches to Monte Carlo mode with the given number of random orderings.
func WithSamples(samples int) Option {
	return func(c *Calculator) {
		if samples > 0 {
			c.samples = samples
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(c *Calculator) {
		if goroutines > 0 {
			c.goroutines = goroutines
		}
	}
}

// WithSeed fixes the random source of Monte Carlo mode. Results are
// reproducible for the same seed and number of goroutines.
func WithSeed(seed uint64) Option {
	return func(c *Calculator) {
		c.seed = seed
		c.seeded = true
	}
}

func WithPrefixPolicy(policy PrefixPolicy) Option {
	return func(c *Calculator) {
		c.policy = policy
	}
}

func WithMetrics() Option {
	return func(c *Calculator) {
		c.metrics = NewCollector()
	}
}

func New(options ...Option) *Calculator {
	c := &Calculator{ // Default values
		goroutines: 1,
		policy:     AdvanceAlways,
		metrics:    NewDummyCollector(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Compute returns the feasible Shapley value of every player of g.
// Errors from value lookups stop all workers and are returned unchanged.
func (c *Calculator) Compute(ctx context.Context, g Game) (Values, Metric, error) {
	n := g.NumberOfPlayers()
	mode := ExactMode
	if c.samples > 0 {
		mode = MonteCarloMode
	}
	if mode == ExactMode && n > MaxExactPlayers {
		return nil, Metric{}, fmt.Errorf("%w: %d > %d", ErrTooManyPlayers, n, MaxExactPlayers)
	}

	seed := c.seed
	if mode == MonteCarloMode && !c.seeded {
		var err error
		if seed, err = newSeed(); err != nil {
			return nil, Metric{}, err
		}
	}

	log.Debug().Msgf("computing %s shapley value: players=%d goroutines=%d policy=%s", mode, n, c.goroutines, c.policy)
	c.metrics.Start(mode, c.policy, c.goroutines, seed)

	var totals []float64
	var divisor float64
	var err error
	if mode == MonteCarloMode {
		totals, err = c.sample(ctx, g, n, seed)
		divisor = float64(c.samples)
	} else {
		totals, err = c.enumerate(ctx, g, n)
		divisor = float64(combin.NumPermutations(n, n))
	}
	metric := c.metrics.Complete()
	if err != nil {
		return nil, metric, err
	}

	floats.Scale(1/divisor, totals)
	log.Debug().Msgf("computed %s shapley value in %s", mode, metric.Duration)
	return Values(totals), metric, nil
}

// enumerate walks all n! orderings, handed out to the workers by a single
// generator goroutine.
func (c *Calculator) enumerate(ctx context.Context, g Game, n int) ([]float64, error) {
	eg, ctx := errgroup.WithContext(ctx)
	orders := make(chan []int, c.goroutines)

	eg.Go(func() error {
		defer close(orders)
		gen := combin.NewPermutationGenerator(n, n)
		for gen.Next() {
			select {
			case orders <- gen.Permutation(nil):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	partials := make([][]float64, c.goroutines)
	for w := range partials {
		w := w
		partials[w] = make([]float64, n)
		eg.Go(func() error {
			for order := range orders {
				counted, skipped, err := walk(g, order, c.policy, partials[w])
				if err != nil {
					return err
				}
				c.metrics.AddOrdering(counted, skipped)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return merge(n, partials), nil
}

// sample walks c.samples random orderings. Each worker draws its share
// from a private source derived from seed.
func (c *Calculator) sample(ctx context.Context, g Game, n int, seed uint64) ([]float64, error) {
	eg, ctx := errgroup.WithContext(ctx)

	partials := make([][]float64, c.goroutines)
	for w := range partials {
		w := w
		partials[w] = make([]float64, n)
		quota := c.samples / c.goroutines
		if w < c.samples%c.goroutines {
			quota++
		}
		rng := rand.New(rand.NewSource(workerSeed(seed, w)))

		eg.Go(func() error {
			for i := 0; i < quota; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				counted, skipped, err := walk(g, rng.Perm(n), c.policy, partials[w])
				if err != nil {
					return err
				}
				c.metrics.AddOrdering(counted, skipped)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return merge(n, partials), nil
}

func merge(n int, partials [][]float64) []float64 {
	totals := make([]float64, n)
	for _, partial := range partials {
		floats.Add(totals, partial)
	}
	return totals
}

func workerSeed(seed uint64, worker int) uint64 {
	return seed ^ uint64(worker)*0x9e3779b97f4a7c15
}

func newSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Exact computes the feasible Shapley value over all orderings.
func Exact(ctx context.Context, g Game, options ...Option) (Values, error) {
	values, _, err := New(options...).Compute(ctx, g)
	return values, err
}

// MonteCarlo estimates the feasible Shapley value from samples random orderings.
func MonteCarlo(ctx context.Context, g Game, samples int, seed uint64, options ...Option) (Values, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoSamples, samples)
	}
	options = append([]Option{WithSamples(samples), WithSeed(seed)}, options...)
	values, _, err := New(options...).Compute(ctx, g)
	return values, err
}
