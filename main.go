package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"tugame/config"
	"tugame/shapley"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tugame",
		Short: "Shapley values of cooperative games restricted to feasible coalitions",
		Long: `tugame loads a TU game and its feasible coalition family from JSON and
computes the feasible Shapley value, exactly over all orderings of the
players or approximately from random orderings.

Settings default to the SHAPLEY_* environment variables; flags override them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.SetupLogging(cfg.LogLevel)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "Number of worker goroutines")
	flags.IntVar(&cfg.Samples, "samples", cfg.Samples, "Random orderings to sample (0 enumerates all orderings)")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for sampling (0 draws a fresh seed)")
	flags.BoolVar(&cfg.SkipInfeasible, "skip-infeasible", cfg.SkipInfeasible, "Keep the prefix on the last feasible coalition")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for CSV output")

	rootCmd.AddCommand(newComputeCmd(cfg), newCheckCmd(), newConvergeCmd(cfg))
	return rootCmd
}

func calculatorOptions(cfg *config.Config) []shapley.Option {
	options := []shapley.Option{
		shapley.WithGoroutines(cfg.Goroutines),
		shapley.WithMetrics(),
	}
	if cfg.Samples > 0 {
		options = append(options, shapley.WithSamples(cfg.Samples))
	}
	if cfg.Seed != 0 {
		options = append(options, shapley.WithSeed(cfg.Seed))
	}
	if cfg.SkipInfeasible {
		options = append(options, shapley.WithPrefixPolicy(shapley.SkipInfeasible))
	}
	return options
}

func prefixPolicy(cfg *config.Config) shapley.PrefixPolicy {
	if cfg.SkipInfeasible {
		return shapley.SkipInfeasible
	}
	return shapley.AdvanceAlways
}
