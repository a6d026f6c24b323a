package main

import (
	"fmt"
	"tugame/config"
	"tugame/experiments"
	"tugame/loader"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newConvergeCmd(cfg *config.Config) *cobra.Command {
	var sampleCounts []int
	var seeds []uint

	cmd := &cobra.Command{
		Use:   "converge <game.json>",
		Short: "Measure Monte Carlo error against the exact value",
		Long: `Computes the exact feasible Shapley value, then Monte Carlo estimates for
every sample count and seed, and stores the errors as CSV under --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loader.Load(args[0])
			if err != nil {
				return err
			}

			seeds64 := make([]uint64, len(seeds))
			for i, s := range seeds {
				seeds64[i] = uint64(s)
			}
			exact, records, err := experiments.RunConvergence(cmd.Context(), g, experiments.Config{
				SampleCounts: sampleCounts,
				Seeds:        seeds64,
				Goroutines:   cfg.Goroutines,
				Policy:       prefixPolicy(cfg),
			})
			if err != nil {
				return err
			}

			writer, err := experiments.NewWriter(cfg.OutputDir, "convergence")
			if err != nil {
				return err
			}
			if err := writer.WriteValues(exact); err != nil {
				return err
			}
			if err := writer.WriteRecords(records); err != nil {
				return err
			}
			log.Info().Msg("stored convergence records")

			fmt.Fprintln(cmd.OutOrStdout(), writer.Dir())
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&sampleCounts, "sample-counts", experiments.DefaultSampleCounts, "Sample counts to try")
	cmd.Flags().UintSliceVar(&seeds, "seeds", []uint{1, 2, 3, 4, 5}, "Seeds to try for every sample count")
	return cmd
}
