package main

import (
	"fmt"
	"tugame/config"
	"tugame/experiments"
	"tugame/loader"
	"tugame/shapley"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newComputeCmd(cfg *config.Config) *cobra.Command {
	var writeCSV bool

	cmd := &cobra.Command{
		Use:   "compute <game.json>",
		Short: "Compute the feasible Shapley value of a restricted game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			log.Info().Msgf("loaded %s", g)

			values, metric, err := shapley.New(calculatorOptions(cfg)...).Compute(cmd.Context(), g)
			if err != nil {
				return err
			}
			log.Info().Msgf("%s run: orderings=%d contributions=%d skipped=%d seed=%d duration=%s",
				metric.Mode, metric.Orderings, metric.Contributions, metric.Skipped, metric.Seed, metric.Duration)

			for i, v := range values {
				fmt.Fprintf(cmd.OutOrStdout(), "player %d: %.6f\n", i, v)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sum: %.6f\n", values.Sum())

			if !writeCSV {
				return nil
			}
			writer, err := experiments.NewWriter(cfg.OutputDir, "values")
			if err != nil {
				return err
			}
			if err := writer.WriteValues(values); err != nil {
				return err
			}
			log.Info().Msgf("stored values in %s", writer.Dir())
			return nil
		},
	}
	cmd.Flags().BoolVar(&writeCSV, "csv", false, "Also write the values as CSV under --out")
	return cmd
}
