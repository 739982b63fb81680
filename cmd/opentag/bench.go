package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/martinemde/opentag/tagbench"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure parse throughput",
	Long:  "Parse generated div tags of increasing attribute counts repeatedly and report throughput per hasher.",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntSlice("sizes", tagbench.DefaultSizes, "Attribute counts to measure")
	benchCmd.Flags().StringSlice("hashers", []string{"builtin"}, "Hashers to measure, or \"all\"")
	benchCmd.Flags().Duration("min-duration", tagbench.DefaultMinDuration, "Minimum run time per case")

	_ = viper.BindPFlag("bench.sizes", benchCmd.Flags().Lookup("sizes"))
	_ = viper.BindPFlag("bench.hashers", benchCmd.Flags().Lookup("hashers"))
	_ = viper.BindPFlag("bench.min_duration", benchCmd.Flags().Lookup("min-duration"))

	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	logger := log.With().Str("command", "bench").Logger()
	logger.Info().
		Ints("sizes", cfg.Bench.Sizes).
		Strs("hashers", cfg.benchHashers()).
		Dur("min_duration", cfg.Bench.MinDuration).
		Msg("starting benchmark")

	results, err := tagbench.Run(cmd.Context(), tagbench.Config{
		Sizes:       cfg.Bench.Sizes,
		Hashers:     cfg.benchHashers(),
		MinDuration: cfg.Bench.MinDuration,
		Logger:      &logger,
	})
	if errors.Is(err, context.Canceled) {
		logger.Warn().Int("completed", len(results)).Msg("benchmark interrupted")
	} else if err != nil {
		return fmt.Errorf("running benchmark: %w", err)
	}

	report := benchReport{RunID: uuid.NewString(), Results: results}
	if werr := writeBenchReport(cmd.OutOrStdout(), cfg.Format, report); werr != nil {
		return werr
	}
	return err
}
