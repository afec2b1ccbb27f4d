package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TomTonic/numrand"
	"github.com/TomTonic/numrand/benchcmp"
	"github.com/TomTonic/numrand/internal/logger"
)

func newBenchCmd(opts *options) *cobra.Command {
	var (
		genA, genB string
		seed       uint64
		speedups   []float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "compares the per-draw runtime of two generators",
		Long: "bench measures NextU64 of generators A and B in alternating repeats and reports " +
			"the bootstrap confidence that A is faster than B by each of the given relative speedups.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, a, err := newEngine(genA, seed)
			if err != nil {
				return err
			}
			_, b, err := newEngine(genB, seed)
			if err != nil {
				return err
			}
			cfg := opts.Bench
			logger.Logger.Info().Str("a", genA).Str("b", genB).Int("repeats", cfg.Repeats).
				Int("inner_loops", cfg.InnerLoops).Int64("timer_precision_ns", benchcmp.GetSampleTimePrecision()).
				Msg("measuring")

			timesA, timesB := benchcmp.MeasureAlternating(drawU64(a), drawU64(b), cfg.Repeats, cfg.InnerLoops)
			results, err := benchcmp.CompareSamples(timesA, timesB, speedups, cfg.Resamples)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "median ns/draw: %s=%.3f %s=%.3f\n",
				genA, benchcmp.Median(timesA), genB, benchcmp.Median(timesB)); err != nil {
				return err
			}
			for _, r := range results {
				verdict := ""
				if r.Confidence >= cfg.Confidence {
					verdict = " *"
				}
				if _, err := fmt.Fprintf(out, "speedup >= %6.2f%%  confidence %.4f%s\n",
					r.RelativeSpeedupSampleAvsSampleB*100, r.Confidence, verdict); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&genA, "a", "pcg32", "generator A")
	cmd.Flags().StringVar(&genB, "b", "mt32", "generator B")
	cmd.Flags().Uint64Var(&seed, "seed", 5489, "seed of both generators")
	cmd.Flags().Float64SliceVar(&speedups, "speedup", []float64{0, 0.1, 0.25}, "relative speedups to test")
	cmd.Flags().IntVar(&opts.Bench.Repeats, "repeats", 31, "measurements per generator (env NUMRAND_BENCH_REPEATS)")
	cmd.Flags().IntVar(&opts.Bench.InnerLoops, "inner-loops", 100_000, "draws per measurement (env NUMRAND_BENCH_INNER_LOOPS)")
	cmd.Flags().Uint64Var(&opts.Bench.Resamples, "resamples", 10_000, "bootstrap resamples (env NUMRAND_BENCH_RESAMPLES)")
	cmd.Flags().Float64Var(&opts.Bench.Confidence, "confidence", 0.95, "confidence marked with * (env NUMRAND_BENCH_CONFIDENCE)")

	return cmd
}

var sink uint64

func drawU64(e numrand.Engine) func() {
	return func() { sink += e.NextU64() }
}
