package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/TomTonic/numrand/benchcmp"
	"github.com/TomTonic/numrand/internal/logger"
)

const maxChisqBins = 1 << 20

func newChisqCmd() *cobra.Command {
	var (
		gen   string
		seed  uint64
		upper uint32
		n     int
		alpha float64
	)

	cmd := &cobra.Command{
		Use:   "chisq",
		Short: "chi-square test of bounded draws in [0, max]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if upper == 0 || upper >= maxChisqBins {
				return errors.Errorf("max must be in [1, %d), got %d", maxChisqBins, upper)
			}
			if n <= 0 {
				return errors.Errorf("count must be positive, got %d", n)
			}
			g, e, err := newEngine(gen, seed)
			if err != nil {
				return err
			}

			counts := make([]int, upper+1)
			for range n {
				counts[e.NextBoundedU32(upper)]++
			}
			x2, p := benchcmp.UniformityPValue(counts)

			event := logger.Logger.Info()
			if p < alpha {
				event = logger.Logger.Warn()
			}
			event.Str("gen", g.name).Uint32("max", upper).Int("n", n).
				Float64("chi2", x2).Float64("p", p).Msg("uniformity test")

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "gen=%s max=%d n=%d chi2=%.4f df=%d p=%.6f\n",
				g.name, upper, n, x2, upper, p)
			return err
		},
	}

	cmd.Flags().StringVar(&gen, "gen", "mt32", "generator name, see list")
	cmd.Flags().Uint64Var(&seed, "seed", 5489, "seed")
	cmd.Flags().Uint32Var(&upper, "max", 6, "inclusive upper bound")
	cmd.Flags().IntVarP(&n, "count", "n", 1_000_000, "number of draws")
	cmd.Flags().Float64Var(&alpha, "alpha", 0.01, "significance level for the warning")

	return cmd
}
