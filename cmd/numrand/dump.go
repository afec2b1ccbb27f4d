package main

import (
	"bufio"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/TomTonic/numrand"
	"github.com/TomTonic/numrand/internal/logger"
)

const (
	modeRaw       = "raw"
	modeBounded   = "bounded"
	modeCanonical = "canonical"
)

type dumpOptions struct {
	gen  string
	seed uint64
	n    int
	mode string
	max  uint64
}

func newDumpCmd() *cobra.Command {
	opts := dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "prints the first draws of a generator, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, e, err := newEngine(opts.gen, opts.seed)
			if err != nil {
				return err
			}
			if opts.n < 0 {
				return errors.Errorf("count must not be negative, got %d", opts.n)
			}
			logger.Logger.Debug().Str("gen", g.name).Uint64("seed", opts.seed).
				Str("mode", opts.mode).Int("n", opts.n).Msg("dumping")

			w := bufio.NewWriter(cmd.OutOrStdout())
			for range opts.n {
				line, err := formatDraw(g, e, opts)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.gen, "gen", "mt32", "generator name, see list")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 5489, "seed")
	cmd.Flags().IntVarP(&opts.n, "count", "n", 10, "number of draws")
	cmd.Flags().StringVar(&opts.mode, "mode", modeRaw, "raw, bounded or canonical")
	cmd.Flags().Uint64Var(&opts.max, "max", 6, "inclusive upper bound of bounded draws")

	return cmd
}

func formatDraw(g generator, e numrand.Engine, opts dumpOptions) (string, error) {
	switch opts.mode {
	case modeRaw:
		if g.width == 32 {
			return fmt.Sprintf("%08x", e.NextU32()), nil
		}
		return fmt.Sprintf("%016x", e.NextU64()), nil
	case modeBounded:
		return fmt.Sprint(e.NextBoundedU64(opts.max)), nil
	case modeCanonical:
		return fmt.Sprintf("%.17g", e.NextCanonicalDouble()), nil
	default:
		return "", errors.Errorf("unknown mode %q", opts.mode)
	}
}
