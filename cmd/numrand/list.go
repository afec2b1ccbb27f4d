package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "lists the known generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range generatorNames() {
				g := generators[name]
				if _, err := fmt.Fprintf(out, "%-10s %2d-bit  %s\n", g.name, g.width, g.desc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
