// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rggen/powerlaw"
)

type tableOptions struct {
	minVal   int
	maxVal   int
	exponent float64
}

var tableOpt tableOptions

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the value, pmf and cdf columns of a power-law table.",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	RootCmd.AddCommand(tableCmd)
	tableCmd.Flags().IntVar(&tableOpt.minVal, "min", 1, "Smallest value (≥ 1).")
	tableCmd.Flags().IntVar(&tableOpt.maxVal, "max", 10, "Largest value.")
	tableCmd.Flags().Float64VarP(&tableOpt.exponent, "exponent", "e", 2.5, "Power-law exponent (> 0).")
}

func runTable(cmd *cobra.Command, args []string) error {
	d, err := powerlaw.NewDistribution(tableOpt.minVal, tableOpt.maxVal, tableOpt.exponent)
	if err != nil {
		return errors.Wrap(err, "while building distribution")
	}
	pmf, cdf := d.PMF(), d.CDF()
	w := cmd.OutOrStdout()
	for i, v := range d.Support() {
		if _, err := fmt.Fprintf(w, "%d\t%.6f\t%.6f\n", v, pmf[i], cdf[i]); err != nil {
			return errors.Wrap(err, "while writing output")
		}
	}
	return nil
}
