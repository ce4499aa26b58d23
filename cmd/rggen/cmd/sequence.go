// SPDX-License-Identifier: MIT

package cmd

import (
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rggen/powerlaw"
)

type sequenceOptions struct {
	n        int
	minVal   int
	maxVal   int
	exponent float64
	fit      bool
}

var seqOpt sequenceOptions

var sequenceCmd = &cobra.Command{
	Use:   "sequence",
	Short: "Print N values drawn from a discrete power law over [min,max].",
	Long: `Draws N independent values with P(v) proportional to v^(-exponent) over
[min,max] and prints them one per line, e.g. as a degree sequence.`,
	Args: cobra.NoArgs,
	RunE: runSequence,
}

func init() {
	RootCmd.AddCommand(sequenceCmd)
	sequenceCmd.Flags().IntVarP(&seqOpt.n, "n", "n", 0, "Number of values to draw.")
	sequenceCmd.Flags().IntVar(&seqOpt.minVal, "min", 1, "Smallest value (≥ 1).")
	sequenceCmd.Flags().IntVar(&seqOpt.maxVal, "max", 100, "Largest value.")
	sequenceCmd.Flags().Float64VarP(&seqOpt.exponent, "exponent", "e", 2.5, "Power-law exponent (> 0).")
	sequenceCmd.Flags().BoolVar(&seqOpt.fit, "fit", false,
		"Log a chi-square goodness-of-fit report of the sample.")
}

func runSequence(cmd *cobra.Command, args []string) error {
	seq, err := powerlaw.Sequence(seqOpt.n, seqOpt.minVal, seqOpt.maxVal, seqOpt.exponent, seedOption())
	if err != nil {
		return errors.Wrap(err, "while sampling sequence")
	}
	log.WithFields(log.Fields{
		"values": humanize.Comma(int64(len(seq))),
		"range":  []int{seqOpt.minVal, seqOpt.maxVal},
	}).Info("Sampled power-law sequence")

	if seqOpt.fit && len(seq) > 0 {
		dist, err := powerlaw.NewDistribution(seqOpt.minVal, seqOpt.maxVal, seqOpt.exponent)
		if err != nil {
			return errors.Wrap(err, "while building distribution")
		}
		rep, err := powerlaw.Fit(seq, dist)
		if err != nil {
			return errors.Wrap(err, "while fitting sample")
		}
		log.WithFields(log.Fields{
			"chi2":    rep.Statistic,
			"df":      rep.DegreesOfFreedom,
			"p-value": rep.PValue,
		}).Info("Goodness of fit")
	}
	return printInts(cmd, seq)
}
