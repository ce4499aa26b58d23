// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rggen/powerlaw"
)

type cliqueOptions struct {
	nmin           int
	nmax           int
	exponent       float64
	membership     string
	membershipFile string
	maxIterations  int
}

var cliqueOpt cliqueOptions

var cliquesCmd = &cobra.Command{
	Use:   "cliques",
	Short: "Print clique sizes whose sum matches a membership sequence.",
	Long: `Draws clique sizes from a power law over [nmin,nmax] until their sum equals
the sum of the membership sequence, and prints them one per line. The
membership sequence comes from --membership (comma separated) or from
--membership-file (whitespace separated integers, "-" for stdin).`,
	Args: cobra.NoArgs,
	RunE: runCliques,
}

func init() {
	RootCmd.AddCommand(cliquesCmd)
	cliquesCmd.Flags().IntVar(&cliqueOpt.nmin, "nmin", 2, "Smallest clique size (≥ 1).")
	cliquesCmd.Flags().IntVar(&cliqueOpt.nmax, "nmax", 10, "Largest clique size.")
	cliquesCmd.Flags().Float64VarP(&cliqueOpt.exponent, "exponent", "e", 2.5, "Clique-size exponent (> 0).")
	cliquesCmd.Flags().StringVar(&cliqueOpt.membership, "membership", "",
		"Comma separated membership counts, e.g. 1,2,2,3.")
	cliquesCmd.Flags().StringVar(&cliqueOpt.membershipFile, "membership-file", "",
		"File of whitespace separated membership counts (\"-\" reads stdin).")
	cliquesCmd.Flags().IntVar(&cliqueOpt.maxIterations, "max-iterations", 0,
		"Repair loop budget; 0 derives it from the target sum.")
}

func runCliques(cmd *cobra.Command, args []string) error {
	membership, err := loadMembership(cmd)
	if err != nil {
		return err
	}

	opts := []powerlaw.Option{seedOption()}
	if cliqueOpt.maxIterations < 0 {
		return errors.Errorf("--max-iterations must be ≥ 0, got %d", cliqueOpt.maxIterations)
	}
	if cliqueOpt.maxIterations > 0 {
		opts = append(opts, powerlaw.WithMaxIterations(cliqueOpt.maxIterations))
	}

	sizes, err := powerlaw.CliqueSizes(cliqueOpt.nmin, cliqueOpt.nmax, cliqueOpt.exponent, membership, opts...)
	if err != nil {
		return errors.Wrap(err, "while sampling clique sizes")
	}

	target, err := powerlaw.MembershipStub(membership)
	if err != nil {
		return errors.Wrap(err, "while summing membership")
	}
	fields := log.Fields{
		"nodes":   humanize.Comma(int64(len(membership))),
		"target":  humanize.Comma(int64(target)),
		"cliques": humanize.Comma(int64(len(sizes))),
	}
	if dist, err := powerlaw.NewDistribution(cliqueOpt.nmin, cliqueOpt.nmax, cliqueOpt.exponent); err == nil {
		fields["expected"] = humanize.Commaf(math.Round(float64(target) / dist.Mean()))
	}
	log.WithFields(fields).Info("Sampled clique sizes")

	return printInts(cmd, sizes)
}

// loadMembership reads the membership sequence from exactly one source.
func loadMembership(cmd *cobra.Command) ([]int, error) {
	switch {
	case cliqueOpt.membership != "" && cliqueOpt.membershipFile != "":
		return nil, errors.New("--membership and --membership-file are mutually exclusive")
	case cliqueOpt.membership != "":
		return parseMembership(strings.Split(cliqueOpt.membership, ","))
	case cliqueOpt.membershipFile == "-":
		return readMembership(cmd.InOrStdin())
	case cliqueOpt.membershipFile != "":
		f, err := os.Open(cliqueOpt.membershipFile)
		if err != nil {
			return nil, errors.Wrapf(err, "while opening %s", cliqueOpt.membershipFile)
		}
		defer f.Close()
		return readMembership(f)
	default:
		return nil, errors.New("one of --membership or --membership-file is required")
	}
}

func readMembership(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "while reading membership")
	}
	return parseMembership(fields)
}

func parseMembership(fields []string) ([]int, error) {
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		m, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "membership entry %d", i)
		}
		out = append(out, m)
	}
	return out, nil
}
