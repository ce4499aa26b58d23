// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rggen/powerlaw"
)

var (
	seed     int64
	logLevel string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:               "rggen",
	Short:             "Sample power-law degree and clique-size sequences.",
	SilenceUsage:      true,
	PersistentPreRunE: validateRootCmdArgs,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().Int64Var(&seed, "seed", 0,
		"Seed of the random source. A time-based seed is used and logged when unset.")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level (debug, info, warn, error).")
}

func validateRootCmdArgs(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", logLevel)
	}
	log.SetLevel(lvl)
	log.SetOutput(cmd.ErrOrStderr())

	if f := cmd.Flag("seed"); f == nil || !f.Changed {
		seed = time.Now().UnixNano()
		log.WithField("seed", seed).Info("No --seed given, using a time-based seed")
	}
	return nil
}

// seedOption turns the resolved --seed into a powerlaw option.
func seedOption() powerlaw.Option {
	return powerlaw.WithSeed(seed)
}

// printInts writes one value per line.
func printInts(cmd *cobra.Command, values []int) error {
	w := cmd.OutOrStdout()
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return errors.Wrap(err, "while writing output")
		}
	}
	return nil
}
