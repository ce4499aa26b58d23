// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// fit.go - chi-square goodness-of-fit diagnostic.
//
// Fit compares observed counts of a sample with the counts expected under a
// Distribution. It is a diagnostic only: sampling makes no goodness-of-fit
// guarantee beyond drawing from the stated table.

package powerlaw

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// FitReport is the outcome of a Pearson chi-square test.
type FitReport struct {
	N                int       // sample size
	Observed         []float64 // count per support value
	Expected         []float64 // N·P(v) per support value
	Statistic        float64   // Σ (obs-exp)²/exp
	DegreesOfFreedom int       // support size - 1
	PValue           float64   // P(χ²_df ≥ Statistic)
}

// Fit tallies sample against d and computes the chi-square statistic and its
// p-value. Errors with ErrInvalidInput on an empty sample or on a value
// outside d's support.
func Fit(sample []int, d *Distribution) (FitReport, error) {
	if d == nil {
		return FitReport{}, fmt.Errorf("%s: nil distribution: %w", MethodFit, ErrInvalidInput)
	}
	if len(sample) == 0 {
		return FitReport{}, fmt.Errorf("%s: empty sample: %w", MethodFit, ErrInvalidInput)
	}

	k := d.Len()
	rep := FitReport{
		N:                len(sample),
		Observed:         make([]float64, k),
		Expected:         make([]float64, k),
		DegreesOfFreedom: k - 1,
		PValue:           1,
	}
	lo := d.Min()
	for i, v := range sample {
		if v < lo || v > d.Max() {
			return FitReport{}, fmt.Errorf("%s: sample[%d]=%d outside [%d,%d]: %w",
				MethodFit, i, v, lo, d.Max(), ErrInvalidInput)
		}
		rep.Observed[v-lo]++
	}
	for i, p := range d.pmf {
		rep.Expected[i] = p * float64(rep.N)
	}

	// A single-point support always fits.
	if rep.DegreesOfFreedom == 0 {
		return rep, nil
	}
	rep.Statistic = stat.ChiSquare(rep.Observed, rep.Expected)
	rep.PValue = distuv.ChiSquared{K: float64(rep.DegreesOfFreedom)}.Survival(rep.Statistic)

	return rep, nil
}
