// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// distribution.go - discrete power-law table and inverse-CDF draws.
//
// Model:
//   • Support = min..max ascending; weight(v) = v^(-exponent).
//   • PMF = weights / Σweights; CDF = running prefix sum of the PMF.
//   • Draw(u): smallest index i with CDF[i] ≥ u; u beyond every entry
//     (rounding near 1) clamps to the last index.
//
// Complexity:
//   • NewDistribution: O(K) time and space, K = max-min+1.
//   • Draw / Index:    O(log K).

package powerlaw

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Distribution is a normalized discrete power law over [Min(), Max()].
// It is immutable after construction and safe for concurrent reads.
type Distribution struct {
	support []int     // min..max ascending
	values  []float64 // support as float64, for moments
	pmf     []float64 // normalized weights, Σ = 1
	cdf     []float64 // prefix sums of pmf, last ≈ 1
}

// NewDistribution builds the power-law table over [minVal, maxVal] with
// P(v) ∝ v^(-exponent).
//
// Errors:
//   - ErrInvalidRange if minVal < 1 or minVal > maxVal.
//   - ErrInvalidInput if exponent is NaN, ±Inf or ≤ 0, or if every weight
//     underflows to zero.
func NewDistribution(minVal, maxVal int, exponent float64) (*Distribution, error) {
	if err := validateRange(MethodNewDistribution, minVal, maxVal); err != nil {
		return nil, err
	}
	if err := validateExponent(MethodNewDistribution, exponent); err != nil {
		return nil, err
	}

	return buildDistribution(MethodNewDistribution, minVal, maxVal, exponent)
}

// buildDistribution assumes validated arguments and reports errors under method.
func buildDistribution(method string, minVal, maxVal int, exponent float64) (*Distribution, error) {
	k := maxVal - minVal + 1
	d := &Distribution{
		support: make([]int, k),
		values:  make([]float64, k),
		pmf:     make([]float64, k),
		cdf:     make([]float64, k),
	}
	for i := 0; i < k; i++ {
		v := minVal + i
		d.support[i] = v
		d.values[i] = float64(v)
		d.pmf[i] = math.Pow(float64(v), -exponent)
	}

	total := floats.Sum(d.pmf)
	if total <= 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%s: weights of [%d,%d] with exponent %v are not normalizable: %w",
			method, minVal, maxVal, exponent, ErrInvalidInput)
	}
	floats.Scale(1/total, d.pmf)
	floats.CumSum(d.cdf, d.pmf)

	return d, nil
}

// Index returns the smallest support index whose cumulative probability is
// ≥ u, clamped to the last index. This is the left-sided search of
// inverse-CDF sampling.
func (d *Distribution) Index(u float64) int {
	i := sort.SearchFloat64s(d.cdf, u)
	if i >= len(d.cdf) {
		return len(d.cdf) - 1
	}

	return i
}

// Draw samples one value by inverting the CDF at src.Float64().
func (d *Distribution) Draw(src Source) int {
	return d.support[d.Index(src.Float64())]
}

// Min returns the smallest support value.
func (d *Distribution) Min() int { return d.support[0] }

// Max returns the largest support value.
func (d *Distribution) Max() int { return d.support[len(d.support)-1] }

// Len returns the support size.
func (d *Distribution) Len() int { return len(d.support) }

// Support returns a copy of the support values in ascending order.
func (d *Distribution) Support() []int {
	out := make([]int, len(d.support))
	copy(out, d.support)
	return out
}

// PMF returns a copy of the probability mass per support value.
func (d *Distribution) PMF() []float64 {
	out := make([]float64, len(d.pmf))
	copy(out, d.pmf)
	return out
}

// CDF returns a copy of the cumulative distribution per support value.
func (d *Distribution) CDF() []float64 {
	out := make([]float64, len(d.cdf))
	copy(out, d.cdf)
	return out
}

// Probability returns P(v), or 0 when v is outside the support.
func (d *Distribution) Probability(v int) float64 {
	if v < d.Min() || v > d.Max() {
		return 0
	}

	return d.pmf[v-d.Min()]
}

// Mean returns the expected value Σ v·P(v).
func (d *Distribution) Mean() float64 {
	return floats.Dot(d.values, d.pmf)
}
