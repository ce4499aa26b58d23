// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// impl_sequence.go - n independent power-law draws.
//
// Contract:
//   • Sequence(n, min, max, exponent, opts...) returns exactly n values in [min,max].
//   • A fresh Distribution is built per call; nothing is cached.
//   • Deterministic per (arguments, source state); never panics.
//
// Complexity: O(K + n·log K) time, O(K + n) space, K = max-min+1.

package powerlaw

import "fmt"

// Sequence returns n values drawn independently from the discrete power law
// P(v) ∝ v^(-exponent) over [minVal, maxVal].
//
// Errors:
//   - ErrInvalidRange for an empty or non-positive range.
//   - ErrInvalidInput for n < 0 or a bad exponent.
//   - ErrNeedRandSource when no source option is given.
func Sequence(n, minVal, maxVal int, exponent float64, opts ...Option) ([]int, error) {
	if err := validateRange(MethodSequence, minVal, maxVal); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d must be ≥ 0: %w", MethodSequence, n, ErrInvalidInput)
	}
	if err := validateExponent(MethodSequence, exponent); err != nil {
		return nil, err
	}

	src, err := requireSource(MethodSequence, newConfig(opts...))
	if err != nil {
		return nil, err
	}

	dist, err := buildDistribution(MethodSequence, minVal, maxVal, exponent)
	if err != nil {
		return nil, err
	}

	out := make([]int, n)
	for i := range out {
		out[i] = dist.Draw(src)
	}

	return out, nil
}
