// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// impl_cliques.go - clique sizes whose sum matches a membership stub.
//
// Canonical model:
//   • target = Σ membership (the membership stub), computed once.
//   • While the running sum differs from target:
//       below → draw a size from the power law over [nmin,nmax] and append it;
//       above → pick a uniform index, swap it with the last size, pop it.
//   • Sizes are kept in a stubList (O(1) push and swap-remove).
//
// Contract:
//   • Σ result == target exactly; every size in [nmin,nmax].
//   • target == 0 → empty sequence without drawing.
//   • Targets no count of sizes can sum to fail fast with ErrUnsatisfiableTarget.
//   • Every add or removal is one iteration; exceeding the budget fails with
//     ErrUnsatisfiableTarget and returns no partial result.
//
// Complexity:
//   • Expected ~O(target/mean) iterations, each O(log K); O(K + len) space.

package powerlaw

import (
	"fmt"
	"math"
)

// CliqueSizes returns clique sizes drawn from the power law
// P(n) ∝ n^(-exponent) over [nmin, nmax] such that their sum equals the sum
// of membership exactly. The length of the result is not fixed in advance.
//
// Errors:
//   - ErrInvalidRange for an empty or non-positive size range.
//   - ErrInvalidInput for a negative membership entry or a bad exponent.
//   - ErrNeedRandSource when no source option is given.
//   - ErrUnsatisfiableTarget when the target cannot be reached by sizes in
//     [nmin,nmax], or when the iteration budget runs out.
func CliqueSizes(nmin, nmax int, exponent float64, membership []int, opts ...Option) ([]int, error) {
	// 1) Parameter validation (fail fast; no draws on invalid input).
	if err := validateRange(MethodCliqueSizes, nmin, nmax); err != nil {
		return nil, err
	}
	if err := validateExponent(MethodCliqueSizes, exponent); err != nil {
		return nil, err
	}
	target, err := MembershipStub(membership)
	if err != nil {
		return nil, err
	}

	// 2) RNG is mandatory, even for the trivial target.
	cfg := newConfig(opts...)
	src, err := requireSource(MethodCliqueSizes, cfg)
	if err != nil {
		return nil, err
	}

	// 3) Nothing to distribute.
	if target == 0 {
		return []int{}, nil
	}

	// 4) Reachability: k sizes sum to exactly [k·nmin, k·nmax].
	if !reachable(target, nmin, nmax) {
		return nil, fmt.Errorf("%s: no count of sizes in [%d,%d] sums to %d: %w",
			MethodCliqueSizes, nmin, nmax, target, ErrUnsatisfiableTarget)
	}

	dist, err := buildDistribution(MethodCliqueSizes, nmin, nmax, exponent)
	if err != nil {
		return nil, err
	}

	// 5) Add / repair until the running sum hits the target or the budget ends.
	budget := cfg.iterationBudget(target)
	var cliques stubList
	for iter := 0; cliques.sum != target; iter++ {
		if iter >= budget {
			return nil, fmt.Errorf("%s: sum %d of %d cliques missed target %d after %d iterations: %w",
				MethodCliqueSizes, cliques.sum, cliques.len(), target, budget, ErrUnsatisfiableTarget)
		}
		if cliques.sum < target {
			cliques.push(dist.Draw(src))
			continue
		}
		if _, ok := cliques.swapRemove(cliques.pick(src.Float64())); !ok {
			return nil, fmt.Errorf("%s: sum %d above target %d with no clique to remove: %w",
				MethodCliqueSizes, cliques.sum, target, ErrUnsatisfiableTarget)
		}
	}

	return cliques.items, nil
}

// MembershipStub returns Σ membership, the target sum of CliqueSizes.
// Negative entries and totals above math.MaxInt fail with ErrInvalidInput.
func MembershipStub(membership []int) (int, error) {
	total := 0
	for i, m := range membership {
		if m < 0 {
			return 0, fmt.Errorf("%s: membership[%d]=%d must be ≥ 0: %w",
				MethodCliqueSizes, i, m, ErrInvalidInput)
		}
		if total > math.MaxInt-m {
			return 0, fmt.Errorf("%s: membership sum overflows at index %d: %w",
				MethodCliqueSizes, i, ErrInvalidInput)
		}
		total += m
	}

	return total, nil
}

// reachable reports whether some k ≥ 1 satisfies k·nmin ≤ target ≤ k·nmax,
// i.e. floor(target/nmin) ≥ ceil(target/nmax). Assumes target > 0 and
// 1 ≤ nmin ≤ nmax.
func reachable(target, nmin, nmax int) bool {
	most := target / nmin
	least := (target + nmax - 1) / nmax

	return most >= least
}
