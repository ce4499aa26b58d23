// Package powerlaw draws integer sequences from a discrete power-law
// distribution, for use as degree or clique-size inputs of synthetic
// network generators.
//
// The package offers the following components:
//
//   - Distribution: the normalized table P(v) ∝ v^(-exponent) over a
//     contiguous support [min,max], with its cumulative distribution and an
//     inverse-CDF Draw (left-biased binary search, clamped at the tail).
//   - Sequence: n independent draws from a freshly built Distribution.
//   - CliqueSizes: draws clique sizes until their running sum equals the sum
//     of a membership sequence exactly, removing a uniformly chosen size
//     (swap-and-pop) whenever the sum overshoots. The loop runs under an
//     iteration budget and a feasibility precheck.
//   - Fit: a chi-square goodness-of-fit diagnostic of a sample against a
//     Distribution.
//
// Randomness is always explicit: pass WithSeed, WithRand or WithSource.
// Without one, operations fail with ErrNeedRandSource. Nothing is cached or
// shared between calls, so the operations are safe for concurrent use as long
// as a *rand.Rand handed to WithRand is not shared between goroutines.
//
// Errors are package-level sentinels (ErrInvalidRange, ErrInvalidInput,
// ErrUnsatisfiableTarget, ErrNeedRandSource) wrapped with the method name;
// branch on them with errors.Is.
//
// Consumers that turn these sequences into graphs (stub matching, clique
// assembly) live outside this package and receive plain []int values.
package powerlaw
