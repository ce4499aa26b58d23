// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// errors.go - sentinel errors for the powerlaw package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w and a method prefix,
//     e.g. "CliqueSizes: nmin=3 > nmax=2: powerlaw: invalid support range".
//   • Algorithms never panic at runtime; option constructors (WithX) may.

package powerlaw

import "errors"

// ErrInvalidRange indicates an empty, ill-ordered or non-positive support
// range: min > max, or min ≤ 0 where v^(-exponent) is undefined.
var ErrInvalidRange = errors.New("powerlaw: invalid support range")

// ErrInvalidInput indicates a malformed argument other than the range:
// a negative sequence length, a negative membership entry, a non-finite or
// non-positive exponent, or a sample value outside the support.
var ErrInvalidInput = errors.New("powerlaw: invalid input")

// ErrUnsatisfiableTarget indicates that CliqueSizes could not make the clique
// sizes sum to the membership stub: either no combination of sizes in
// [nmin,nmax] reaches it, or the iteration budget ran out first.
// Retrying with a different seed or a larger budget may succeed in the
// second case.
var ErrUnsatisfiableTarget = errors.New("powerlaw: unsatisfiable target sum")

// ErrNeedRandSource indicates that no random source was configured
// (WithSeed, WithRand or WithSource must be supplied).
var ErrNeedRandSource = errors.New("powerlaw: random source is required")

// Validation order when several checks fail at once:
//   ErrInvalidRange → ErrInvalidInput → ErrNeedRandSource → ErrUnsatisfiableTarget.
