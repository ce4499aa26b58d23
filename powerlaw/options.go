// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// options.go - functional options for the powerlaw package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand or WithSource.

package powerlaw

import (
	"math/rand"
)

// Option customizes an operation by mutating a config before sampling.
type Option func(*config)

// WithSeed uses a new *rand.Rand seeded with seed. Each call of an operation
// resolves its own generator, so equal seeds give equal sequences.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws from a caller-owned generator. The generator's state
// advances across calls; share it between goroutines only under a lock.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("powerlaw: WithRand(nil)")
	}
	return func(c *config) {
		c.src = r
	}
}

// WithSource draws from any uniform [0,1) source, e.g. a fixed stub in tests.
// Panics on nil.
func WithSource(src Source) Option {
	if src == nil {
		panic("powerlaw: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithMaxIterations caps the number of add/remove steps CliqueSizes may take
// before failing with ErrUnsatisfiableTarget. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("powerlaw: WithMaxIterations(n<1)")
	}
	return func(c *config) {
		c.maxIterations = n
	}
}
