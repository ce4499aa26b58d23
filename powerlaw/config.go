// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • config is the single source of truth for all sampler knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • src           = nil (operations fail with ErrNeedRandSource)
//   • maxIterations = 0   (derived per call, see iterationBudget)

package powerlaw

import "math"

// Source is a uniform random source on [0,1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// config aggregates all knobs used by the operations.
// It is passed by VALUE to implementations (immutable to callers).
type config struct {
	// Uniform source for every draw; nil means "not configured".
	src Source
	// Repair-loop budget for CliqueSizes; 0 means "derive from target".
	maxIterations int
}

// newConfig constructs a config with deterministic defaults and applies all
// options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// iterationBudget returns the CliqueSizes iteration cap for the given target.
// An explicit WithMaxIterations wins; otherwise the budget is
// max(DefaultMaxIterations, iterationsPerStub*target).
func (c config) iterationBudget(target int) int {
	if c.maxIterations > 0 {
		return c.maxIterations
	}
	if target > math.MaxInt/iterationsPerStub {
		return math.MaxInt
	}
	budget := DefaultMaxIterations
	if scaled := iterationsPerStub * target; scaled > budget {
		budget = scaled
	}

	return budget
}
