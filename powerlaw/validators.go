// SPDX-License-Identifier: MIT
// Package: rggen/powerlaw
//
// validators.go - validation helpers shared by the operations.
//
// Each helper returns an error wrapping the matching sentinel with the
// method prefix when its precondition is violated.

package powerlaw

import (
	"fmt"
	"math"
)

// validateRange ensures MinSupportValue ≤ minVal ≤ maxVal.
// Complexity: O(1).
func validateRange(method string, minVal, maxVal int) error {
	if minVal < MinSupportValue {
		return fmt.Errorf("%s: min=%d must be ≥ %d: %w", method, minVal, MinSupportValue, ErrInvalidRange)
	}
	if minVal > maxVal {
		return fmt.Errorf("%s: min=%d > max=%d: %w", method, minVal, maxVal, ErrInvalidRange)
	}

	return nil
}

// validateExponent ensures the exponent is finite and strictly positive.
// Complexity: O(1).
func validateExponent(method string, exponent float64) error {
	if math.IsNaN(exponent) || math.IsInf(exponent, 0) {
		return fmt.Errorf("%s: exponent must be finite, got %v: %w", method, exponent, ErrInvalidInput)
	}
	if exponent <= 0 {
		return fmt.Errorf("%s: exponent must be > 0, got %v: %w", method, exponent, ErrInvalidInput)
	}

	return nil
}

// requireSource returns cfg.src or ErrNeedRandSource.
func requireSource(method string, cfg config) (Source, error) {
	if cfg.src == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return cfg.src, nil
}
