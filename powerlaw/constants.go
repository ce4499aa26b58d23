// Package powerlaw defines shared constants used by the samplers, keeping
// error prefixes and defaults consistent across operations.
package powerlaw

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNewDistribution is the canonical name for NewDistribution.
	MethodNewDistribution = "NewDistribution"
	// MethodSequence is the canonical name for Sequence.
	MethodSequence = "Sequence"
	// MethodCliqueSizes is the canonical name for CliqueSizes.
	MethodCliqueSizes = "CliqueSizes"
	// MethodFit is the canonical name for Fit.
	MethodFit = "Fit"
)

//-----------------------------------------------------------------------------
// Support bounds
//-----------------------------------------------------------------------------

// MinSupportValue is the smallest admissible support value. Zero would make
// the weight 0^(-exponent) infinite.
const MinSupportValue = 1

//-----------------------------------------------------------------------------
// Repair loop budget
//-----------------------------------------------------------------------------

// DefaultMaxIterations is the lower bound of the CliqueSizes iteration budget
// when WithMaxIterations is not given. One iteration is one add or one
// removal.
const DefaultMaxIterations = 1_000_000

// iterationsPerStub scales the default budget with the target sum, so large
// membership sequences are not cut off by DefaultMaxIterations alone.
const iterationsPerStub = 16
