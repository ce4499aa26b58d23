package powerlaw_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rggen/powerlaw"
)

// TestSequence_GoldenFixedDraws maps a fixed u sequence through the
// [1,10], exponent 2.5 table: CDF[0]≈0.7565, CDF[5]≈0.9845, CDF[6]≈0.9903.
func TestSequence_GoldenFixedDraws(t *testing.T) {
	t.Parallel()

	src := &fixedSource{us: []float64{0.01, 0.5, 0.99, 0.3, 0.7}}
	got, err := powerlaw.Sequence(5, 1, 10, 2.5, powerlaw.WithSource(src))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 7, 1, 1}, got)
	assert.Equal(t, 5, src.calls)
}

// TestSequence_LengthAndBounds checks |result| = n and range membership.
func TestSequence_LengthAndBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, min, max int
		exponent    float64
	}{
		{0, 1, 10, 2},
		{1, 1, 1, 2},
		{500, 1, 10, 2.5},
		{1000, 3, 50, 1.2},
		{1000, 100, 101, 0.5},
	}
	for _, tc := range tests {
		got, err := powerlaw.Sequence(tc.n, tc.min, tc.max, tc.exponent, powerlaw.WithSeed(42))
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got, tc.n)
		for i, v := range got {
			require.GreaterOrEqual(t, v, tc.min, "element %d", i)
			require.LessOrEqual(t, v, tc.max, "element %d", i)
		}
	}
}

// TestSequence_DeterministicPerSeed verifies golden-friendly reproducibility.
func TestSequence_DeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, err := powerlaw.Sequence(200, 1, 30, 2.1, powerlaw.WithSeed(7))
	require.NoError(t, err)
	b, err := powerlaw.Sequence(200, 1, 30, 2.1, powerlaw.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := powerlaw.Sequence(200, 1, 30, 2.1, powerlaw.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	assert.Equal(t, a, c, "WithRand and WithSeed with the same seed must agree")
}

// TestSequence_SharedRandAdvances checks that a caller-owned generator keeps
// its state across calls.
func TestSequence_SharedRandAdvances(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	first, err := powerlaw.Sequence(50, 1, 1000, 1.1, powerlaw.WithRand(r))
	require.NoError(t, err)
	second, err := powerlaw.Sequence(50, 1, 1000, 1.1, powerlaw.WithRand(r))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

// TestSequence_Statistical draws 100,000 values over [1,100] with exponent 2
// and checks the empirical frequencies against the PMF.
func TestSequence_Statistical(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test skipped in -short mode")
	}
	t.Parallel()

	const n = 100_000
	got, err := powerlaw.Sequence(n, 1, 100, 2, powerlaw.WithSeed(2024))
	require.NoError(t, err)

	d, err := powerlaw.NewDistribution(1, 100, 2)
	require.NoError(t, err)
	rep, err := powerlaw.Fit(got, d)
	require.NoError(t, err)
	assert.Equal(t, n, rep.N)
	assert.Equal(t, 99, rep.DegreesOfFreedom)
	assert.Greater(t, rep.PValue, 1e-4, "chi2=%.2f", rep.Statistic)

	// Head frequencies are far apart; they must not increase with the value.
	for v := 1; v < 6; v++ {
		assert.GreaterOrEqual(t, rep.Observed[v-1], rep.Observed[v], "freq(%d) < freq(%d)", v, v+1)
	}
	// P(1) = 1/Σ_{v≤100} v^-2 ≈ 0.6116.
	assert.InDelta(t, d.Probability(1), rep.Observed[0]/n, 0.01)
}

// TestSequence_Errors verifies sentinel classification and priority.
func TestSequence_Errors(t *testing.T) {
	t.Parallel()

	seed := powerlaw.WithSeed(1)
	tests := []struct {
		name     string
		n        int
		min, max int
		exponent float64
		opts     []powerlaw.Option
		want     error
	}{
		{"negative n", -1, 1, 10, 2, []powerlaw.Option{seed}, powerlaw.ErrInvalidInput},
		{"zero min", 5, 0, 10, 2, []powerlaw.Option{seed}, powerlaw.ErrInvalidRange},
		{"empty range", 5, 11, 10, 2, []powerlaw.Option{seed}, powerlaw.ErrInvalidRange},
		{"NaN exponent", 5, 1, 10, math.NaN(), []powerlaw.Option{seed}, powerlaw.ErrInvalidInput},
		{"no source", 5, 1, 10, 2, nil, powerlaw.ErrNeedRandSource},
		{"range before n", -1, 0, 10, 2, nil, powerlaw.ErrInvalidRange},
		{"input before source", -1, 1, 10, 2, nil, powerlaw.ErrInvalidInput},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := powerlaw.Sequence(tc.n, tc.min, tc.max, tc.exponent, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, got)
		})
	}
}
