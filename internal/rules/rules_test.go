package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitality-ca/internal/core"
)

func TestApplyDiscrete(t *testing.T) {
	cases := []struct {
		vitality, n, want float64
	}{
		{1, 0, 0},
		{1, 1, 0},
		{1, 2, 1},
		{1, 3, 1},
		{1, 4, 0},
		{1, 8, 0},
		{0, 2, 0},
		{0, 3, 1},
		{0, 4, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ApplyDiscrete(tc.vitality, tc.n), "vitality=%v n=%v", tc.vitality, tc.n)
	}
}

func TestApplySmoothedBands(t *testing.T) {
	// Aggregates are ratio*8.
	assert.InDelta(t, 0.11, ApplySmoothed(0, 0.8), 1e-12, "growth band")
	assert.InDelta(t, 0.14, ApplySmoothed(0, 1.6), 1e-12, "decay band")
	assert.Equal(t, 0.05, ApplySmoothed(0, 0.4), "pass-through is exact")
}

func TestApplySmoothedIgnoresVitality(t *testing.T) {
	assert.Equal(t, ApplySmoothed(0, 1.6), ApplySmoothed(0.9, 1.6))
}

func TestClassifyEdges(t *testing.T) {
	assert.Equal(t, BandPass, Classify(GrowthLow))
	assert.Equal(t, BandPass, Classify(GrowthHigh))
	assert.Equal(t, BandGrowth, Classify(0.1))
	assert.Equal(t, BandDecay, Classify(0.5))
	assert.Equal(t, BandPass, Classify(0))

	assert.Equal(t, GrowthLow, ApplySmoothed(0, GrowthLow*SmoothDivisor))
	assert.Equal(t, GrowthHigh, ApplySmoothed(0, GrowthHigh*SmoothDivisor))
}

func TestParse(t *testing.T) {
	r, err := Parse("smoothed")
	require.NoError(t, err)
	assert.Equal(t, Smoothed, r)

	r, err = Parse("life")
	require.NoError(t, err)
	assert.Equal(t, Discrete, r)

	_, err = Parse("lenia")
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestFuncUnknownRule(t *testing.T) {
	_, err := Rule(7).Func()
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	assert.Equal(t, 0.4, Rule(7).Apply(0.4, 3), "unknown rules leave vitality untouched")
}

func TestRuleText(t *testing.T) {
	var r Rule
	require.NoError(t, r.UnmarshalText([]byte("smooth")))
	b, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "smoothed", string(b))
}
