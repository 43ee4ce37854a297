package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func points(percentiles ...float64) []PercentilePoint {
	out := make([]PercentilePoint, len(percentiles))
	for i, p := range percentiles {
		out[i] = PercentilePoint{Percentile: PercentileRequest{Value: p}, X: p, Y: p / 100}
	}
	return out
}

func TestOrganizePercentiles_SymmetricTriple(t *testing.T) {
	got := OrganizePercentiles(points(10, 50, 90), 50)

	require.NotNil(t, got.Primary)
	assert.Equal(t, 50.0, got.Primary.Percentile.Value)

	require.Len(t, got.Pairs, 1)
	require.NotNil(t, got.Pairs[0].Lower)
	require.NotNil(t, got.Pairs[0].Upper)
	assert.Equal(t, 10.0, got.Pairs[0].Lower.Percentile.Value)
	assert.Equal(t, 90.0, got.Pairs[0].Upper.Percentile.Value)
	assert.Equal(t, 0.3, got.Pairs[0].Opacity)

	assert.Empty(t, got.Singles)
}

func TestOrganizePercentiles_UnbalancedSides(t *testing.T) {
	got := OrganizePercentiles(points(25, 50, 75, 90), 50)

	require.NotNil(t, got.Primary)
	assert.Equal(t, 50.0, got.Primary.Percentile.Value)

	// below={25}, above={75,90}: one pair, 90 left over
	require.Len(t, got.Pairs, 1)
	assert.Equal(t, 25.0, got.Pairs[0].Lower.Percentile.Value)
	assert.Equal(t, 75.0, got.Pairs[0].Upper.Percentile.Value)

	require.Len(t, got.Singles, 1)
	assert.Equal(t, 90.0, got.Singles[0].Percentile.Value)
}

func TestOrganizePercentiles_OpacityFades(t *testing.T) {
	got := OrganizePercentiles(points(5, 10, 25, 50, 75, 90, 95), 50)

	require.Len(t, got.Pairs, 3)
	// Innermost pair first, opacity fading 0.3, 0.2, 0.1
	assert.Equal(t, 25.0, got.Pairs[0].Lower.Percentile.Value)
	assert.Equal(t, 75.0, got.Pairs[0].Upper.Percentile.Value)
	assert.InDelta(t, 0.3, got.Pairs[0].Opacity, 1e-12)
	assert.Equal(t, 10.0, got.Pairs[1].Lower.Percentile.Value)
	assert.InDelta(t, 0.2, got.Pairs[1].Opacity, 1e-12)
	assert.Equal(t, 5.0, got.Pairs[2].Lower.Percentile.Value)
	assert.InDelta(t, 0.1, got.Pairs[2].Opacity, 1e-12)
}

func TestOrganizePercentiles_MiddleFallbackWhenPrimaryAbsent(t *testing.T) {
	got := OrganizePercentiles(points(10, 30, 60, 90), 50)

	// Sorted middle (index 2) takes over as primary
	require.NotNil(t, got.Primary)
	assert.Equal(t, 60.0, got.Primary.Percentile.Value)
}

func TestOrganizePercentiles_Empty(t *testing.T) {
	got := OrganizePercentiles(nil, 50)

	assert.Nil(t, got.Primary)
	assert.Empty(t, got.Pairs)
	assert.Empty(t, got.Singles)
}

func TestOrganizePercentiles_SinglePoint(t *testing.T) {
	// A lone non-primary point stays a single marker
	got := OrganizePercentiles(points(90), 50)
	assert.Nil(t, got.Primary)
	require.Len(t, got.Singles, 1)
	assert.Equal(t, 90.0, got.Singles[0].Percentile.Value)

	// Unless it is the primary itself
	got = OrganizePercentiles(points(50), 50)
	require.NotNil(t, got.Primary)
	assert.Empty(t, got.Singles)
	assert.Empty(t, got.Pairs)
}

func TestOrganizePercentiles_TwoPointsHalfBand(t *testing.T) {
	got := OrganizePercentiles(points(50, 90), 50)

	require.NotNil(t, got.Primary)
	assert.Equal(t, 50.0, got.Primary.Percentile.Value)

	// The survivor forms a band with the primary side left nil
	require.Len(t, got.Pairs, 1)
	assert.Nil(t, got.Pairs[0].Lower)
	require.NotNil(t, got.Pairs[0].Upper)
	assert.Equal(t, 90.0, got.Pairs[0].Upper.Percentile.Value)
	assert.Equal(t, 0.3, got.Pairs[0].Opacity)
	assert.Empty(t, got.Singles)
}

func TestOrganizePercentiles_ManyPairsOpacityNotClamped(t *testing.T) {
	got := OrganizePercentiles(points(1, 2, 3, 4, 50, 96, 97, 98, 99), 50)

	require.Len(t, got.Pairs, 4)
	assert.InDelta(t, 0.0, got.Pairs[3].Opacity, 1e-12, "fade is reproduced as-is, not clamped")
}
