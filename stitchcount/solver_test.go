package stitchcount_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/patternerr"
	"github.com/ravelcraft/patterngen/stitchcount"
)

func TestSolve_RowZeroIsAlwaysTheMagicRingCount(t *testing.T) {
	counts, err := stitchcount.Solve([]float64{0, 5, 5, 5}, 1)
	require.NoError(t, err)
	require.Equal(t, 6, counts[0])
}

func TestSolve_IdealCountRoundsLengthTimesStitchesPerCM(t *testing.T) {
	counts, err := stitchcount.Solve([]float64{0, 10}, 1)
	require.NoError(t, err)
	require.Equal(t, 10, counts[1])
}

func TestSolve_FloorsIdealCountAtMinStitchCount(t *testing.T) {
	counts, err := stitchcount.Solve([]float64{0, 0.1}, 1)
	require.NoError(t, err)
	require.Equal(t, 6, counts[1])
}

func TestSolve_ClampsGrowthToMaxDelta(t *testing.T) {
	// prev=6, MaxDelta(6)=6, so row 1 cannot exceed 12 even though the
	// requested length implies 100 stitches.
	counts, err := stitchcount.Solve([]float64{0, 100}, 1)
	require.NoError(t, err)
	require.Equal(t, 6, counts[0])
	require.Equal(t, 12, counts[1])
}

func TestSolve_ClampsShrinkToMaxDelta(t *testing.T) {
	counts, err := stitchcount.Solve([]float64{0, 60, 1}, 1)
	require.NoError(t, err)
	// counts[1]: ideal=60, clamped to prev(6)+MaxDelta(6)=12.
	require.Equal(t, 12, counts[1])
	// counts[2]: ideal floors to 6, but MaxDelta(12)=6 would allow down to
	// 6 anyway, and minStitchCount also floors it at 6.
	require.Equal(t, 6, counts[2])
}

func TestSolve_NeverDropsBelowMinStitchCountEvenWhenClampAllows(t *testing.T) {
	counts, err := stitchcount.Solve([]float64{0, 600, 0}, 1)
	require.NoError(t, err)
	require.GreaterOrEqual(t, counts[len(counts)-1], 6)
}

func TestSolve_NonPositiveGaugeReturnsInvalidConfigurationError(t *testing.T) {
	_, err := stitchcount.Solve([]float64{0, 5}, 0)
	require.ErrorIs(t, err, patternerr.ErrInvalidConfiguration)
}

func TestSolve_EmptyLengthsReturnsInvalidConfigurationError(t *testing.T) {
	_, err := stitchcount.Solve(nil, 1)
	require.ErrorIs(t, err, patternerr.ErrInvalidConfiguration)
}

func TestSolve_NegativeLengthClampsToZero(t *testing.T) {
	counts, err := stitchcount.Solve([]float64{0, -5}, 1)
	require.NoError(t, err)
	require.Equal(t, 6, counts[1])
}

func TestMaxDelta_FloorsAtMagicRingCount(t *testing.T) {
	require.Equal(t, 6, stitchcount.MaxDelta(6))
	require.Equal(t, 6, stitchcount.MaxDelta(30))
	require.Equal(t, 10, stitchcount.MaxDelta(60))
}
