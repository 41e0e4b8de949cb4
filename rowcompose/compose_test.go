package rowcompose_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/patternerr"
	"github.com/ravelcraft/patterngen/rowcompose"
	"github.com/ravelcraft/patterngen/stitchkind"
)

func countKinds(kinds []stitchkind.Kind) map[stitchkind.Kind]int {
	counts := make(map[stitchkind.Kind]int, len(kinds))
	for _, k := range kinds {
		counts[k]++
	}
	return counts
}

func TestComposeRow_GrowingRowEmitsSixIncreasesAndSixSingles(t *testing.T) {
	kinds, err := rowcompose.ComposeRow(12, 18)
	require.NoError(t, err)

	counts := countKinds(kinds)
	require.Equal(t, 6, counts[stitchkind.Increase])
	require.Equal(t, 6, counts[stitchkind.Single])
	require.Len(t, kinds, 12)
}

func TestComposeRow_ShrinkingRowEmitsSixInvisibleDecreasesAndSixSingles(t *testing.T) {
	kinds, err := rowcompose.ComposeRow(18, 12)
	require.NoError(t, err)

	counts := countKinds(kinds)
	require.Equal(t, 6, counts[stitchkind.InvisibleDecrease])
	require.Equal(t, 6, counts[stitchkind.Single])
	require.Len(t, kinds, 12)
}

func TestComposeRow_FlatRowIsAllSingles(t *testing.T) {
	kinds, err := rowcompose.ComposeRow(12, 12)
	require.NoError(t, err)

	require.Len(t, kinds, 12)
	for _, k := range kinds {
		require.Equal(t, stitchkind.Single, k)
	}
}

func TestComposeRow_ConsumptionAndProductionAlwaysMatchRowCounts(t *testing.T) {
	cases := []struct{ prev, target int }{
		{6, 6}, {6, 12}, {12, 6}, {12, 18}, {18, 12}, {7, 11}, {11, 7}, {20, 40}, {40, 20},
	}
	for _, c := range cases {
		kinds, err := rowcompose.ComposeRow(c.prev, c.target)
		require.NoError(t, err)

		var consumed, produced int
		for _, k := range kinds {
			consumed += k.Consumes()
			produced += k.Produces()
		}
		require.Equal(t, c.prev, consumed, "prev=%d target=%d", c.prev, c.target)
		require.Equal(t, c.target, produced, "prev=%d target=%d", c.prev, c.target)
	}
}

func TestComposeRow_NeverMixesIncreaseAndInvisibleDecreaseInOneRow(t *testing.T) {
	kinds, err := rowcompose.ComposeRow(12, 18)
	require.NoError(t, err)
	counts := countKinds(kinds)
	require.True(t, counts[stitchkind.Increase] == 0 || counts[stitchkind.InvisibleDecrease] == 0)
}

func TestComposeRow_NonPositiveCountsReturnInvalidConfigurationError(t *testing.T) {
	_, err := rowcompose.ComposeRow(0, 12)
	require.ErrorIs(t, err, patternerr.ErrInvalidConfiguration)

	_, err = rowcompose.ComposeRow(12, -1)
	require.ErrorIs(t, err, patternerr.ErrInvalidConfiguration)
}

func TestMagicRing_ReturnsSixSingles(t *testing.T) {
	kinds := rowcompose.MagicRing()
	require.Len(t, kinds, 6)
	for _, k := range kinds {
		require.Equal(t, stitchkind.Single, k)
	}
}
