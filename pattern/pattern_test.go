package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/pattern"
	"github.com/ravelcraft/patterngen/stitchkind"
)

func TestRow_StringRendersRunLengthGroups(t *testing.T) {
	kinds := []stitchkind.Kind{
		stitchkind.Single, stitchkind.Single,
		stitchkind.Increase,
		stitchkind.Single, stitchkind.Single, stitchkind.Single,
	}
	row := pattern.BuildRow(2, kinds)
	require.Equal(t, "2 sc, 1 inc, 3 sc (7)", row.String())
}

func TestBuildRow_MagicRingUsesSixAngles(t *testing.T) {
	kinds := make([]stitchkind.Kind, 6)
	for i := range kinds {
		kinds[i] = stitchkind.Single
	}
	row := pattern.BuildRow(1, kinds)
	require.Equal(t, 6, row.TargetCount)
	require.Len(t, row.Instructions, 6)
	require.InDelta(t, 0, row.Instructions[0].AngleRadians, 1e-9)
}

func TestRow_GroupsCollapsesConsecutiveKinds(t *testing.T) {
	row := pattern.BuildRow(3, []stitchkind.Kind{stitchkind.Single, stitchkind.Single, stitchkind.Double})
	groups := row.Groups()
	require.Equal(t, []pattern.StitchGroup{
		{Kind: stitchkind.Single, Count: 2},
		{Kind: stitchkind.Double, Count: 1},
	}, groups)
}
