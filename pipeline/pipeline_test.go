package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/config"
	"github.com/ravelcraft/patterngen/gauge"
	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/patternerr"
	"github.com/ravelcraft/patterngen/pipeline"
)

func testGauge() gauge.YarnGauge {
	return gauge.YarnGauge{StitchesPerCM: 1, RowsPerCM: 1, HookSizeMM: 4}
}

// coneProfile sweeps an expanding radius from 0.5 to 3 over a height of
// 6 cm, the straight-line cubic Bézier degenerating to a line.
func coneProfile() geom.ProfileCurve {
	return geom.ProfileCurve{Segments: []geom.SplineSegment{
		{
			Start: geom.Point2D{X: 0.5, Y: 0},
			C1:    geom.Point2D{X: 1.5, Y: 2},
			C2:    geom.Point2D{X: 2.5, Y: 4},
			End:   geom.Point2D{X: 3, Y: 6},
		},
	}}
}

func TestRunProfile_ProducesOneRowPerRowCountWithMagicRingFirst(t *testing.T) {
	cfg, err := config.New(6, testGauge())
	require.NoError(t, err)

	p, err := pipeline.RunProfile(context.Background(), coneProfile(), cfg)
	require.NoError(t, err)

	require.Equal(t, 6, len(p.Rows))
	require.Equal(t, 1, p.Rows[0].Number)
	require.Equal(t, 6, p.Rows[0].TargetCount)
	require.Equal(t, len(p.Rows), p.Metadata.RowCount)

	for i, row := range p.Rows {
		require.Equal(t, i+1, row.Number)
	}
}

func TestRunProfile_ExpandingRadiusGrowsStitchCount(t *testing.T) {
	cfg, err := config.New(6, testGauge())
	require.NoError(t, err)

	p, err := pipeline.RunProfile(context.Background(), coneProfile(), cfg)
	require.NoError(t, err)

	last := p.Rows[len(p.Rows)-1]
	require.Greater(t, last.TargetCount, p.Rows[0].TargetCount)
}

func TestRunProfile_InvalidConfigurationReturnsError(t *testing.T) {
	_, err := pipeline.RunProfile(context.Background(), coneProfile(), config.Config{})
	require.ErrorIs(t, err, patternerr.ErrInvalidConfiguration)
}

func TestRunProfile_InvalidCurveReturnsError(t *testing.T) {
	cfg, err := config.New(6, testGauge())
	require.NoError(t, err)

	_, err = pipeline.RunProfile(context.Background(), geom.ProfileCurve{}, cfg)
	require.ErrorIs(t, err, patternerr.ErrInvalidProfileCurve)
}

// openQuad is two triangles sharing a diagonal: an open square, the
// simplest mesh SeamPlacer can treat as already-open.
func openQuad() mesh.MeshData {
	return mesh.MeshData{
		Vertices: []mesh.Vertex{
			{Position: geom.Vec3{X: 0, Y: 0, Z: 0}},
			{Position: geom.Vec3{X: 1, Y: 0, Z: 0}},
			{Position: geom.Vec3{X: 1, Y: 1, Z: 0}},
			{Position: geom.Vec3{X: 0, Y: 1, Z: 0}},
		},
		Faces: []mesh.Face{
			{A: 0, B: 1, C: 2},
			{A: 0, B: 2, C: 3},
		},
	}
}

func TestRunMesh_OpenMeshProducesPattern(t *testing.T) {
	cfg, err := config.New(2, testGauge())
	require.NoError(t, err)

	p, _, err := pipeline.RunMesh(context.Background(), openQuad(), cfg)
	require.NoError(t, err)

	require.Equal(t, 2, len(p.Rows))
	require.Equal(t, 1, p.Rows[0].Number)
	require.Equal(t, 6, p.Rows[0].TargetCount)
}

func TestRunMesh_InvalidConfigurationReturnsError(t *testing.T) {
	_, _, err := pipeline.RunMesh(context.Background(), openQuad(), config.Config{})
	require.ErrorIs(t, err, patternerr.ErrInvalidConfiguration)
}

func TestRunMesh_TooFewVerticesReturnsError(t *testing.T) {
	cfg, err := config.New(2, testGauge())
	require.NoError(t, err)

	_, _, err = pipeline.RunMesh(context.Background(), mesh.MeshData{
		Vertices: []mesh.Vertex{{}, {}},
	}, cfg)
	require.ErrorIs(t, err, patternerr.ErrParameterizationFailure)
}
