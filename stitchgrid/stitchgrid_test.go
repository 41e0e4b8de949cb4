package stitchgrid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/stitchgrid"
	"github.com/ravelcraft/patterngen/stitchkind"
)

func uvQuad() mesh.MeshData {
	return mesh.MeshData{
		Vertices: []mesh.Vertex{
			{UV: geom.Point2D{X: 0, Y: 0}, Position: geom.Vec3{X: 0, Y: 0, Z: 0}},
			{UV: geom.Point2D{X: 1, Y: 0}, Position: geom.Vec3{X: 1, Y: 0, Z: 0}},
			{UV: geom.Point2D{X: 1, Y: 1}, Position: geom.Vec3{X: 1, Y: 1, Z: 0}},
			{UV: geom.Point2D{X: 0, Y: 1}, Position: geom.Vec3{X: 0, Y: 1, Z: 0}},
		},
		Faces: []mesh.Face{
			{A: 0, B: 1, C: 2},
			{A: 0, B: 2, C: 3},
		},
	}
}

func TestRowWidths_NonEmptyBandsMatchVertexSpan(t *testing.T) {
	widths := stitchgrid.RowWidths(uvQuad(), 2)
	require.Len(t, widths, 2)
	for _, w := range widths {
		require.InDelta(t, 1.0, w, 1e-9)
	}
}

func TestLayoutPositions_EvenlySpacesAcrossBand(t *testing.T) {
	positions := stitchgrid.LayoutPositions(uvQuad(), 2, 0, 3)
	require.Len(t, positions, 3)
}

func TestRelax_PreservesBoundaryValues(t *testing.T) {
	in := []float64{1, 10, 1, 10, 1}
	out := stitchgrid.Relax(in, 2, 0.5)
	require.Equal(t, in[0], out[0])
	require.Equal(t, in[len(in)-1], out[len(out)-1])
}

func TestRelax_ConstantSequenceIsFixedPoint(t *testing.T) {
	in := []float64{5, 5, 5, 5, 5}
	out := stitchgrid.Relax(in, 5, 0.5)
	for _, v := range out {
		require.InDelta(t, 5.0, v, 1e-9)
	}
}

func TestClassifyCurvature_HighCurvatureUpgradesOneStitch(t *testing.T) {
	kinds := []stitchkind.Kind{stitchkind.Single, stitchkind.Single, stitchkind.Single}
	out := stitchgrid.ClassifyCurvature(0.5, kinds)
	require.Equal(t, stitchkind.HalfDouble, out[0])
	require.Equal(t, stitchkind.Single, out[1])
}

func TestClassifyCurvature_LowCurvatureUnchanged(t *testing.T) {
	kinds := []stitchkind.Kind{stitchkind.Single, stitchkind.Single}
	out := stitchgrid.ClassifyCurvature(0.1, kinds)
	require.Equal(t, kinds, out)
}
