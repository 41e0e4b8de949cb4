package curvature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/curvature"
	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
)

// tetrahedron is a minimal closed mesh: every vertex's incident angles
// sum to less than 2*pi, so every vertex has a strictly positive, finite
// angle deficit.
func tetrahedron() mesh.MeshData {
	return mesh.MeshData{
		Vertices: []mesh.Vertex{
			{Position: geom.Vec3{X: 0, Y: 0, Z: 0}},
			{Position: geom.Vec3{X: 1, Y: 0, Z: 0}},
			{Position: geom.Vec3{X: 0, Y: 1, Z: 0}},
			{Position: geom.Vec3{X: 0, Y: 0, Z: 1}},
		},
		Faces: []mesh.Face{
			{A: 0, B: 2, C: 1},
			{A: 0, B: 1, C: 3},
			{A: 1, B: 2, C: 3},
			{A: 2, B: 0, C: 3},
		},
	}
}

func TestAnalyze_TetrahedronHasPositiveDeficit(t *testing.T) {
	estimates := curvature.Analyze(tetrahedron())
	require.Len(t, estimates, 4)
	for _, e := range estimates {
		require.True(t, e.AngleDeficit > 0 && e.AngleDeficit < 2*math.Pi)
		require.False(t, math.IsNaN(e.MeanCurvature))
		require.False(t, math.IsNaN(e.GaussianCurvature))
	}
}

func TestAnnotateMesh_SetsCurvatureField(t *testing.T) {
	out := curvature.AnnotateMesh(tetrahedron())
	for _, v := range out.Vertices {
		require.NotNil(t, v.Curvature)
	}
}
