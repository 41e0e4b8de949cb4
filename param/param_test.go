package param_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/param"
	"github.com/ravelcraft/patterngen/patternerr"
)

// flatSquare is a planar two-triangle quad already isometric to its own
// UV plane: a correct LSCM solve should recover it up to rigid motion.
func flatSquare() mesh.MeshData {
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

func TestParameterize_PlanarMeshIsAffinelyIsometric(t *testing.T) {
	m := flatSquare()
	out, err := param.Parameterize(m, 0, 1)
	require.NoError(t, err)

	pinDist := out.Vertices[0].Position.Distance(out.Vertices[1].Position)
	scale := 1.0 / pinDist // pinned UV distance is fixed to 1 (§4.7)

	for _, f := range out.Faces {
		idx := f.Indices()
		a, b := out.Vertices[idx[0]], out.Vertices[idx[1]]
		uvDist := a.UV.Distance(b.UV)
		spaceDist := a.Position.Distance(b.Position)
		require.InDelta(t, spaceDist*scale, uvDist, 1e-3)
	}
}

func TestParameterize_TooFewVertices(t *testing.T) {
	m := mesh.MeshData{
		Vertices: []mesh.Vertex{{}, {}},
		Faces:    nil,
	}
	_, err := param.Parameterize(m, 0, 1)
	require.ErrorIs(t, err, patternerr.ErrParameterizationFailure)
}

func TestParameterize_InvalidPins(t *testing.T) {
	m := flatSquare()
	_, err := param.Parameterize(m, 0, 0)
	require.ErrorIs(t, err, patternerr.ErrParameterizationFailure)
}
