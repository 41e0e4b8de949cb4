package seam_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/halfedge"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/seam"
)

// openQuad is two triangles sharing a diagonal, forming a square with an
// open boundary (a single 4-vertex loop).
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

// tetrahedron is a minimal closed mesh (4 vertices, 4 faces, no boundary).
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

func TestPlace_OpenMeshUsesLongestBoundaryLoop(t *testing.T) {
	m := openQuad()
	hm, err := halfedge.Build(m)
	require.NoError(t, err)

	placement, err := seam.Place(m, hm)
	require.NoError(t, err)
	require.True(t, placement.AlreadyOpen)
	require.Len(t, placement.Path, 4)
}

func TestPlace_ClosedMeshFindsPath(t *testing.T) {
	m := tetrahedron()
	hm, err := halfedge.Build(m)
	require.NoError(t, err)

	placement, err := seam.Place(m, hm)
	require.NoError(t, err)
	require.False(t, placement.AlreadyOpen)
	require.GreaterOrEqual(t, len(placement.Path), 2)
}

func TestCut_DuplicatesSeamVertices(t *testing.T) {
	m := tetrahedron()
	hm, err := halfedge.Build(m)
	require.NoError(t, err)

	placement, err := seam.Place(m, hm)
	require.NoError(t, err)

	cut := seam.Cut(m, hm, placement.Path)
	require.Equal(t, len(m.Vertices)+len(placement.Path), len(cut.Vertices))
	require.Equal(t, len(m.Faces), len(cut.Faces))
}

func TestPlace_SingleTriangleBoundaryLoopIsValidSeam(t *testing.T) {
	m := mesh.MeshData{
		Vertices: []mesh.Vertex{
			{Position: geom.Vec3{X: 0, Y: 0, Z: 0}},
			{Position: geom.Vec3{X: 1, Y: 0, Z: 0}},
			{Position: geom.Vec3{X: 0, Y: 1, Z: 0}},
		},
		Faces: []mesh.Face{{A: 0, B: 1, C: 2}},
	}
	hm, err := halfedge.Build(m)
	require.NoError(t, err)

	placement, err := seam.Place(m, hm)
	require.NoError(t, err)
	require.True(t, placement.AlreadyOpen)
	require.Len(t, placement.Path, 3)
}
