package halfedge

import (
	"fmt"

	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/patternerr"
)

// directedKey identifies a directed edge a->b for twin pairing.
type directedKey struct{ a, b int }

// Build constructs a HalfEdgeMesh from an indexed triangle mesh.
//
// For each face, three directed half-edges are emitted with next/prev
// wired cyclically. VertexEdge is populated with any incident outgoing
// edge (last writer wins; any one works for traversal). Twins are paired
// by matching a directed edge a->b against its reverse b->a anywhere in
// the full edge list; unpaired half-edges are left with Twin == noTwin,
// marking them as boundary.
//
// Complexity: O(F) time and space where F is the face count.
func Build(m mesh.MeshData) (HalfEdgeMesh, error) {
	if len(m.Faces) == 0 {
		return HalfEdgeMesh{}, ErrEmptyMesh
	}

	edges := make([]HalfEdge, 0, len(m.Faces)*3)
	vertexEdge := make(map[int]int, len(m.Vertices))
	faceEdge := make(map[int]int, len(m.Faces))
	byDirected := make(map[directedKey]int, len(m.Faces)*3)

	for fi, f := range m.Faces {
		idx := f.Indices()
		base := len(edges)
		for k := 0; k < 3; k++ {
			a := idx[k]
			b := idx[(k+1)%3]
			he := HalfEdge{
				Origin: a,
				Face:   fi,
				Next:   base + (k+1)%3,
				Prev:   base + (k+2)%3,
				Twin:   noTwin,
			}
			edges = append(edges, he)
			vertexEdge[a] = base + k
			key := directedKey{a, b}
			if _, dup := byDirected[key]; dup {
				return HalfEdgeMesh{}, fmt.Errorf("%w: duplicate directed edge %d->%d (non-manifold face orientation)",
					patternerr.ErrInvalidConfiguration, a, b)
			}
			byDirected[key] = base + k
		}
		faceEdge[fi] = base
	}

	for key, ei := range byDirected {
		reverse := directedKey{key.b, key.a}
		if ti, ok := byDirected[reverse]; ok {
			edges[ei].Twin = ti
		}
	}

	return HalfEdgeMesh{Edges: edges, VertexEdge: vertexEdge, FaceEdge: faceEdge}, nil
}
