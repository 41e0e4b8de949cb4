package seam

import (
	"github.com/ravelcraft/patterngen/halfedge"
	"github.com/ravelcraft/patterngen/mesh"
)

// Cut duplicates every vertex on path and rewrites one side of the seam
// to reference the duplicates, opening the mesh to disk topology (§4.6).
//
// For each consecutive pair (path[i], path[i+1]) the half-edge whose
// Origin is path[i] and whose destination is path[i+1] identifies a
// single face unambiguously: a directed edge belongs to exactly one
// face, so walking forward along path and always rewriting that face's
// copy of the two vertices gives a single, consistent side for the
// entire seam without any additional bookkeeping.
func Cut(m mesh.MeshData, hm halfedge.HalfEdgeMesh, path []int) mesh.MeshData {
	if len(path) < minSeamPathLength {
		return m
	}

	dup := make(map[int]int, len(path))
	out := mesh.MeshData{
		Vertices: append([]mesh.Vertex(nil), m.Vertices...),
		Faces:    append([]mesh.Face(nil), m.Faces...),
	}
	for _, v := range path {
		dup[v] = len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices[v])
	}

	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		e, ok := findDirectedEdge(hm, a, b)
		if !ok {
			continue
		}
		f := hm.Edges[e].Face
		replaceFaceVertex(&out.Faces[f], a, dup[a])
		replaceFaceVertex(&out.Faces[f], b, dup[b])
	}

	out.RecomputeBounds()
	return out
}

// findDirectedEdge returns the index of the half-edge with Origin==from
// whose destination is to, if one exists.
func findDirectedEdge(hm halfedge.HalfEdgeMesh, from, to int) (int, bool) {
	for _, e := range hm.OutgoingFrom(from) {
		if hm.Destination(e) == to {
			return e, true
		}
	}
	return 0, false
}

// replaceFaceVertex rewrites every occurrence of oldV in f to newV.
func replaceFaceVertex(f *mesh.Face, oldV, newV int) {
	if f.A == oldV {
		f.A = newV
	}
	if f.B == oldV {
		f.B = newV
	}
	if f.C == oldV {
		f.C = newV
	}
}
