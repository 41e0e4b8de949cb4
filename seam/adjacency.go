package seam

import "github.com/ravelcraft/patterngen/mesh"

// adjacency is an undirected vertex graph derived from face incidence: two
// vertices are adjacent whenever a face edge connects them. Weights are not
// stored here; callers compute Euclidean edge weight from vertex positions
// (§4.6), since storing redundant float64 weights per edge buys nothing a
// position lookup doesn't already give for free.
type adjacency map[int]map[int]struct{}

// buildAdjacency derives the vertex adjacency graph from a mesh's faces.
func buildAdjacency(m mesh.MeshData) adjacency {
	adj := make(adjacency, len(m.Vertices))
	link := func(a, b int) {
		if adj[a] == nil {
			adj[a] = make(map[int]struct{})
		}
		adj[a][b] = struct{}{}
	}
	for _, f := range m.Faces {
		idx := f.Indices()
		a, b, c := idx[0], idx[1], idx[2]
		link(a, b)
		link(b, a)
		link(b, c)
		link(c, b)
		link(c, a)
		link(a, c)
	}
	return adj
}
