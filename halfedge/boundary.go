package halfedge

// BoundaryLoops walks every boundary half-edge (one with no twin) and
// groups them into closed vertex loops by chaining each edge's
// destination vertex to the next boundary edge originating there.
//
// Returns the loops as ordered vertex-index slices (loop[i] -> loop[i+1]
// along the boundary, wrapping). A closed mesh with no boundary returns
// an empty slice.
func (hm HalfEdgeMesh) BoundaryLoops() [][]int {
	boundaryByOrigin := make(map[int]int) // origin vertex -> boundary half-edge index
	for i, e := range hm.Edges {
		if !e.HasTwin() {
			boundaryByOrigin[e.Origin] = i
		}
	}
	if len(boundaryByOrigin) == 0 {
		return nil
	}

	visited := make(map[int]bool, len(boundaryByOrigin))
	var loops [][]int
	for start, startEdge := range boundaryByOrigin {
		if visited[start] {
			continue
		}
		var loop []int
		cur := startEdge
		for {
			origin := hm.Edges[cur].Origin
			if visited[origin] {
				break
			}
			visited[origin] = true
			loop = append(loop, origin)
			dest := hm.Destination(cur)
			next, ok := boundaryByOrigin[dest]
			if !ok || dest == start {
				break
			}
			cur = next
		}
		if len(loop) > 0 {
			loops = append(loops, loop)
		}
	}
	return loops
}
