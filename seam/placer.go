package seam

import (
	"fmt"
	"math"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/halfedge"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/patternerr"
)

// minSeamPathLength is the minimum number of vertices a seam path must
// contain to be usable by TopologicalCutter (§4.6).
const minSeamPathLength = 2

// Placement is the result of placing a seam: the ordered vertex path
// forming the seam, and whether the mesh already has an open boundary
// (in which case TopologicalCutter has nothing to do).
type Placement struct {
	Path        []int
	AlreadyOpen bool
}

// Place selects the seam path for m (§4.6). If the half-edge mesh has one
// or more boundary loops, the longest loop is returned directly as the
// seam (AlreadyOpen=true: there is nothing left to cut). Otherwise m is
// closed, and Place samples roughly sqrt(N) candidate vertices, picks the
// farthest-apart pair among them by Euclidean distance, and returns the
// shortest vertex path between that pair as the seam to cut along.
func Place(m mesh.MeshData, hm halfedge.HalfEdgeMesh) (Placement, error) {
	if loops := hm.BoundaryLoops(); len(loops) > 0 {
		longest := loops[0]
		for _, loop := range loops[1:] {
			if len(loop) > len(longest) {
				longest = loop
			}
		}
		if len(longest) < minSeamPathLength {
			return Placement{}, fmt.Errorf("%w: longest boundary loop has %d vertices, need >= %d",
				patternerr.ErrSeamPlacementFailure, len(longest), minSeamPathLength)
		}
		return Placement{Path: longest, AlreadyOpen: true}, nil
	}

	src, dst := farthestPair(m)
	adj := buildAdjacency(m)
	positions := make([]geom.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position
	}
	path := shortestPath(adj, positions, src, dst)
	if len(path) < minSeamPathLength {
		return Placement{}, fmt.Errorf("%w: shortest path between vertices %d and %d has %d vertices, need >= %d",
			patternerr.ErrSeamPlacementFailure, src, dst, len(path), minSeamPathLength)
	}
	return Placement{Path: path}, nil
}

// candidateCount controls how many vertices are sampled as seam-endpoint
// candidates: roughly sqrt(N), per §4.6.
func candidateCount(n int) int {
	c := int(math.Sqrt(float64(n)))
	if c < 2 {
		c = 2
	}
	if c > n {
		c = n
	}
	return c
}

// farthestPair samples candidateCount(N) evenly-strided vertices and
// returns the pair among them with the largest Euclidean separation.
func farthestPair(m mesh.MeshData) (int, int) {
	n := len(m.Vertices)
	k := candidateCount(n)
	stride := n / k
	if stride < 1 {
		stride = 1
	}
	candidates := make([]int, 0, k)
	for i := 0; i < n && len(candidates) < k; i += stride {
		candidates = append(candidates, i)
	}

	bestA, bestB := candidates[0], candidates[0]
	bestDist := -1.0
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			a, b := candidates[i], candidates[j]
			d := m.Vertices[a].Position.Distance(m.Vertices[b].Position)
			if d > bestDist {
				bestDist = d
				bestA, bestB = a, b
			}
		}
	}
	return bestA, bestB
}
