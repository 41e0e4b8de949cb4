package seam

import (
	"container/heap"

	"github.com/ravelcraft/patterngen/geom"
)

// shortestPath computes the minimum-Euclidean-weight vertex path from src
// to dst over adj, using positions for edge weights. It follows the same
// lazy-decrease-key min-heap strategy as a textbook Dijkstra: stale heap
// entries are left in place and skipped via the visited set rather than
// decreased in place.
func shortestPath(adj adjacency, positions []geom.Vec3, src, dst int) []int {
	dist := make(map[int]float64, len(adj))
	prev := make(map[int]int, len(adj))
	visited := make(map[int]bool, len(adj))
	dist[src] = 0

	pq := make(nodePQ, 0, len(adj))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: src, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == dst {
			break
		}

		for v := range adj[u] {
			w := positions[u].Distance(positions[v])
			newDist := d + w
			if existing, ok := dist[v]; ok && newDist >= existing {
				continue
			}
			dist[v] = newDist
			prev[v] = u
			heap.Push(&pq, &nodeItem{id: v, dist: newDist})
		}
	}

	if !visited[dst] {
		return nil
	}

	path := []int{dst}
	for cur := dst; cur != src; {
		p, ok := prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}
	reverse(path)
	return path
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// nodeItem represents a vertex and its current tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with
// the lazy-decrease-key pattern: superseded entries are skipped on pop via
// the caller's visited set rather than removed from the heap.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
