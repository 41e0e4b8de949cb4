package curvature

import (
	"math"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
)

// fullCircle is the angle sum a flat vertex neighborhood would have.
const fullCircle = 2 * math.Pi

// minNeighbors and minAreaSum guard the two curvature ratios against
// division by zero on isolated or degenerate vertices.
const (
	minNeighbors = 1
	minAreaSum   = 1e-12
)

// Estimate holds the three per-vertex curvature quantities (§4.8).
type Estimate struct {
	AngleDeficit      float64
	MeanCurvature     float64
	GaussianCurvature float64
}

// Analyze computes angle-deficit, a mean-curvature proxy (deficit over
// neighbor count), and discrete Gaussian curvature (deficit over one
// third of incident-triangle area) for every vertex in m (§4.8).
func Analyze(m mesh.MeshData) []Estimate {
	n := len(m.Vertices)
	angleSum := make([]float64, n)
	areaSum := make([]float64, n)
	neighbors := make([]map[int]struct{}, n)
	for i := range neighbors {
		neighbors[i] = make(map[int]struct{})
	}

	for _, f := range m.Faces {
		idx := f.Indices()
		p := [3]geom.Vec3{m.Vertices[idx[0]].Position, m.Vertices[idx[1]].Position, m.Vertices[idx[2]].Position}
		area := triangleArea(p[0], p[1], p[2])
		for k := 0; k < 3; k++ {
			a, b, c := idx[k], idx[(k+1)%3], idx[(k+2)%3]
			angleSum[a] += vertexAngle(p[k], p[(k+1)%3], p[(k+2)%3])
			areaSum[a] += area
			neighbors[a][b] = struct{}{}
			neighbors[a][c] = struct{}{}
		}
	}

	out := make([]Estimate, n)
	for v := 0; v < n; v++ {
		deficit := fullCircle - angleSum[v]

		nbrCount := len(neighbors[v])
		if nbrCount < minNeighbors {
			nbrCount = minNeighbors
		}
		mean := deficit / float64(nbrCount)

		area := areaSum[v] / 3.0
		var gauss float64
		if area > minAreaSum {
			gauss = deficit / area
		}

		out[v] = Estimate{AngleDeficit: deficit, MeanCurvature: mean, GaussianCurvature: gauss}
	}
	return out
}

// AnnotateMesh writes each vertex's MeanCurvature into its Curvature
// field, returning a copy of m with vertices updated.
func AnnotateMesh(m mesh.MeshData) mesh.MeshData {
	estimates := Analyze(m)
	out := mesh.MeshData{
		Vertices: append([]mesh.Vertex(nil), m.Vertices...),
		Faces:    m.Faces,
		Bounds:   m.Bounds,
	}
	for v := range out.Vertices {
		mc := estimates[v].MeanCurvature
		out.Vertices[v].Curvature = &mc
	}
	return out
}

// vertexAngle returns the interior angle at p0 in the triangle p0,p1,p2.
func vertexAngle(p0, p1, p2 geom.Vec3) float64 {
	u := p1.Sub(p0)
	v := p2.Sub(p0)
	ul, vl := u.Length(), v.Length()
	if ul < 1e-12 || vl < 1e-12 {
		return 0
	}
	cos := u.Dot(v) / (ul * vl)
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// triangleArea returns the area of the triangle p0,p1,p2.
func triangleArea(p0, p1, p2 geom.Vec3) float64 {
	return 0.5 * p1.Sub(p0).Cross(p2.Sub(p0)).Length()
}
