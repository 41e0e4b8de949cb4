package param

import (
	"fmt"
	"math"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/patternerr"
)

// minVertices is the smallest vertex count Parameterize can operate on
// (a single triangle).
const minVertices = 3

// Parameterize computes a least-squares conformal map of m onto the
// plane, writing each vertex's UV field in place, pinning pinA to (0,0)
// and pinB to (1,0) (§4.7).
//
// Triangles whose local frame is degenerate (near-zero area) are skipped
// and contribute no constraint row, per §4.7. Returns
// patternerr.ErrParameterizationFailure if m has fewer than three
// vertices, pinA==pinB, or the conjugate-gradient solve fails to
// converge within maxCGIterations.
func Parameterize(m mesh.MeshData, pinA, pinB int) (mesh.MeshData, error) {
	n := len(m.Vertices)
	if n < minVertices {
		return m, fmt.Errorf("%w: mesh has %d vertices, need >= %d", patternerr.ErrParameterizationFailure, n, minVertices)
	}
	if pinA == pinB || pinA < 0 || pinB < 0 || pinA >= n || pinB >= n {
		return m, fmt.Errorf("%w: invalid pin vertices %d, %d", patternerr.ErrParameterizationFailure, pinA, pinB)
	}

	ne := newNormalEquations(2 * n)
	for _, f := range m.Faces {
		idx := f.Indices()
		accumulateTriangle(ne, m.Vertices[idx[0]].Position, m.Vertices[idx[1]].Position, m.Vertices[idx[2]].Position, idx)
	}

	ne.addPin(2*pinA, 0)
	ne.addPin(2*pinA+1, 0)
	ne.addPin(2*pinB, 1)
	ne.addPin(2*pinB+1, 0)
	ne.finalize()

	x, converged := conjugateGradient(ne)
	if !converged {
		return m, fmt.Errorf("%w: conjugate gradient did not converge within %d iterations",
			patternerr.ErrParameterizationFailure, maxCGIterations)
	}

	out := mesh.MeshData{
		Vertices: append([]mesh.Vertex(nil), m.Vertices...),
		Faces:    m.Faces,
		Bounds:   m.Bounds,
	}
	for v := range out.Vertices {
		out.Vertices[v].UV = geom.Point2D{X: x[2*v], Y: x[2*v+1]}
	}
	return out, nil
}

// accumulateTriangle folds one triangle's discrete Cauchy-Riemann
// constraint rows into ne, scaled by 1/sqrt(2*area) so triangles of
// varying size contribute comparably-conditioned rows.
func accumulateTriangle(ne *normalEquations, p1, p2, p3 geom.Vec3, idx [3]int) {
	fr := computeFrame(p1, p2, p3)
	if !fr.ok {
		return
	}
	w := 1.0 / math.Sqrt(2*fr.area)

	uA, vA := 2*idx[0], 2*idx[0]+1
	uB, vB := 2*idx[1], 2*idx[1]+1
	uC, vC := 2*idx[2], 2*idx[2]+1

	real := map[int]float64{
		uA: w * (fr.x3 - fr.x2),
		uB: w * (fr.x1 - fr.x3),
		uC: w * (fr.x2 - fr.x1),
		vA: -w * (fr.y3 - fr.y2),
		vB: -w * (fr.y1 - fr.y3),
		vC: -w * (fr.y2 - fr.y1),
	}
	imag := map[int]float64{
		uA: w * (fr.y3 - fr.y2),
		uB: w * (fr.y1 - fr.y3),
		uC: w * (fr.y2 - fr.y1),
		vA: w * (fr.x3 - fr.x2),
		vB: w * (fr.x1 - fr.x3),
		vC: w * (fr.x2 - fr.x1),
	}
	ne.addRow(real, 0)
	ne.addRow(imag, 0)
}
