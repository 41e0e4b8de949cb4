package param

import "math"

// pinWeight is the penalty weight applied to pinned-vertex constraint
// rows, large enough to dominate the conformal energy terms and fix the
// mapping's translation/rotation/scale gauge freedom.
const pinWeight = 1e6

// ridge is a small Tikhonov regularization term added to every diagonal
// entry, guarding against a singular system on degenerate input (e.g. an
// isolated unknown with no incident triangle after skipping degenerate
// triangles).
const ridge = 1e-10

// normalEquations accumulates AᵀA and Aᵀb directly from sparse equation
// rows, never materializing A itself (§4.7): each row contributes an
// outer product to AᵀA and a scaled contribution to Aᵀb.
type normalEquations struct {
	n   int // number of unknowns (2 * vertex count)
	ata []map[int]float64
	atb []float64
}

func newNormalEquations(n int) *normalEquations {
	return &normalEquations{n: n, ata: make([]map[int]float64, n), atb: make([]float64, n)}
}

// addRow folds a sparse equation row (coeffs, each index -> coefficient)
// with right-hand side b into the accumulating normal equations.
func (ne *normalEquations) addRow(coeffs map[int]float64, b float64) {
	for i, ai := range coeffs {
		if ne.ata[i] == nil {
			ne.ata[i] = make(map[int]float64, len(coeffs))
		}
		for j, aj := range coeffs {
			ne.ata[i][j] += ai * aj
		}
		ne.atb[i] += ai * b
	}
}

// addPin adds a heavily-weighted identity constraint fixing unknown idx
// to value.
func (ne *normalEquations) addPin(idx int, value float64) {
	ne.addRow(map[int]float64{idx: pinWeight}, pinWeight*value)
}

// finalize applies the ridge regularization to every diagonal entry.
func (ne *normalEquations) finalize() {
	for i := 0; i < ne.n; i++ {
		if ne.ata[i] == nil {
			ne.ata[i] = make(map[int]float64, 1)
		}
		ne.ata[i][i] += ridge
	}
}

// matVec computes AᵀA * x.
func (ne *normalEquations) matVec(x []float64) []float64 {
	out := make([]float64, ne.n)
	for i, row := range ne.ata {
		var sum float64
		for j, a := range row {
			sum += a * x[j]
		}
		out[i] = sum
	}
	return out
}

// isFinite reports whether every entry of v is finite, used to detect a
// diverged conjugate-gradient solve.
func isFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
