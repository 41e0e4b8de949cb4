package param

import "math"

// maxCGIterations and cgTolerance bound the conjugate-gradient solve of
// the LSCM normal equations (§4.7).
const (
	maxCGIterations = 2000
	cgTolerance     = 1e-8
)

// conjugateGradient solves ne.ata * x = ne.atb for a symmetric
// positive-(semi)definite system, starting from x=0. Returns the
// solution and whether it converged within maxCGIterations.
func conjugateGradient(ne *normalEquations) ([]float64, bool) {
	n := ne.n
	x := make([]float64, n)
	r := make([]float64, n)
	copy(r, ne.atb)
	p := make([]float64, n)
	copy(p, r)

	rsOld := dot(r, r)
	if rsOld < cgTolerance*cgTolerance {
		return x, true
	}

	for iter := 0; iter < maxCGIterations; iter++ {
		ap := ne.matVec(p)
		denom := dot(p, ap)
		if math.Abs(denom) < 1e-300 {
			return x, false
		}
		alpha := rsOld / denom
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rsNew := dot(r, r)
		if rsNew < cgTolerance*cgTolerance {
			return x, isFinite(x)
		}
		beta := rsNew / rsOld
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rsOld = rsNew
	}
	return x, isFinite(x) && rsOld < cgTolerance*cgTolerance
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
