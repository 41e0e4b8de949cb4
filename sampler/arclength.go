package sampler

import (
	"math"

	"github.com/ravelcraft/patterngen/geom"
)

// simpsonTolerance is the adaptive-Simpson integration tolerance (§4.1).
const simpsonTolerance = 1e-6

// maxSimpsonDepth bounds recursion so a pathological control-point
// configuration cannot recurse unboundedly.
const maxSimpsonDepth = 30

// simpsonEstimate evaluates Simpson's rule for f over [a,b] given the
// already-evaluated endpoints and midpoint.
func simpsonEstimate(fa, fm, fb, a, b float64) float64 {
	return (b - a) / 6 * (fa + 4*fm + fb)
}

// adaptiveSimpson integrates f over [a,b] to within tol, using the
// standard 15·ε adaptive-refinement criterion: if the coarse estimate
// (whole interval) and the fine estimate (two halves) disagree by more
// than 15·tol, recurse into each half with tol/2; otherwise accept the
// Richardson-extrapolated fine estimate.
func adaptiveSimpson(f func(float64) float64, a, b, tol float64, depth int) float64 {
	fa, fb := f(a), f(b)
	mid := (a + b) / 2
	fm := f(mid)
	whole := simpsonEstimate(fa, fm, fb, a, b)
	return adaptiveSimpsonRefine(f, a, b, fa, fm, fb, whole, tol, depth)
}

func adaptiveSimpsonRefine(f func(float64) float64, a, b, fa, fm, fb, whole, tol float64, depth int) float64 {
	mid := (a + b) / 2
	lm := (a + mid) / 2
	rm := (mid + b) / 2
	flm := f(lm)
	frm := f(rm)
	left := simpsonEstimate(fa, flm, fm, a, mid)
	right := simpsonEstimate(fm, frm, fb, mid, b)
	if depth >= maxSimpsonDepth || math.Abs(left+right-whole) <= 15*tol {
		// Richardson extrapolation: the standard correction term.
		return left + right + (left+right-whole)/15
	}
	return adaptiveSimpsonRefine(f, a, mid, fa, flm, fm, left, tol/2, depth+1) +
		adaptiveSimpsonRefine(f, mid, b, fm, frm, fb, right, tol/2, depth+1)
}

// segmentLength returns the arc length of s over [0,1] by adaptive
// Simpson integration of its speed function.
func segmentLength(s geom.SplineSegment) float64 {
	return adaptiveSimpson(s.Speed, 0, 1, simpsonTolerance, 0)
}

// segmentLengthTo returns the arc length of s over [0,t].
func segmentLengthTo(s geom.SplineSegment, t float64) float64 {
	if t <= 0 {
		return 0
	}
	return adaptiveSimpson(s.Speed, 0, t, simpsonTolerance, 0)
}
