package sampler

import (
	"github.com/ravelcraft/patterngen/geom"
)

// minTotalLength below which the whole curve is treated as a single
// point: every sample repeats the start (§4.1 failure modes).
const minTotalLength = 1e-10

// minSpeed below which Newton-Raphson halts (degenerate derivative) and
// accepts the current parameter estimate (§4.1 failure modes).
const minSpeed = 1e-10

// maxNewtonIterations caps the Newton-Raphson refinement (§4.1).
const maxNewtonIterations = 20

// Sample returns n points on curve spaced uniformly by arc length. The
// first and last returned points are always exactly curve.Start() and
// curve.End(). An empty curve returns an empty slice; a curve whose
// total arc length is below minTotalLength returns n copies of the
// start point.
//
// Callers that must reject an empty/discontinuous curve as a fatal
// configuration error should call curve.Validate() first (§8); Sample
// itself is a pure geometric operation and degrades gracefully instead
// of erroring, matching §4.1's own failure-mode table.
func Sample(curve geom.ProfileCurve, n int) []geom.Point2D {
	if len(curve.Segments) == 0 {
		return nil
	}
	if n < 2 {
		n = 2
	}

	segLengths := make([]float64, len(curve.Segments))
	prefix := make([]float64, len(curve.Segments)+1)
	for i, seg := range curve.Segments {
		segLengths[i] = segmentLength(seg)
		prefix[i+1] = prefix[i] + segLengths[i]
	}
	total := prefix[len(prefix)-1]

	out := make([]geom.Point2D, n)
	out[0] = curve.Start()
	out[n-1] = curve.End()

	if total < minTotalLength {
		for i := range out {
			out[i] = curve.Start()
		}
		return out
	}

	for i := 1; i < n-1; i++ {
		targetDist := total * float64(i) / float64(n-1)
		out[i] = pointAtArcDistance(curve.Segments, prefix, targetDist)
	}
	return out
}

// pointAtArcDistance locates the enclosing segment for targetDist via
// the prefix-sum array, then solves for the local parameter t by
// Newton-Raphson on the segment's own arc-length function.
func pointAtArcDistance(segs []geom.SplineSegment, prefix []float64, targetDist float64) geom.Point2D {
	segIdx := len(segs) - 1
	for i := 0; i < len(segs); i++ {
		if targetDist <= prefix[i+1] {
			segIdx = i
			break
		}
	}
	seg := segs[segIdx]
	localTarget := targetDist - prefix[segIdx]

	t := 0.5
	if segLen := prefix[segIdx+1] - prefix[segIdx]; segLen > 0 {
		t = localTarget / segLen
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	for iter := 0; iter < maxNewtonIterations; iter++ {
		speed := seg.Speed(t)
		if speed < minSpeed {
			break
		}
		lt := segmentLengthTo(seg, t)
		t -= (lt - localTarget) / speed
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}

	return seg.PointAt(t)
}
