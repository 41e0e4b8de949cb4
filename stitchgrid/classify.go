package stitchgrid

import "github.com/ravelcraft/patterngen/stitchkind"

// highCurvatureThreshold marks a pronounced convex bulge: rows averaging
// above it get one Single lengthened to a HalfDouble to add height
// without perturbing the row's stitch count.
const highCurvatureThreshold = 0.3

// ClassifyCurvature nudges a composed row's stitch kinds in response to
// its average mean curvature (§4.9 supplement): on a pronounced convex
// bulge (avgCurvature above highCurvatureThreshold), the first Single in
// kinds is replaced with a HalfDouble. Below threshold, kinds is
// returned unchanged. The stitch count (and thus RowComposer's
// consumption/production invariants) is never altered.
func ClassifyCurvature(avgCurvature float64, kinds []stitchkind.Kind) []stitchkind.Kind {
	if avgCurvature <= highCurvatureThreshold {
		return kinds
	}
	out := append([]stitchkind.Kind(nil), kinds...)
	for i, k := range out {
		if k == stitchkind.Single {
			out[i] = stitchkind.HalfDouble
			break
		}
	}
	return out
}
