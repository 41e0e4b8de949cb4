// Package sampler implements CurveSampler: uniform arc-length sampling
// of an ordered sequence of cubic Bézier segments.
//
// Arc length per segment is computed by adaptive Simpson integration of
// the speed function ‖P′(t)‖ (the standard recursive-Simpson refinement:
// split in half whenever the coarse and fine estimates disagree by more
// than 15·ε, a classical a-posteriori error estimate for Simpson's
// rule). Sample positions are then located by Newton–Raphson root
// finding on the segment's own arc-length function.
package sampler
