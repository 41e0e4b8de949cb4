// Package curvature implements CurvatureAnalyzer: discrete per-vertex
// curvature estimates (angle deficit, a mean-curvature proxy, and
// Gaussian curvature) derived from incident-triangle geometry, used
// downstream to choose stitch kinds (stitchgrid.ClassifyCurvature).
package curvature
