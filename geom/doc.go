// Package geom defines the scalar geometry primitives shared across the
// pattern-generation pipeline: 2-D points, 3-D vectors, and cubic Bézier
// spline segments.
//
// Every downstream package (sampler, mesh, halfedge, param, stitchgrid)
// builds on these types rather than rolling its own point/vector math, so
// arithmetic conventions (right-handed cross product, unit-length
// tolerance, NaN/Inf treatment) stay consistent end to end.
package geom
