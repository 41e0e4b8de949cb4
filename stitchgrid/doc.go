// Package stitchgrid implements StitchGridGenerator: banding a
// UV-parameterized mesh into row isolines and estimating each row's
// physical width, for consumption by stitchcount.Solve the same
// way RadiusProfiler+RowMapper feed it in the profile pipeline.
//
// Two supplementary passes round out the mesh-side row geometry: Relax
// applies Laplacian smoothing across adjacent rows' estimated lengths
// (damping isoline-crossing noise the way radius.Smooth damps profile
// noise), and ClassifyCurvature nudges a composed row's stitch kinds in
// response to mean curvature, swapping a Single for a taller HalfDouble
// on a pronounced convex bulge.
package stitchgrid
