// Package radius implements RadiusProfiler: a 1-D Gaussian smoothing
// pass over a sequence of (radius, height) samples, used to tame
// digitization noise in a profile curve before row mapping.
package radius
