// Package stitchcount converts per-row physical measurements
// (circumference for the profile path, width for the mesh path) into
// integer stitch-count targets subject to the fabric's physical
// realizability constraint: a row may at most double (all increases) or
// halve (all invisible decreases) relative to the row beneath it.
package stitchcount
