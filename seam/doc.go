// Package seam implements SeamPlacer and TopologicalCutter: selecting a
// vertex path along which a closed mesh is opened to disk topology (or,
// for an already-open mesh, simply identifying its longest boundary loop
// as the seam), and performing the vertex-duplication cut itself.
package seam
