// Package patterngen is a crochet pattern generation engine: it turns
// either a 2-D profile curve (a vase or amigurumi silhouette, swept
// around an axis) or an arbitrary 3-D mesh into a row-by-row stitch
// pattern at a given yarn gauge.
//
// Two independent pipelines share the same downstream stages:
//
//	profile path: sampler -> radius -> rowmap -> stitchcount -> rowcompose
//	mesh path:    mesh -> halfedge -> seam -> param -> curvature -> stitchgrid -> stitchcount -> rowcompose
//
// Both converge on anneal (special-stitch placement) and pattern
// (instruction sequencing, textual rendering), with metadata summarizing
// the finished piece and svgrender optionally diagramming it. The
// pipeline package sequences each path end to end; config and gauge
// hold the run parameters both paths read.
//
//	go get github.com/ravelcraft/patterngen
package patterngen
