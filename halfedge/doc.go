// Package halfedge builds a half-edge adjacency structure from an
// indexed triangle mesh.
//
// Design note (see design notes in the project's requirements): the
// half-edge topology needs next/prev/twin references forming cycles.
// Rather than a pointer graph, it is represented as a flat []HalfEdge
// array addressed by integer index, with twin == -1 as the "no twin"
// (boundary) tag — no cyclic ownership, trivially copyable, and cheap to
// range over.
package halfedge
