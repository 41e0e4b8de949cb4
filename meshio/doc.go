// Package meshio defines the mesh-ingestion boundary: a Loader interface
// a caller supplies to decode binary GLTF bytes (out of scope here, per
// §1), plus the pure-geometry adapters on the near side of that boundary
// that any GLTF decoder's output must still pass through — primitive
// triangulation, node-transform application, and base64 data-URI
// decoding.
package meshio
