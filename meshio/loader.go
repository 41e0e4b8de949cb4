package meshio

import (
	"io"

	"github.com/ravelcraft/patterngen/mesh"
)

// Loader decodes a binary GLTF (glb) stream into MeshData. Implementing
// the GLTF binary-chunk and JSON-accessor format is the caller's
// responsibility (§1); this package supplies only the pure-geometry
// adapters a Loader implementation composes with (FromPrimitive,
// DecodeDataURI).
type Loader interface {
	Load(r io.Reader) (mesh.MeshData, error)
}
