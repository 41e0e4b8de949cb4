package meshio

import (
	"fmt"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
	"github.com/ravelcraft/patterngen/patternerr"
)

// defaultNormal is substituted for a primitive with no normal attribute
// (§6); MeshPreprocessor recomputes real normals afterward.
var defaultNormal = geom.Vec3{X: 0, Y: 1, Z: 0}

// Primitive is a single GLTF mesh primitive's decoded attributes, the
// near side of the GLTF-parsing boundary: a Loader implementation
// decodes accessor bytes into this struct, and FromPrimitive takes it
// the rest of the way to MeshData.
type Primitive struct {
	Positions []geom.Vec3
	Normals   []geom.Vec3    // nil if the primitive has no NORMAL attribute
	UVs       []geom.Point2D // nil if the primitive has no TEXCOORD_0 attribute
	Indices   []int          // nil for a non-indexed primitive
}

// FromPrimitive triangulates p (consecutive triples if non-indexed,
// §6), applies the node transform to positions and normals, and
// returns the resulting MeshData.
func FromPrimitive(p Primitive, transform Mat4) (mesh.MeshData, error) {
	n := len(p.Positions)
	if n == 0 {
		return mesh.MeshData{}, fmt.Errorf("%w: primitive has no positions", patternerr.ErrIO)
	}

	vertices := make([]mesh.Vertex, n)
	for i, pos := range p.Positions {
		normal := defaultNormal
		if i < len(p.Normals) {
			normal = p.Normals[i]
		}
		var uv geom.Point2D
		if i < len(p.UVs) {
			uv = p.UVs[i]
		}
		vertices[i] = mesh.Vertex{
			Position: transform.TransformPoint(pos),
			Normal:   transform.TransformNormal(normal),
			UV:       uv,
		}
	}

	indices := p.Indices
	if indices == nil {
		indices = make([]int, n)
		for i := range indices {
			indices[i] = i
		}
	}
	if len(indices)%3 != 0 {
		return mesh.MeshData{}, fmt.Errorf("%w: index count %d is not a multiple of 3", patternerr.ErrIO, len(indices))
	}

	faces := make([]mesh.Face, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		faces = append(faces, mesh.Face{A: indices[i], B: indices[i+1], C: indices[i+2]})
	}

	out := mesh.MeshData{Vertices: vertices, Faces: faces}
	out.RecomputeBounds()
	return out, nil
}
