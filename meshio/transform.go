package meshio

import "github.com/ravelcraft/patterngen/geom"

// Mat4 is a column-major 4x4 transform, matching GLTF's node-matrix
// convention: m[col*4+row].
type Mat4 [16]float64

// IdentityMat4 is the identity transform.
var IdentityMat4 = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// TransformPoint applies the full 4x4 transform to a position.
func (m Mat4) TransformPoint(v geom.Vec3) geom.Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		return geom.Vec3{X: x / w, Y: y / w, Z: z / w}
	}
	return geom.Vec3{X: x, Y: y, Z: z}
}

// TransformNormal applies only the 3x3 rotational part of the
// transform to a normal direction, re-normalizing the result (§6).
func (m Mat4) TransformNormal(v geom.Vec3) geom.Vec3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z
	return geom.Vec3{X: x, Y: y, Z: z}.Normalize()
}
