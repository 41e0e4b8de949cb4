// Package mesh defines the indexed-triangle mesh data model
// (MeshPreprocessor's input and output) and implements MeshPreprocessor:
// degenerate-face removal, vertex-normal recomputation, and target-size
// rescaling, plus non-fatal structural warnings. Approximate-duplicate
// vertices are reported as a warning but not fused.
package mesh

import (
	"fmt"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/patternerr"
)

// Vertex is a single mesh vertex: position, unit normal, optional UV
// (populated by param.Parameterize), and optional curvature (populated
// by curvature.AnnotateMesh).
type Vertex struct {
	Position  geom.Vec3
	Normal    geom.Vec3
	UV        geom.Point2D
	Curvature *float64
}

// Face is a triangle referencing three vertex indices, in winding order.
type Face struct {
	A, B, C int
}

// Indices returns the face's three vertex indices as an array, convenient
// for uniform iteration.
func (f Face) Indices() [3]int { return [3]int{f.A, f.B, f.C} }

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max geom.Vec3
}

// Dimensions returns Max-Min componentwise.
func (b Bounds) Dimensions() geom.Vec3 { return b.Max.Sub(b.Min) }

// Largest returns the largest of the three dimensions.
func (b Bounds) Largest() float64 {
	d := b.Dimensions()
	m := d.X
	if d.Y > m {
		m = d.Y
	}
	if d.Z > m {
		m = d.Z
	}
	return m
}

// Smallest returns the smallest of the three dimensions.
func (b Bounds) Smallest() float64 {
	d := b.Dimensions()
	m := d.X
	if d.Y < m {
		m = d.Y
	}
	if d.Z < m {
		m = d.Z
	}
	return m
}

// MeshData is an indexed triangle mesh: every Face's indices must be
// valid indices into Vertices, and Bounds must tightly enclose all
// vertex positions.
type MeshData struct {
	Vertices []Vertex
	Faces    []Face
	Bounds   Bounds
}

// Centroid returns the arithmetic mean of all vertex positions.
func (m MeshData) Centroid() geom.Vec3 {
	if len(m.Vertices) == 0 {
		return geom.Vec3{}
	}
	var sum geom.Vec3
	for _, v := range m.Vertices {
		sum = sum.Add(v.Position)
	}
	return sum.Scale(1.0 / float64(len(m.Vertices)))
}

// RecomputeBounds recomputes m.Bounds from the current vertex positions.
func (m *MeshData) RecomputeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Bounds{}
		return
	}
	min := m.Vertices[0].Position
	max := min
	for _, v := range m.Vertices[1:] {
		p := v.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	m.Bounds = Bounds{Min: min, Max: max}
}

// Validate reports patternerr.ErrInvalidConfiguration if any face
// references an out-of-range vertex index.
func (m MeshData) Validate() error {
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f.Indices() {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: face %d references out-of-range vertex %d (have %d vertices)",
					patternerr.ErrInvalidConfiguration, i, idx, n)
			}
		}
	}
	return nil
}
