package mesh

import (
	"fmt"
	"math"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/patternerr"
)

const (
	// degenerateAreaThreshold is the minimum |e1×e2| magnitude a face must
	// have to survive preprocessing (§4.4 step 1).
	degenerateAreaThreshold = 1e-10

	// fallbackNormalLength is the minimum accumulated-normal length below
	// which a vertex falls back to (0,1,0) (§4.4 step 2).
	fallbackNormalLength = 1e-6

	// duplicateQuantum quantizes vertex positions to 1e-4 units when
	// detecting approximate-duplicate vertex clusters (§4.4 report list).
	duplicateQuantum = 1e-4

	// highVertexCountThreshold triggers a (non-fatal) warning.
	highVertexCountThreshold = 100_000

	// extremeAspectRatio triggers a (non-fatal) warning.
	extremeAspectRatio = 100.0

	// defaultTargetSizeCM matches config.defaultTargetSizeCM; duplicated
	// here (not imported) to keep mesh free of a config dependency —
	// Preprocess takes the target size as a plain float64 argument.
	defaultTargetSizeCM = 6.0
)

// PreprocessResult is MeshPreprocessor's output: the processed mesh plus
// any recoverable warnings (§7 — these never halt the pipeline).
type PreprocessResult struct {
	Mesh     MeshData
	Warnings []string
}

// Preprocess runs MeshPreprocessor's operations in order (§4.4):
//  1. discard degenerate faces (coincident indices or tiny cross product),
//  2. recompute vertex normals,
//  3. rescale to targetSizeCM (or defaultTargetSizeCM if <= 0) and
//     translate the centroid to the origin.
//
// Structural conditions that are reported but never rejected: high vertex
// count, extreme aspect ratio, non-manifold edges, and approximate-duplicate
// vertex clusters.
func Preprocess(m MeshData, targetSizeCM float64) (PreprocessResult, error) {
	if err := m.Validate(); err != nil {
		return PreprocessResult{}, err
	}
	if len(m.Vertices) < 3 {
		return PreprocessResult{}, fmt.Errorf("%w: mesh has fewer than 3 vertices", patternerr.ErrParameterizationFailure)
	}

	var warnings []string

	if clusters := countDuplicateClusters(m); clusters > 0 {
		warnings = append(warnings, fmt.Sprintf("%d approximate-duplicate vertex clusters (quantum %v)", clusters, duplicateQuantum))
	}

	m, dropped := dropDegenerateFaces(m)
	if dropped > 0 {
		warnings = append(warnings, fmt.Sprintf("dropped %d degenerate faces", dropped))
	}

	if err := recomputeNormals(&m); err != nil {
		return PreprocessResult{}, err
	}

	if targetSizeCM <= 0 {
		targetSizeCM = defaultTargetSizeCM
	}
	if err := rescaleAndCenter(&m, targetSizeCM); err != nil {
		return PreprocessResult{}, err
	}

	if len(m.Vertices) > highVertexCountThreshold {
		warnings = append(warnings, fmt.Sprintf("high vertex count: %d (> %d)", len(m.Vertices), highVertexCountThreshold))
	}
	m.RecomputeBounds()
	if d := m.Bounds.Dimensions(); d.X > 0 && d.Y > 0 && d.Z > 0 {
		smallest := m.Bounds.Smallest()
		if smallest > 0 && m.Bounds.Largest()/smallest > extremeAspectRatio {
			warnings = append(warnings, fmt.Sprintf("extreme aspect ratio: %.1f:1", m.Bounds.Largest()/smallest))
		}
	}
	if nonManifold := countNonManifoldEdges(m); nonManifold > 0 {
		warnings = append(warnings, fmt.Sprintf("%d non-manifold edges (appear in > 2 faces)", nonManifold))
	}

	return PreprocessResult{Mesh: m, Warnings: warnings}, nil
}

// quantKey quantizes a position to duplicateQuantum for clustering.
type quantKey struct{ x, y, z int64 }

func quantize(p geom.Vec3) quantKey {
	round := func(v float64) int64 { return int64(math.Round(v / duplicateQuantum)) }
	return quantKey{round(p.X), round(p.Y), round(p.Z)}
}

// countDuplicateClusters counts vertex clusters whose positions quantize to
// the same key (§4.4 report list). Reported, never rejected: the mesh is
// left untouched, since neither the vertex list nor face indices are
// remapped.
func countDuplicateClusters(m MeshData) int {
	seen := make(map[quantKey]int, len(m.Vertices))
	for _, v := range m.Vertices {
		seen[quantize(v.Position)]++
	}
	clusters := 0
	for _, n := range seen {
		if n > 1 {
			clusters++
		}
	}
	return clusters
}

// dropDegenerateFaces removes faces with coincident indices or with
// cross-product magnitude below degenerateAreaThreshold.
func dropDegenerateFaces(m MeshData) (MeshData, int) {
	kept := make([]Face, 0, len(m.Faces))
	dropped := 0
	for _, f := range m.Faces {
		if f.A == f.B || f.B == f.C || f.A == f.C {
			dropped++
			continue
		}
		pa := m.Vertices[f.A].Position
		pb := m.Vertices[f.B].Position
		pc := m.Vertices[f.C].Position
		e1 := pb.Sub(pa)
		e2 := pc.Sub(pa)
		if e1.Cross(e2).Length() < degenerateAreaThreshold {
			dropped++
			continue
		}
		kept = append(kept, f)
	}
	if dropped == 0 {
		return m, 0
	}
	return MeshData{Vertices: m.Vertices, Faces: kept}, dropped
}

// recomputeNormals zeros every vertex normal, accumulates unweighted face
// normals onto each incident vertex, then renormalizes, falling back to
// (0,1,0) when the accumulated normal's length is below
// fallbackNormalLength (§4.4 step 2).
func recomputeNormals(m *MeshData) error {
	acc := make([]geom.Vec3, len(m.Vertices))
	for _, f := range m.Faces {
		pa := m.Vertices[f.A].Position
		pb := m.Vertices[f.B].Position
		pc := m.Vertices[f.C].Position
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		if !n.IsFinite() {
			return fmt.Errorf("%w: non-finite face normal", patternerr.ErrInternal)
		}
		acc[f.A] = acc[f.A].Add(n)
		acc[f.B] = acc[f.B].Add(n)
		acc[f.C] = acc[f.C].Add(n)
	}
	for i := range m.Vertices {
		if acc[i].Length() < fallbackNormalLength {
			m.Vertices[i].Normal = geom.Vec3{X: 0, Y: 1, Z: 0}
			continue
		}
		m.Vertices[i].Normal = acc[i].Normalize()
	}
	return nil
}

// rescaleAndCenter rescales positions so the largest bounding-box
// dimension equals targetSizeCM, then translates so the centroid maps to
// the origin (§4.4 step 3).
func rescaleAndCenter(m *MeshData, targetSizeCM float64) error {
	m.RecomputeBounds()
	largest := m.Bounds.Largest()
	if largest < 1e-12 {
		return fmt.Errorf("%w: mesh has zero extent", patternerr.ErrInvalidConfiguration)
	}
	scale := targetSizeCM / largest
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Scale(scale)
	}
	centroid := m.Centroid()
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Sub(centroid)
		if !m.Vertices[i].Position.IsFinite() {
			return fmt.Errorf("%w: non-finite vertex position after rescale", patternerr.ErrInternal)
		}
	}
	m.RecomputeBounds()
	return nil
}

// countNonManifoldEdges counts undirected edges that appear in more than
// two faces.
func countNonManifoldEdges(m MeshData) int {
	counts := make(map[[2]int]int, len(m.Faces)*3)
	bump := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		counts[[2]int{a, b}]++
	}
	for _, f := range m.Faces {
		bump(f.A, f.B)
		bump(f.B, f.C)
		bump(f.C, f.A)
	}
	n := 0
	for _, c := range counts {
		if c > 2 {
			n++
		}
	}
	return n
}
