package stitchgrid

import (
	"math"

	"github.com/ravelcraft/patterngen/geom"
	"github.com/ravelcraft/patterngen/mesh"
)

// RowWidths scans the mesh's UV parameter space in rowCount horizontal
// bands and returns, for each band, the physical width spanned by its
// active U-range (§4.9 steps 1-2): vertices within ±rowHeight/2 of the
// band's center V form the band; the width is the 3-D Euclidean distance
// between the band's min-U and max-U vertices. An empty band (no
// vertices fall within it) reports width 0; callers feed these widths to
// stitchcount.Solve the same way the profile path feeds it radii.
func RowWidths(m mesh.MeshData, rowCount int) []float64 {
	if rowCount < 1 {
		rowCount = 1
	}
	vMax := maxV(m)
	rowHeight := vMax / float64(rowCount)

	widths := make([]float64, rowCount)
	for i := 0; i < rowCount; i++ {
		centerV := (float64(i) + 0.5) * rowHeight
		minIdx, maxIdx, ok := activeURange(m, centerV, rowHeight/2)
		if !ok {
			continue
		}
		widths[i] = m.Vertices[minIdx].Position.Distance(m.Vertices[maxIdx].Position)
	}
	return widths
}

// activeURange returns the indices of the min-U and max-U vertices whose
// UV.Y lies within halfBand of centerV.
func activeURange(m mesh.MeshData, centerV, halfBand float64) (minIdx, maxIdx int, ok bool) {
	minU, maxU := math.Inf(1), math.Inf(-1)
	for i, v := range m.Vertices {
		if math.Abs(v.UV.Y-centerV) > halfBand {
			continue
		}
		if v.UV.X < minU {
			minU, minIdx = v.UV.X, i
			ok = true
		}
		if v.UV.X > maxU {
			maxU, maxIdx = v.UV.X, i
			ok = true
		}
	}
	return minIdx, maxIdx, ok
}

// LayoutPositions lays out count stitches evenly across the band's
// active U-range and assigns each the position of its nearest vertex by
// UV distance (§4.9 step 4).
func LayoutPositions(m mesh.MeshData, rowCount, rowIndex, count int) []geom.Vec3 {
	indices := layoutVertexIndices(m, rowCount, rowIndex, count)
	if indices == nil {
		return nil
	}
	positions := make([]geom.Vec3, count)
	for j, idx := range indices {
		positions[j] = m.Vertices[idx].Position
	}
	return positions
}

// LayoutUV is LayoutPositions's UV counterpart: the same evenly-spaced,
// nearest-vertex placement, reporting each stitch's 2-D parameter
// coordinate instead of its 3-D position. Callers building a diagram
// (rather than a garment) want this view of the same band scan.
func LayoutUV(m mesh.MeshData, rowCount, rowIndex, count int) []geom.Point2D {
	indices := layoutVertexIndices(m, rowCount, rowIndex, count)
	if indices == nil {
		return nil
	}
	uvs := make([]geom.Point2D, count)
	for j, idx := range indices {
		uvs[j] = m.Vertices[idx].UV
	}
	return uvs
}

// layoutVertexIndices is the shared band scan behind LayoutPositions and
// LayoutUV: it returns the mesh vertex index nearest each of count
// evenly-spaced U samples across row rowIndex's active U-range.
func layoutVertexIndices(m mesh.MeshData, rowCount, rowIndex, count int) []int {
	vMax := maxV(m)
	rowHeight := vMax / float64(rowCount)
	centerV := (float64(rowIndex) + 0.5) * rowHeight
	minIdx, maxIdx, ok := activeURange(m, centerV, rowHeight/2)
	if !ok || count < 1 {
		return nil
	}
	minU, maxU := m.Vertices[minIdx].UV.X, m.Vertices[maxIdx].UV.X

	indices := make([]int, count)
	for j := 0; j < count; j++ {
		t := 0.0
		if count > 1 {
			t = float64(j) / float64(count-1)
		}
		u := minU + t*(maxU-minU)
		indices[j] = nearestByUV(m, u, centerV)
	}
	return indices
}

// AverageCurvature averages the MeanCurvature field curvature.AnnotateMesh
// writes onto each vertex, over the same V-band RowWidths and
// LayoutPositions use for row rowIndex, giving ClassifyCurvature a
// single representative value per row. Vertices with no annotated
// curvature (a mesh never passed through AnnotateMesh) are skipped;
// an empty or unannotated band reports 0.
func AverageCurvature(m mesh.MeshData, rowCount, rowIndex int) float64 {
	if rowCount < 1 {
		rowCount = 1
	}
	vMax := maxV(m)
	rowHeight := vMax / float64(rowCount)
	centerV := (float64(rowIndex) + 0.5) * rowHeight
	halfBand := rowHeight / 2

	var sum float64
	var n int
	for _, v := range m.Vertices {
		if math.Abs(v.UV.Y-centerV) > halfBand || v.Curvature == nil {
			continue
		}
		sum += *v.Curvature
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func nearestByUV(m mesh.MeshData, u, v float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, vert := range m.Vertices {
		du, dv := vert.UV.X-u, vert.UV.Y-v
		d := du*du + dv*dv
		if d < bestDist {
			bestDist, best = d, i
		}
	}
	return best
}

func maxV(m mesh.MeshData) float64 {
	var v float64
	for _, vert := range m.Vertices {
		if vert.UV.Y > v {
			v = vert.UV.Y
		}
	}
	return v
}
