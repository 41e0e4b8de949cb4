package param

import "github.com/ravelcraft/patterngen/geom"

// degenerateAreaThreshold is the minimum local-frame triangle area below
// which a triangle is skipped rather than contributing a constraint row.
const degenerateAreaThreshold = 1e-10

// localFrame is a triangle's vertices expressed in its own orthonormal
// 2-D coordinate system: x-axis along edge (p1,p2), y-axis the in-plane
// perpendicular toward p3.
type localFrame struct {
	x1, y1 float64
	x2, y2 float64
	x3, y3 float64
	area   float64
	ok     bool
}

// computeFrame projects p1, p2, p3 into the triangle's own local frame.
func computeFrame(p1, p2, p3 geom.Vec3) localFrame {
	e1 := p2.Sub(p1)
	xAxis := e1.Normalize()
	if xAxis.Length() < 0.5 {
		return localFrame{}
	}
	normal := e1.Cross(p3.Sub(p1))
	if normal.Length() < 1e-12 {
		return localFrame{}
	}
	yAxis := normal.Normalize().Cross(xAxis)

	x2 := e1.Length()
	e3 := p3.Sub(p1)
	x3 := e3.Dot(xAxis)
	y3 := e3.Dot(yAxis)

	area := 0.5 * (x2*y3 - x3*0)
	if area < 0 {
		area = -area
	}
	if area < degenerateAreaThreshold {
		return localFrame{}
	}
	return localFrame{
		x1: 0, y1: 0,
		x2: x2, y2: 0,
		x3: x3, y3: y3,
		area: area,
		ok:   true,
	}
}
