package geom

import "math"

// Point2D is a point in the plane, used for spline control points and
// UV parameterization coordinates.
type Point2D struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point2D) Sub(q Point2D) Point2D { return Point2D{p.X - q.X, p.Y - q.Y} }

// Add returns p+q.
func (p Point2D) Add(q Point2D) Point2D { return Point2D{p.X + q.X, p.Y + q.Y} }

// Scale returns p*s.
func (p Point2D) Scale(s float64) Point2D { return Point2D{p.X * s, p.Y * s} }

// Length returns the Euclidean norm of p treated as a vector from the origin.
func (p Point2D) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func (p Point2D) Distance(q Point2D) float64 { return p.Sub(q).Length() }

// Vec3 is a point or direction in 3-space. The zero value is the origin.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v-w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v×w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Distance returns the Euclidean distance between v and w.
func (v Vec3) Distance(w Vec3) float64 { return v.Sub(w).Length() }

// Normalize returns v scaled to unit length, or the zero vector if
// v's length is below 1e-6 (callers needing a fallback, e.g. vertex
// normals, substitute their own default in that case).
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-6 {
		return Vec3{}
	}
	return v.Scale(1.0 / l)
}

// IsFinite reports whether every component of v is neither NaN nor ±Inf.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// SplineSegment is a single cubic Bézier segment defined by its start
// point, two control points, and end point.
type SplineSegment struct {
	Start, C1, C2, End Point2D
}

// PointAt evaluates the cubic Bézier at parameter t in [0,1].
func (s SplineSegment) PointAt(t float64) Point2D {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	// B(t) = mt^3*P0 + 3*mt^2*t*P1 + 3*mt*t^2*P2 + t^3*P3
	return Point2D{
		X: mt2*mt*s.Start.X + 3*mt2*t*s.C1.X + 3*mt*t2*s.C2.X + t2*t*s.End.X,
		Y: mt2*mt*s.Start.Y + 3*mt2*t*s.C1.Y + 3*mt*t2*s.C2.Y + t2*t*s.End.Y,
	}
}

// DerivAt evaluates the derivative (tangent, not unit) of the cubic
// Bézier at parameter t in [0,1].
func (s SplineSegment) DerivAt(t float64) Point2D {
	mt := 1 - t
	// B'(t) = 3*mt^2*(P1-P0) + 6*mt*t*(P2-P1) + 3*t^2*(P3-P2)
	d1 := s.C1.Sub(s.Start)
	d2 := s.C2.Sub(s.C1)
	d3 := s.End.Sub(s.C2)
	return Point2D{
		X: 3*mt*mt*d1.X + 6*mt*t*d2.X + 3*t*t*d3.X,
		Y: 3*mt*mt*d1.Y + 6*mt*t*d2.Y + 3*t*t*d3.Y,
	}
}

// Speed returns the magnitude of the derivative at t, i.e. ‖P′(t)‖.
func (s SplineSegment) Speed(t float64) float64 { return s.DerivAt(t).Length() }

// ProfileCurve is an ordered sequence of cubic Bézier segments forming a
// C0-continuous 2-D curve, interpreted as (radius, height) samples by
// the profile pipeline.
type ProfileCurve struct {
	Segments []SplineSegment
}

// Start returns the first point of the curve, or the zero point if empty.
func (c ProfileCurve) Start() Point2D {
	if len(c.Segments) == 0 {
		return Point2D{}
	}
	return c.Segments[0].Start
}

// End returns the last point of the curve, or the zero point if empty.
func (c ProfileCurve) End() Point2D {
	if len(c.Segments) == 0 {
		return Point2D{}
	}
	return c.Segments[len(c.Segments)-1].End
}
