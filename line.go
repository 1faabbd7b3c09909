package geom

import "math"

// Line represents a finite line segment from From to To.
//
// Parameters along a line are 0 at From and 1 at To; values outside [0, 1]
// address the line's infinite extension (its ray). A line shorter than the
// length tolerance is degenerate: every operation defines what it does in
// that case.
type Line struct {
	From, To Point
}

// NewLine creates a new line segment.
func NewLine(from, to Point) Line {
	return Line{From: from, To: to}
}

// Direction returns To - From. It implements Directed.
func (l Line) Direction() Vec2 {
	return l.To.Sub(l.From)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.From.Distance(l.To)
}

// LengthSq returns the squared length of the line segment.
func (l Line) LengthSq() float64 {
	return l.From.DistanceSq(l.To)
}

// IsTooShort reports whether the line is shorter than tol.Length.
func (l Line) IsTooShort(tol Tolerance) bool {
	return tol.IsShortSq(l.LengthSq())
}

// PointAt evaluates the line at parameter t.
// t=0 returns From, t=1 returns To.
func (l Line) PointAt(t float64) Point {
	return l.From.Lerp(l.To, t)
}

// Midpoint returns the midpoint of the line segment.
func (l Line) Midpoint() Point {
	return l.From.Midpoint(l.To)
}

// Reversed returns a copy of the line with endpoints swapped.
func (l Line) Reversed() Line {
	return Line{From: l.To, To: l.From}
}

// Rotate returns the line rotated by r around center.
func (l Line) Rotate(center Point, r Rotation) Line {
	return Line{From: l.From.RotateAbout(center, r), To: l.To.RotateAbout(center, r)}
}

// ClosestParameter returns the parameter in [0, 1] of the point on the
// segment closest to p. A degenerate line returns 0, its From point being
// its only meaningful point.
func (l Line) ClosestParameter(p Point) float64 {
	d := l.Direction()
	sq := d.LengthSq()
	if IsShortLengthSq(sq) {
		return 0
	}
	return clampUnit(p.Sub(l.From).Dot(d) / sq)
}

// ClosestPoint returns the point on the segment closest to p.
func (l Line) ClosestPoint(p Point) Point {
	return l.PointAt(l.ClosestParameter(p))
}

// DistanceTo returns the distance from p to the segment.
func (l Line) DistanceTo(p Point) float64 {
	return math.Sqrt(l.DistanceSqTo(p))
}

// DistanceSqTo returns the squared distance from p to the segment.
func (l Line) DistanceSqTo(p Point) float64 {
	return p.DistanceSq(l.ClosestPoint(p))
}

// RayClosestParameter returns the unclamped parameter of the projection of
// p onto the line's infinite extension.
// It fails with ErrTooSmallInput for a degenerate line.
func (l Line) RayClosestParameter(p Point) (float64, error) {
	d := l.Direction()
	sq := d.LengthSq()
	if IsShortLengthSq(sq) {
		return 0, newTooSmallError("Line.RayClosestParameter", l)
	}
	return p.Sub(l.From).Dot(d) / sq, nil
}

// RayClosestPoint returns the projection of p onto the line's infinite
// extension.
func (l Line) RayClosestPoint(p Point) (Point, error) {
	t, err := l.RayClosestParameter(p)
	if err != nil {
		return Point{}, err
	}
	return l.PointAt(t), nil
}

// DistanceToRay returns the perpendicular distance from p to the line's
// infinite extension.
func (l Line) DistanceToRay(p Point) (float64, error) {
	d := l.Direction()
	sq := d.LengthSq()
	if IsShortLengthSq(sq) {
		return 0, newTooSmallError("Line.DistanceToRay", l)
	}
	return math.Abs(d.Cross(p.Sub(l.From))) / math.Sqrt(sq), nil
}

// ProjectOntoRay returns the component of v along the line's direction.
func (l Line) ProjectOntoRay(v Vec2) (Vec2, error) {
	d := l.Direction()
	sq := d.LengthSq()
	if IsShortLengthSq(sq) {
		return Vec2{}, newTooSmallError("Line.ProjectOntoRay", l)
	}
	return d.Mul(v.Dot(d) / sq), nil
}
