package geom

import "math"

// Point represents a 2D position.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Sqrt(p.DistanceSq(q))
}

// DistanceSq returns the squared distance between two points.
// This is faster than Distance() when you only need to compare distances.
func (p Point) DistanceSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// RotateAbout returns p rotated by r around center.
func (p Point) RotateAbout(center Point, r Rotation) Point {
	return center.Add(p.Sub(center).Rotate(r))
}

// Approx returns true if both coordinates differ by at most epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return ApproxEqual(p.X, q.X, epsilon) && ApproxEqual(p.Y, q.Y, epsilon)
}

// ToVec2 returns the displacement from the origin to p.
func (p Point) ToVec2() Vec2 {
	return Vec2(p)
}
