package geom

import "math"

// Vec2 represents a 2D displacement vector.
// Unlike Point which represents a position, Vec2 represents a direction and
// magnitude. It is not guaranteed to be unit length; see UnitVec2.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0, which is also
// the signed area of the parallelogram spanned by v and w.
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by the precomputed rotation r.
func (v Vec2) Rotate(r Rotation) Vec2 {
	return Vec2{
		X: v.X*r.Cos - v.Y*r.Sin,
		Y: v.X*r.Sin + v.Y*r.Cos,
	}
}

// Unit returns the unit vector in the direction of v.
// It fails with ErrTooSmallInput if v is shorter than ShortLength, since the
// direction of such a vector is not numerically meaningful.
func (v Vec2) Unit() (UnitVec2, error) {
	sq := v.LengthSq()
	if IsShortLengthSq(sq) {
		return UnitVec2{}, newTooSmallError("Vec2.Unit")
	}
	l := math.Sqrt(sq)
	return UnitVec2{x: v.X / l, y: v.Y / l}, nil
}

// Direction implements Directed.
func (v Vec2) Direction() Vec2 {
	return v
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float64) bool {
	return ApproxEqual(v.X, w.X, epsilon) && ApproxEqual(v.Y, w.Y, epsilon)
}

// ToPoint converts Vec2 to Point.
// Useful when you need to treat a displacement as a position.
func (v Vec2) ToPoint() Point {
	return Point(v)
}
