package geom

import "math"

// UnitVec2 is a direction of length one.
//
// The zero value is not a valid unit vector; obtain one from Vec2.Unit or
// UnitFromAngle.
type UnitVec2 struct {
	x, y float64
}

// UnitFromAngle returns the unit vector at angle radians from the positive
// X axis.
func UnitFromAngle(angle float64) UnitVec2 {
	sin, cos := math.Sincos(angle)
	return UnitVec2{x: cos, y: sin}
}

// X returns the X component.
func (u UnitVec2) X() float64 { return u.x }

// Y returns the Y component.
func (u UnitVec2) Y() float64 { return u.y }

// Direction implements Directed.
func (u UnitVec2) Direction() Vec2 {
	return Vec2{X: u.x, Y: u.y}
}

// Mul returns a free vector of length s along u.
func (u UnitVec2) Mul(s float64) Vec2 {
	return Vec2{X: u.x * s, Y: u.y * s}
}

// Neg returns the opposite direction.
func (u UnitVec2) Neg() UnitVec2 {
	return UnitVec2{x: -u.x, y: -u.y}
}

// Perp returns the direction rotated 90 degrees counter-clockwise.
func (u UnitVec2) Perp() UnitVec2 {
	return UnitVec2{x: -u.y, y: u.x}
}

// Rotate returns u rotated by r. Rotations preserve length, so the result
// is still a unit vector up to rounding.
func (u UnitVec2) Rotate(r Rotation) UnitVec2 {
	v := u.Direction().Rotate(r)
	return UnitVec2{x: v.X, y: v.Y}
}

// Rotation is a rotation by a fixed angle, stored as its cosine and sine so
// repeated application avoids trigonometric calls.
type Rotation struct {
	Cos, Sin float64
}

// NewRotation returns the rotation by angle radians (counter-clockwise).
func NewRotation(angle float64) Rotation {
	sin, cos := math.Sincos(angle)
	return Rotation{Cos: cos, Sin: sin}
}

// Inverse returns the rotation by the opposite angle.
func (r Rotation) Inverse() Rotation {
	return Rotation{Cos: r.Cos, Sin: -r.Sin}
}

// Then returns the rotation equivalent to applying r and then s.
func (r Rotation) Then(s Rotation) Rotation {
	return Rotation{
		Cos: r.Cos*s.Cos - r.Sin*s.Sin,
		Sin: r.Sin*s.Cos + r.Cos*s.Sin,
	}
}

// Directed is implemented by every type that has a 2D direction: Vec2,
// UnitVec2 and Line.
type Directed interface {
	Direction() Vec2
}

// AngleBetween returns the signed angle in radians from a to b, in
// (-pi, pi]. Zero-length directions yield 0.
func AngleBetween[A, B Directed](a A, b B) float64 {
	da, db := a.Direction(), b.Direction()
	return math.Atan2(da.Cross(db), da.Dot(db))
}

// AreParallel reports whether a and b point along the same or opposite
// directions, using the cross/dot tangent ratio against tol.ParallelTangent.
// Directions shorter than tol.Length are never parallel.
func AreParallel[A, B Directed](tol Tolerance, a A, b B) bool {
	da, db := a.Direction(), b.Direction()
	if tol.IsShortSq(da.LengthSq()) || tol.IsShortSq(db.LengthSq()) {
		return false
	}
	return tol.parallel(da.Cross(db), da.Dot(db))
}

// ArePerpendicular reports whether a and b are perpendicular within the
// same angular tolerance used by AreParallel.
func ArePerpendicular[A, B Directed](tol Tolerance, a A, b B) bool {
	da, db := a.Direction(), b.Direction()
	if tol.IsShortSq(da.LengthSq()) || tol.IsShortSq(db.LengthSq()) {
		return false
	}
	// dot/cross is the tangent of the complement angle.
	return tol.parallel(da.Dot(db), da.Cross(db))
}
