package geom

import "math"

// DoIntersect reports whether a and b properly cross, using the default
// tolerance.
func DoIntersect(a, b Line) bool {
	return DefaultTolerance().DoIntersect(a, b)
}

// DoIntersect reports whether a and b properly cross: they are not
// parallel and the crossing lies strictly inside both lines. Touching at an
// endpoint, overlapping and degenerate lines do not count.
func (t Tolerance) DoIntersect(a, b Line) bool {
	_, _, ok := t.IntersectParameters(a, b)
	return ok
}

// TryIntersect returns the crossing point of a and b using the default
// tolerance.
func TryIntersect(a, b Line) (Point, bool) {
	return DefaultTolerance().TryIntersect(a, b)
}

// TryIntersect returns the crossing point of a and b under the same strict
// rule as DoIntersect. ok is false when there is no proper crossing.
func (t Tolerance) TryIntersect(a, b Line) (p Point, ok bool) {
	ta, _, ok := t.IntersectParameters(a, b)
	if !ok {
		return Point{}, false
	}
	return a.PointAt(ta), true
}

// IntersectParameters returns the crossing parameters of a and b using the
// default tolerance.
func IntersectParameters(a, b Line) (ta, tb float64, ok bool) {
	return DefaultTolerance().IntersectParameters(a, b)
}

// IntersectParameters returns the crossing parameters on a and b under the
// strict rule of DoIntersect.
func (t Tolerance) IntersectParameters(a, b Line) (ta, tb float64, ok bool) {
	s := newPairSolve(t, a, b)
	if s.kind != Intersect || !strictlyInside(s.ta) || !strictlyInside(s.tb) {
		return 0, 0, false
	}
	return s.ta, s.tb, true
}

func strictlyInside(param float64) bool {
	return param > 0 && param < 1
}

// DoIntersectOrOverlap reports whether a and b touch in any way, using the
// default tolerance.
func DoIntersectOrOverlap(a, b Line) bool {
	return DefaultTolerance().DoIntersectOrOverlap(a, b)
}

// DoIntersectOrOverlap reports whether a and b touch in any way: they
// cross (endpoints included), or they are parallel and overlap or touch, or
// a degenerate line's point lies on the other line. Every relation is
// decided the same way: the squared distance between the finite lines is
// compared with t.DistanceSq. A crossing just past an end of a long line,
// admitted by the parameter slack, therefore only counts when the real gap
// is within t.DistanceSq, and a line ending within that distance of
// another counts even when it is classified Apart.
func (t Tolerance) DoIntersectOrOverlap(a, b Line) bool {
	s := newPairSolve(t, a, b)
	return s.minDistanceSq() <= t.DistanceSq
}

// TryIntersectRay returns the crossing point of the infinite extensions of
// a and b using the default tolerance.
func TryIntersectRay(a, b Line) (Point, bool) {
	return DefaultTolerance().TryIntersectRay(a, b)
}

// TryIntersectRay returns the crossing point of the infinite extensions of
// a and b. ok is false for parallel or degenerate lines, and when the
// parameter on a exceeds t.RayParamLimit in magnitude: such crossings come
// from nearly parallel lines and carry no meaningful position.
func (t Tolerance) TryIntersectRay(a, b Line) (Point, bool) {
	ta, _, ok := t.RayIntersectParameters(a, b)
	if !ok {
		return Point{}, false
	}
	return a.PointAt(ta), true
}

// RayIntersectParameters returns the crossing parameters of the infinite
// extensions of a and b using the default tolerance.
func RayIntersectParameters(a, b Line) (ta, tb float64, ok bool) {
	return DefaultTolerance().RayIntersectParameters(a, b)
}

// RayIntersectParameters returns the unclamped crossing parameters of the
// infinite extensions of a and b, under the same rules as TryIntersectRay.
func (t Tolerance) RayIntersectParameters(a, b Line) (ta, tb float64, ok bool) {
	s := newPairSolve(t, a, b)
	if s.kind != Intersect && s.kind != Apart {
		return 0, 0, false
	}
	if math.Abs(s.ta) > t.RayParamLimit || math.IsNaN(s.ta) {
		debugRejected("geom: discarded unstable ray crossing", "RayIntersectParameters", "param", s.ta, "limit", t.RayParamLimit)
		return 0, 0, false
	}
	return s.ta, s.tb, true
}

// ClosestRayParameters returns the parameters of the closest points of
// the infinite extensions of a and b using the default tolerance.
func ClosestRayParameters(a, b Line) (ta, tb float64, err error) {
	return DefaultTolerance().ClosestRayParameters(a, b)
}

// ClosestRayParameters returns unclamped parameters of the closest points
// of the infinite extensions of a and b.
//
// A degenerate line is reduced to its From point (parameter 0) and
// projected onto the other line's ray. Parallel rays report a's From point
// and its projection onto b. It fails with ErrTooSmallInput only when both
// lines are degenerate, since neither then has a ray.
func (t Tolerance) ClosestRayParameters(a, b Line) (ta, tb float64, err error) {
	s := newPairSolve(t, a, b)
	switch s.kind {
	case TooShortBoth:
		return 0, 0, newTooSmallError("ClosestRayParameters", a, b)
	case TooShortA, Parallel:
		return 0, s.projB(a.From), nil
	case TooShortB:
		return s.projA(b.From), 0, nil
	default:
		return s.ta, s.tb, nil
	}
}

// TryGetOverlap returns the overlap of collinear lines as a parameter
// range on a, using the default tolerance.
func TryGetOverlap(a, b Line) (start, end float64, ok bool) {
	return DefaultTolerance().TryGetOverlap(a, b)
}

// TryGetOverlap returns the range of parameters on a covered by b when the
// two lines are collinear: parallel, with both of b's endpoints within
// t.DistanceSq of a's infinite extension, and with overlapping (or
// touching) projections.
//
// start < end when b runs in the same direction as a, start > end when it
// runs the opposite way.
func (t Tolerance) TryGetOverlap(a, b Line) (start, end float64, ok bool) {
	s := newPairSolve(t, a, b)
	if s.kind != Parallel || !s.collinear(t) {
		return 0, 0, false
	}
	start, end = overlapRange(s.projA(b.From), s.projA(b.To))
	if start > end {
		return 0, 0, false
	}
	if s.dot < 0 {
		start, end = end, start
	}
	return start, end, true
}

// collinear reports whether both of b's endpoints lie within t.DistanceSq
// of a's infinite extension. Requires a non-degenerate a.
func (s *pairSolve) collinear(t Tolerance) bool {
	c0 := s.da.Cross(s.b.From.Sub(s.a.From))
	c1 := s.da.Cross(s.b.To.Sub(s.a.From))
	return c0*c0/s.sqA <= t.DistanceSq && c1*c1/s.sqA <= t.DistanceSq
}

// IsParallelTo reports whether a and b are parallel using the default
// tolerance.
func IsParallelTo(a, b Line) bool {
	return DefaultTolerance().IsParallelTo(a, b)
}

// IsParallelTo reports whether a and b are classified Parallel. Degenerate
// lines are never parallel.
func (t Tolerance) IsParallelTo(a, b Line) bool {
	s := newPairSolve(t, a, b)
	return s.kind == Parallel
}

// IsCoincidentTo reports whether a and b lie on the same infinite line
// using the default tolerance.
func IsCoincidentTo(a, b Line) bool {
	return DefaultTolerance().IsCoincidentTo(a, b)
}

// IsCoincidentTo reports whether a and b are parallel and b's endpoints lie
// on a's infinite extension. The finite ranges need not overlap.
func (t Tolerance) IsCoincidentTo(a, b Line) bool {
	s := newPairSolve(t, a, b)
	return s.kind == Parallel && s.collinear(t)
}

// IsParallelToFast reports whether the parallelogram spanned by the
// directions of a and b has an area of at most areaTol.
//
// This is cheaper than IsParallelTo but the area grows with both lengths:
// it is always true when either line has zero length, and false for long
// nearly parallel lines unless the caller scales areaTol to their lengths.
func IsParallelToFast(areaTol float64, a, b Line) bool {
	return math.Abs(a.Direction().Cross(b.Direction())) <= areaTol
}

// IsCoincidentToFast is the area-only counterpart of IsCoincidentTo: the
// lines must pass IsParallelToFast and each of b's endpoints must span an
// area of at most areaTol with a's direction. It shares the caveats of
// IsParallelToFast; a zero-length a is coincident with everything.
func IsCoincidentToFast(areaTol float64, a, b Line) bool {
	if !IsParallelToFast(areaTol, a, b) {
		return false
	}
	da := a.Direction()
	return math.Abs(da.Cross(b.From.Sub(a.From))) <= areaTol &&
		math.Abs(da.Cross(b.To.Sub(a.From))) <= areaTol
}

// IsTouchingEndOf reports whether any endpoint of a is within squared
// distance distSq of any endpoint of b. It compares endpoints only and does
// not classify the lines.
func IsTouchingEndOf(distSq float64, a, b Line) bool {
	return a.From.DistanceSq(b.From) <= distSq ||
		a.From.DistanceSq(b.To) <= distSq ||
		a.To.DistanceSq(b.From) <= distSq ||
		a.To.DistanceSq(b.To) <= distSq
}
