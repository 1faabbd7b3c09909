package geom

import "math"

// paramPair is a candidate pair of parameters, one per line.
type paramPair struct {
	ta, tb float64
}

// closestParams resolves the representative parameter pair for every
// relation. Parameters are always within [0, 1].
func (s *pairSolve) closestParams() (ta, tb float64) {
	switch s.kind {
	case TooShortBoth:
		return 0, 0
	case TooShortA:
		return 0, clampUnit(s.projB(s.a.From))
	case TooShortB:
		return clampUnit(s.projA(s.b.From)), 0
	case Intersect:
		return clampUnit(s.ta), clampUnit(s.tb)
	case Parallel:
		return s.parallelParams()
	default:
		return s.nearestParams(true)
	}
}

// closestPoints maps closestParams back to points. A crossing inside both
// lines yields the same point twice; one admitted only by the parameter
// slack keeps a separate point on each line.
func (s *pairSolve) closestPoints() (pa, pb Point) {
	ta, tb := s.closestParams()
	pa = s.a.PointAt(ta)
	if s.crossesInside() {
		return pa, pa
	}
	return pa, s.b.PointAt(tb)
}

// crossesInside reports whether an Intersect solve lies within [0, 1] on
// both lines without any slack.
func (s *pairSolve) crossesInside() bool {
	return s.kind == Intersect &&
		s.ta >= 0 && s.ta <= 1 && s.tb >= 0 && s.tb <= 1
}

// parallelParams returns the midpoint of the overlap range on each line.
// The midpoint does not depend on either line's orientation, which keeps
// the result symmetric. Lines whose projections do not overlap fall back
// to the nearest endpoint pair.
func (s *pairSolve) parallelParams() (ta, tb float64) {
	loA, hiA := overlapRange(s.projA(s.b.From), s.projA(s.b.To))
	loB, hiB := overlapRange(s.projB(s.a.From), s.projB(s.a.To))
	if loA <= hiA && loB <= hiB {
		return (loA + hiA) * 0.5, (loB + hiB) * 0.5
	}
	return s.nearestParams(false)
}

// overlapRange intersects the projected range [p0, p1] (in either order)
// with [0, 1]. The result is empty when lo > hi.
func overlapRange(p0, p1 float64) (lo, hi float64) {
	lo, hi = math.Min(p0, p1), math.Max(p0, p1)
	return math.Max(lo, 0), math.Min(hi, 1)
}

// nearestParams picks, among each endpoint projected onto the other line
// and optionally the clamped infinite-line solve, the pair with the
// smallest distance. Clamping the solve alone can pair the wrong points.
// Ties keep the earliest candidate.
func (s *pairSolve) nearestParams(withSolve bool) (ta, tb float64) {
	candidates := [5]paramPair{
		{0, clampUnit(s.projB(s.a.From))},
		{1, clampUnit(s.projB(s.a.To))},
		{clampUnit(s.projA(s.b.From)), 0},
		{clampUnit(s.projA(s.b.To)), 1},
	}
	n := 4
	if withSolve {
		candidates[4] = paramPair{clampUnit(s.ta), clampUnit(s.tb)}
		n = 5
	}

	best := candidates[0]
	bestSq := s.pairDistanceSq(best)
	for _, c := range candidates[1:n] {
		if d := s.pairDistanceSq(c); d < bestSq {
			best, bestSq = c, d
		}
	}
	return best.ta, best.tb
}

func (s *pairSolve) pairDistanceSq(c paramPair) float64 {
	return s.a.PointAt(c.ta).DistanceSq(s.b.PointAt(c.tb))
}

// minDistanceSq returns the true minimum squared distance between the two
// finite lines. Unlike closestPoints it does not use the overlap midpoint,
// so nearly parallel lines that cross report zero. A slack-admitted
// crossing off the end of a long line reports the real gap.
func (s *pairSolve) minDistanceSq() float64 {
	switch s.kind {
	case Intersect:
		if s.crossesInside() {
			return 0
		}
		ta, tb := s.nearestParams(true)
		return s.pairDistanceSq(paramPair{ta, tb})
	case TooShortA, TooShortB, TooShortBoth:
		pa, pb := s.closestPoints()
		return pa.DistanceSq(pb)
	case Parallel:
		if s.det != 0 {
			t, u := s.params()
			if t >= 0 && t <= 1 && u >= 0 && u <= 1 {
				return 0
			}
		}
	}
	ta, tb := s.nearestParams(false)
	return s.pairDistanceSq(paramPair{ta, tb})
}

// ClosestParameters returns the parameters in [0, 1] of the closest points
// between a and b using the default tolerance.
func ClosestParameters(a, b Line) (ta, tb float64) {
	return DefaultTolerance().ClosestParameters(a, b)
}

// ClosestParameters returns the parameters in [0, 1] of the closest points
// between a and b.
//
// The result is defined for every relation:
//   - Intersect: the crossing parameters.
//   - Parallel: the midpoint of the overlap range on each line, or the
//     nearest endpoint pair when the lines do not overlap.
//   - Apart: the closest pair among endpoint projections.
//   - TooShortA/TooShortB: 0 on the degenerate line, the clamped projection
//     of its From point on the other.
//   - TooShortBoth: 0 on both.
func (t Tolerance) ClosestParameters(a, b Line) (ta, tb float64) {
	s := newPairSolve(t, a, b)
	return s.closestParams()
}

// ClosestPoints returns the closest points between a and b using the
// default tolerance.
func ClosestPoints(a, b Line) (pa, pb Point) {
	return DefaultTolerance().ClosestPoints(a, b)
}

// ClosestPoints returns the closest points between a and b, following the
// same policy as ClosestParameters. When the lines cross inside both
// ranges both points are the crossing point. A crossing that only the
// parameter slack admits is clamped onto each line separately, so on long
// lines the two points can be apart.
func (t Tolerance) ClosestPoints(a, b Line) (pa, pb Point) {
	s := newPairSolve(t, a, b)
	return s.closestPoints()
}

// DistanceToLine returns the minimum distance between the finite lines a
// and b using the default tolerance.
func DistanceToLine(a, b Line) float64 {
	return DefaultTolerance().DistanceToLine(a, b)
}

// DistanceToLine returns the minimum distance between the finite lines a
// and b. Degenerate lines are measured from their From point.
func (t Tolerance) DistanceToLine(a, b Line) float64 {
	return math.Sqrt(t.DistanceSqToLine(a, b))
}

// DistanceSqToLine returns the squared minimum distance between a and b.
func (t Tolerance) DistanceSqToLine(a, b Line) float64 {
	s := newPairSolve(t, a, b)
	return s.minDistanceSq()
}
