package geom

// Relation is the qualitative relationship between two lines.
// Exactly one Relation holds for any pair; classification never fails.
type Relation uint8

const (
	// Apart: not parallel and the infinite-line crossing lies outside at
	// least one of the finite lines.
	Apart Relation = iota

	// Parallel: directions agree within the parallel tolerance. Covers
	// offset, collinear and overlapping lines alike.
	Parallel

	// Intersect: the lines cross within their finite ranges.
	Intersect

	// TooShortA: the first line is degenerate, the second is not.
	TooShortA

	// TooShortB: the second line is degenerate, the first is not.
	TooShortB

	// TooShortBoth: both lines are degenerate.
	TooShortBoth
)

// String returns the name of the relation.
func (r Relation) String() string {
	switch r {
	case Apart:
		return "Apart"
	case Parallel:
		return "Parallel"
	case Intersect:
		return "Intersect"
	case TooShortA:
		return "TooShortA"
	case TooShortB:
		return "TooShortB"
	case TooShortBoth:
		return "TooShortBoth"
	default:
		return "Unknown"
	}
}

// IsTooShort reports whether r is one of the degenerate relations.
func (r Relation) IsTooShort() bool {
	return r == TooShortA || r == TooShortB || r == TooShortBoth
}

// Relationship is the result of Classify.
type Relationship struct {
	Kind Relation

	// ParamA and ParamB locate the crossing on each line and Point is the
	// crossing itself, evaluated as a.PointAt(ParamA). They are only set
	// when Kind is Intersect. The parameters may exceed [0, 1] by at most
	// the parameter slack, which is a fraction of each line's length: on
	// long lines Point can then lie off the finite lines. Use
	// ClosestPoints for points clamped onto each line.
	ParamA, ParamB float64
	Point          Point
}

// pairSolve caches everything derived from a pair of lines so that each
// quantity is computed exactly once and every operation sees the same
// rounding.
type pairSolve struct {
	a, b     Line
	da, db   Vec2
	sqA, sqB float64

	// det and dot are only computed when neither line is degenerate.
	det, dot float64

	// ta and tb are the infinite-line crossing parameters, only valid for
	// Intersect and Apart.
	ta, tb float64

	kind Relation
}

// newPairSolve classifies a against b. Degenerate lines take precedence
// over the parallel test, which takes precedence over the general solve:
// det and dot of a near-zero direction are meaningless.
func newPairSolve(tol Tolerance, a, b Line) pairSolve {
	s := pairSolve{a: a, b: b, da: a.Direction(), db: b.Direction()}
	s.sqA = s.da.LengthSq()
	s.sqB = s.db.LengthSq()

	shortA, shortB := tol.IsShortSq(s.sqA), tol.IsShortSq(s.sqB)
	switch {
	case shortA && shortB:
		s.kind = TooShortBoth
		return s
	case shortA:
		s.kind = TooShortA
		return s
	case shortB:
		s.kind = TooShortB
		return s
	}

	s.det = s.da.Cross(s.db)
	s.dot = s.da.Dot(s.db)
	if tol.parallel(s.det, s.dot) {
		s.kind = Parallel
		return s
	}

	s.ta, s.tb = s.params()
	if tol.onSegment(s.ta) && tol.onSegment(s.tb) {
		s.kind = Intersect
	} else {
		s.kind = Apart
	}
	return s
}

// params solves a.From + t*da = b.From + u*db by Cramer's rule.
// The caller guarantees det is non-zero.
func (s *pairSolve) params() (t, u float64) {
	w := s.b.From.Sub(s.a.From)
	t = w.Cross(s.db) / s.det
	u = w.Cross(s.da) / s.det
	return t, u
}

// projA returns the unclamped parameter of p projected onto a's ray.
// Requires a to be non-degenerate.
func (s *pairSolve) projA(p Point) float64 {
	return p.Sub(s.a.From).Dot(s.da) / s.sqA
}

// projB returns the unclamped parameter of p projected onto b's ray.
// Requires b to be non-degenerate.
func (s *pairSolve) projB(p Point) float64 {
	return p.Sub(s.b.From).Dot(s.db) / s.sqB
}

// Classify returns the relationship between a and b using the default
// tolerance.
func Classify(a, b Line) Relationship {
	return DefaultTolerance().Classify(a, b)
}

// Classify returns the relationship between a and b.
func (t Tolerance) Classify(a, b Line) Relationship {
	s := newPairSolve(t, a, b)
	if s.kind != Intersect {
		return Relationship{Kind: s.kind}
	}
	return Relationship{
		Kind:   Intersect,
		ParamA: s.ta,
		ParamB: s.tb,
		Point:  a.PointAt(s.ta),
	}
}
