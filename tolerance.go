package geom

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats/scalar"
)

// Thresholds below which lengths are too small to be numerically reliable.
const (
	ShortLength   = 1e-6
	ShortLengthSq = ShortLength * ShortLength
)

// Defaults used by DefaultTolerance.
const (
	// DefaultParallelAngle is the angle in degrees under which two lines
	// are classified as parallel.
	DefaultParallelAngle = 0.25

	// DefaultParamSlack is how far outside [0, 1] a solved parameter may lie
	// and still count as on the finite line.
	DefaultParamSlack = 1e-6

	// DefaultDistanceSq is the squared distance under which two points
	// are considered touching.
	DefaultDistanceSq = 1e-12

	// DefaultRayParamLimit bounds the magnitude of ray parameters; larger
	// values come from nearly parallel rays and are treated as no
	// intersection.
	DefaultRayParamLimit = 1e12
)

var defaultParallelTangent = math.Tan(DefaultParallelAngle * math.Pi / 180)

// IsShortLength reports whether a length is below ShortLength.
func IsShortLength(length float64) bool {
	return length < ShortLength
}

// IsShortLengthSq reports whether a squared length is below ShortLengthSq.
func IsShortLengthSq(lengthSq float64) bool {
	return lengthSq < ShortLengthSq
}

// ApproxEqual reports whether a and b differ by at most epsilon.
func ApproxEqual(a, b, epsilon float64) bool {
	return scalar.EqualWithinAbs(a, b, epsilon)
}

// Tolerance holds every threshold the line relationship engine depends on.
// Values are passed explicitly; there is no package-level mutable default.
//
// Example:
//
//	tol := geom.NewTolerance(geom.WithParallelAngle(0.1))
//	if tol.DoIntersectOrOverlap(a, b) {
//	    ...
//	}
type Tolerance struct {
	Length          float64
	LengthSq        float64
	ParallelTangent float64
	ParamSlack      float64
	DistanceSq      float64
	RayParamLimit   float64
}

// DefaultTolerance returns the documented default thresholds.
func DefaultTolerance() Tolerance {
	return Tolerance{
		Length:          ShortLength,
		LengthSq:        ShortLengthSq,
		ParallelTangent: defaultParallelTangent,
		ParamSlack:      DefaultParamSlack,
		DistanceSq:      DefaultDistanceSq,
		RayParamLimit:   DefaultRayParamLimit,
	}
}

// Option configures a Tolerance created by NewTolerance.
type Option func(*Tolerance)

// NewTolerance returns DefaultTolerance with opts applied in order.
func NewTolerance(opts ...Option) Tolerance {
	tol := DefaultTolerance()
	for _, opt := range opts {
		opt(&tol)
	}
	return tol
}

// WithLength sets the short-length threshold. The squared threshold is
// derived from it.
func WithLength(length float64) Option {
	return func(t *Tolerance) {
		t.Length = length
		t.LengthSq = length * length
	}
}

// WithParallelAngle sets the parallel threshold as an angle in degrees.
func WithParallelAngle(degrees float64) Option {
	return func(t *Tolerance) {
		t.ParallelTangent = math.Tan(degrees * math.Pi / 180)
	}
}

// WithParallelTangent sets the parallel threshold as a cross/dot ratio.
func WithParallelTangent(tangent float64) Option {
	return func(t *Tolerance) {
		t.ParallelTangent = tangent
	}
}

// WithParamSlack sets the slack allowed outside [0, 1].
func WithParamSlack(slack float64) Option {
	return func(t *Tolerance) {
		t.ParamSlack = slack
	}
}

// WithDistanceSq sets the squared touching distance.
func WithDistanceSq(distSq float64) Option {
	return func(t *Tolerance) {
		t.DistanceSq = distSq
	}
}

// WithRayParamLimit sets the ray parameter magnitude guard.
func WithRayParamLimit(limit float64) Option {
	return func(t *Tolerance) {
		t.RayParamLimit = limit
	}
}

// IsShort reports whether length is below t.Length.
func (t Tolerance) IsShort(length float64) bool {
	return length < t.Length
}

// IsShortSq reports whether a squared length is below t.LengthSq.
func (t Tolerance) IsShortSq(lengthSq float64) bool {
	return lengthSq < t.LengthSq
}

// parallel applies the tangent ratio test |cross/dot| < ParallelTangent
// without dividing. A zero dot (perpendicular directions) never passes.
func (t Tolerance) parallel(cross, dot float64) bool {
	return math.Abs(cross) < t.ParallelTangent*math.Abs(dot)
}

// onSegment reports whether a solved parameter lies within the slack-widened
// unit interval.
func (t Tolerance) onSegment(param float64) bool {
	return param >= -t.ParamSlack && param <= 1+t.ParamSlack
}

func clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUnit[T constraints.Float](v T) T {
	return clamp(v, 0, 1)
}
