// Package geom provides allocation-free 2D geometry primitives for Go.
//
// # Overview
//
// geom models points, free and unit vectors, rotations and finite lines as
// small value types, and implements a line relationship engine that answers
// how two lines relate: whether they cross, overlap, are parallel, or are too
// short to say. All functions are pure and safe for concurrent use.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	a := geom.NewLine(geom.Pt(0, 0), geom.Pt(10, 0))
//	b := geom.NewLine(geom.Pt(4, -2), geom.Pt(4, 2))
//
//	if p, ok := geom.TryIntersect(a, b); ok {
//	    fmt.Println("cross at", p) // {4 0}
//	}
//
// # Parameters
//
// A parameter t locates a point on a line: 0 is From, 1 is To, and values
// outside [0, 1] lie on the line's infinite extension (its ray).
//
// # Classification
//
// Classify assigns exactly one Relation to a pair of lines:
//   - TooShortBoth, TooShortA, TooShortB: a line is shorter than the length
//     tolerance. These take precedence over everything else.
//   - Parallel: the ratio of the cross and dot products of the directions
//     is below the parallel tolerance.
//   - Intersect: the infinite lines cross within both finite lines.
//   - Apart: anything else.
//
// # Tolerances
//
// Every threshold lives in a Tolerance value. Package-level functions use
// DefaultTolerance; methods on Tolerance take custom thresholds:
//
//	tol := geom.NewTolerance(geom.WithParallelAngle(0.1), geom.WithDistanceSq(1e-8))
//	touching := tol.DoIntersectOrOverlap(a, b)
//
// # Errors
//
// Operations that need a direction (ray projections, unit vectors) fail
// with an error wrapping ErrTooSmallInput on degenerate input. Operations on
// finite lines never fail: they fall back to point distances instead.
package geom
