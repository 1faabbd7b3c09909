package main

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geom"
)

// Report collects every relationship query between two lines.
type Report struct {
	A, B geom.Line

	Relationship geom.Relationship

	ClosestA, ClosestB   geom.Point
	ParamA, ParamB       float64
	Distance             float64
	Intersects           bool
	Crossing             geom.Point
	IntersectsOrOverlaps bool
	HasOverlap           bool
	OverlapStart         float64
	OverlapEnd           float64
	Touching             bool
	Parallel, Coincident bool
	HasRay               bool
	RayCrossing          geom.Point
	RayParamA, RayParamB float64
	RayParamErr          error
}

// Analyze runs the relationship queries on a and b under tol.
func Analyze(tol geom.Tolerance, a, b geom.Line) Report {
	r := Report{A: a, B: b}
	r.Relationship = tol.Classify(a, b)
	r.ParamA, r.ParamB = tol.ClosestParameters(a, b)
	r.ClosestA, r.ClosestB = tol.ClosestPoints(a, b)
	r.Distance = tol.DistanceToLine(a, b)
	r.Crossing, r.Intersects = tol.TryIntersect(a, b)
	r.IntersectsOrOverlaps = tol.DoIntersectOrOverlap(a, b)
	r.OverlapStart, r.OverlapEnd, r.HasOverlap = tol.TryGetOverlap(a, b)
	r.Touching = geom.IsTouchingEndOf(tol.DistanceSq, a, b)
	r.Parallel = tol.IsParallelTo(a, b)
	r.Coincident = tol.IsCoincidentTo(a, b)
	r.RayCrossing, r.HasRay = tol.TryIntersectRay(a, b)
	r.RayParamA, r.RayParamB, r.RayParamErr = tol.ClosestRayParameters(a, b)
	return r
}

// Write prints the report with numbers formatted for tag.
func (r Report) Write(w io.Writer, tag language.Tag) error {
	p := message.NewPrinter(tag)
	pt := func(q geom.Point) string {
		return p.Sprintf("(%.6g, %.6g)", q.X, q.Y)
	}

	lines := []string{
		p.Sprintf("A            %s -> %s  length %.6g\n", pt(r.A.From), pt(r.A.To), r.A.Length()),
		p.Sprintf("B            %s -> %s  length %.6g\n", pt(r.B.From), pt(r.B.To), r.B.Length()),
		p.Sprintf("relation     %v\n", r.Relationship.Kind),
		p.Sprintf("closest      A(%.6g) = %s  B(%.6g) = %s\n", r.ParamA, pt(r.ClosestA), r.ParamB, pt(r.ClosestB)),
		p.Sprintf("distance     %.6g\n", r.Distance),
	}
	if r.Intersects {
		lines = append(lines, p.Sprintf("intersect    %s\n", pt(r.Crossing)))
	} else {
		lines = append(lines, p.Sprintf("intersect    no\n"))
	}
	lines = append(lines, p.Sprintf("touch        %t\n", r.IntersectsOrOverlaps))
	if r.HasOverlap {
		lines = append(lines, p.Sprintf("overlap      A[%.6g .. %.6g]\n", r.OverlapStart, r.OverlapEnd))
	} else {
		lines = append(lines, p.Sprintf("overlap      no\n"))
	}
	lines = append(lines,
		p.Sprintf("endpoints    %t\n", r.Touching),
		p.Sprintf("parallel     %t\n", r.Parallel),
		p.Sprintf("coincident   %t\n", r.Coincident),
	)
	if r.HasRay {
		lines = append(lines, p.Sprintf("ray cross    %s\n", pt(r.RayCrossing)))
	} else {
		lines = append(lines, p.Sprintf("ray cross    no\n"))
	}
	if r.RayParamErr != nil {
		lines = append(lines, p.Sprintf("ray closest  %v\n", r.RayParamErr))
	} else {
		lines = append(lines, p.Sprintf("ray closest  A(%.6g) B(%.6g)\n", r.RayParamA, r.RayParamB))
	}

	for _, l := range lines {
		if _, err := io.WriteString(w, l); err != nil {
			return err
		}
	}
	return nil
}
