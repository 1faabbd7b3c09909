package geom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoIntersect(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Line
		intersect bool
		orOverlap bool
	}{
		{"crossing", ln(0, 0, 10, 10), ln(0, 10, 10, 0), true, true},
		{"boundary touch", ln(0, 0, 5, 0), ln(5, 0, 5, 5), false, true},
		{"t junction", ln(0, 0, 10, 0), ln(5, 0, 5, 5), false, true},
		{"apart", ln(0, 0, 10, 0), ln(5, 1, 5, 5), false, false},
		{"parallel offset", ln(0, 0, 10, 0), ln(0, 5, 10, 5), false, false},
		{"collinear overlap", ln(0, 0, 10, 0), ln(4, 0, 14, 0), false, true},
		{"collinear end to end", ln(0, 0, 5, 0), ln(5, 0, 9, 0), false, true},
		{"collinear disjoint", ln(0, 0, 5, 0), ln(6, 0, 9, 0), false, false},
		{"nearly parallel crossing", ln(0, 0, 10, 0), ln(0, -0.001, 10, 0.019), false, true},
		{"slack past the end of a long line", ln(0, 0, 1e7, 0), ln(1e7+5, -1, 1e7+5, 1), false, false},
		{"almost t junction", ln(0, 0, 10, 0), ln(5, 1e-7, 5, 1e-2), false, true},
		{"degenerate both same point", ln(5, 5, 5, 5), ln(5, 5, 5, 5), false, true},
		{"degenerate both apart", ln(5, 5, 5, 5), ln(6, 5, 6, 5), false, false},
		{"degenerate on line", ln(3, 0, 3, 0), ln(0, 0, 10, 0), false, true},
		{"degenerate off line", ln(3, 1, 3, 1), ln(0, 0, 10, 0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.intersect, DoIntersect(tt.a, tt.b), "DoIntersect(a, b)")
			assert.Equal(t, tt.intersect, DoIntersect(tt.b, tt.a), "DoIntersect(b, a)")
			assert.Equal(t, tt.orOverlap, DoIntersectOrOverlap(tt.a, tt.b), "DoIntersectOrOverlap(a, b)")
			assert.Equal(t, tt.orOverlap, DoIntersectOrOverlap(tt.b, tt.a), "DoIntersectOrOverlap(b, a)")
		})
	}
}

func TestTryIntersect(t *testing.T) {
	p, ok := TryIntersect(ln(0, 0, 10, 10), ln(0, 10, 10, 0))
	require.True(t, ok)
	assert.True(t, p.Approx(Pt(5, 5), 1e-12))

	ta, tb, ok := IntersectParameters(ln(0, 0, 10, 0), ln(4, -2, 4, 6))
	require.True(t, ok)
	assert.InDelta(t, 0.4, ta, 1e-12)
	assert.InDelta(t, 0.25, tb, 1e-12)

	_, ok = TryIntersect(ln(0, 0, 5, 0), ln(5, 0, 5, 5))
	assert.False(t, ok, "touching endpoints are not a crossing")

	_, ok = TryIntersect(ln(0, 0, 10, 0), ln(0, 5, 10, 5))
	assert.False(t, ok)

	_, ok = TryIntersect(ln(1, 1, 1, 1), ln(0, 0, 10, 10))
	assert.False(t, ok)
}

func TestTryIntersectRay(t *testing.T) {
	p, ok := TryIntersectRay(ln(0, 0, 1, 0), ln(5, 1, 5, 2))
	require.True(t, ok)
	assert.True(t, p.Approx(Pt(5, 0), 1e-12))

	ta, tb, ok := RayIntersectParameters(ln(0, 0, 1, 0), ln(5, 1, 5, 2))
	require.True(t, ok)
	assert.InDelta(t, 5, ta, 1e-12)
	assert.InDelta(t, -1, tb, 1e-12)

	_, ok = TryIntersectRay(ln(0, 0, 1, 0), ln(0, 1, 1, 1))
	assert.False(t, ok, "parallel")

	_, ok = TryIntersectRay(ln(0, 0, 0, 0), ln(0, 1, 1, 1))
	assert.False(t, ok, "degenerate")

	// Disable the parallel test so the nearly parallel solve reaches the
	// parameter guard.
	tol := NewTolerance(WithParallelTangent(0))
	_, ok = tol.TryIntersectRay(ln(0, 0, 1, 0), ln(0, 1, 1, 1+1e-13))
	assert.False(t, ok, "unstable")

	_, ok = NewTolerance(WithParallelTangent(0), WithRayParamLimit(1e20)).
		TryIntersectRay(ln(0, 0, 1, 0), ln(0, 1, 1, 1+1e-13))
	assert.True(t, ok, "raised limit")
}

func TestClosestRayParameters(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Line
		ta, tb float64
	}{
		{"crossing rays", ln(0, 0, 1, 0), ln(5, 1, 5, 2), 5, -1},
		{"parallel", ln(0, 0, 10, 0), ln(2, 3, 4, 3), 0, -1},
		{"too short a", ln(3, 3, 3, 3), ln(0, 0, 1, 0), 0, 3},
		{"too short b", ln(0, 0, 1, 0), ln(-2, 3, -2, 3), -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta, tb, err := ClosestRayParameters(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.ta, ta, 1e-12)
			assert.InDelta(t, tt.tb, tb, 1e-12)
		})
	}

	_, _, err := ClosestRayParameters(ln(1, 1, 1, 1), ln(2, 2, 2, 2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooSmallInput))

	var tse *TooSmallError
	require.True(t, errors.As(err, &tse))
	assert.Equal(t, "ClosestRayParameters", tse.Op)
	assert.Len(t, tse.Lines, 2)
}

func TestTryGetOverlap(t *testing.T) {
	tests := []struct {
		name       string
		a, b       Line
		ok         bool
		start, end float64
	}{
		{"same direction", ln(0, 0, 10, 0), ln(4, 0, 14, 0), true, 0.4, 1},
		{"opposite direction", ln(0, 0, 10, 0), ln(14, 0, 4, 0), true, 1, 0.4},
		{"contained", ln(0, 0, 10, 0), ln(2, 0, 3, 0), true, 0.2, 0.3},
		{"containing", ln(2, 0, 3, 0), ln(0, 0, 10, 0), true, 0, 1},
		{"touching", ln(0, 0, 5, 0), ln(5, 0, 9, 0), true, 1, 1},
		{"collinear disjoint", ln(0, 0, 5, 0), ln(6, 0, 9, 0), false, 0, 0},
		{"parallel offset", ln(0, 0, 10, 0), ln(0, 5, 10, 5), false, 0, 0},
		{"crossing", ln(0, 0, 10, 10), ln(0, 10, 10, 0), false, 0, 0},
		{"degenerate", ln(0, 0, 10, 0), ln(3, 0, 3, 0), false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := TryGetOverlap(tt.a, tt.b)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.start, start, 1e-12)
			assert.InDelta(t, tt.end, end, 1e-12)
		})
	}
}

func TestTryGetOverlap_MidpointLaw(t *testing.T) {
	a := ln(0, 0, 10, 0)
	start, end, ok := TryGetOverlap(a, ln(4, 0, 14, 0))
	require.True(t, ok)
	mid := a.PointAt((start + end) / 2)
	assert.True(t, mid.Approx(Pt(7, 0), 1e-12), "midpoint = %v", mid)
}

func TestIsTouchingEndOf(t *testing.T) {
	a := ln(0, 0, 5, 0)
	assert.True(t, IsTouchingEndOf(1e-12, a, ln(5, 0, 5, 5)))
	assert.True(t, IsTouchingEndOf(1e-12, a, ln(5, 5, 0, 0)))
	assert.False(t, IsTouchingEndOf(1e-12, a, ln(2, -1, 2, 1)), "crossing is not touching")
	assert.False(t, IsTouchingEndOf(1e-12, a, ln(5.1, 0, 9, 0)))
	assert.True(t, IsTouchingEndOf(0.01+1e-9, a, ln(5.1, 0, 9, 0)))
}

func TestIsParallelAndCoincident(t *testing.T) {
	tests := []struct {
		name                 string
		a, b                 Line
		parallel, coincident bool
	}{
		{"collinear overlap", ln(0, 0, 10, 0), ln(4, 0, 14, 0), true, true},
		{"collinear disjoint", ln(0, 0, 10, 0), ln(20, 0, 30, 0), true, true},
		{"anti-parallel collinear", ln(0, 0, 10, 0), ln(30, 0, 20, 0), true, true},
		{"parallel offset", ln(0, 0, 10, 0), ln(0, 5, 10, 5), true, false},
		{"crossing", ln(0, 0, 10, 10), ln(0, 10, 10, 0), false, false},
		{"degenerate", ln(0, 0, 0, 0), ln(0, 0, 10, 0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.parallel, IsParallelTo(tt.a, tt.b))
			assert.Equal(t, tt.parallel, IsParallelTo(tt.b, tt.a))
			assert.Equal(t, tt.coincident, IsCoincidentTo(tt.a, tt.b))
		})
	}
}

func TestFastVariants(t *testing.T) {
	// Zero-length lines pass both fast tests: a documented relaxation.
	zero := ln(1, 1, 1, 1)
	other := ln(5, -3, 8, 7)
	assert.True(t, IsParallelToFast(1e-9, zero, other))
	assert.True(t, IsCoincidentToFast(1e-9, zero, other))
	assert.False(t, IsParallelTo(zero, other))

	// Long, nearly parallel lines fail with an unscaled area tolerance.
	long := ln(0, 0, 1000, 0)
	near := ln(0, 1e-3, 1000, 1e-3+1)
	assert.True(t, IsParallelTo(long, near))
	assert.False(t, IsParallelToFast(1e-6, long, near))
	assert.True(t, IsParallelToFast(1e-3*long.Length()*near.Length(), long, near))

	// Short collinear lines pass with a small tolerance.
	assert.True(t, IsCoincidentToFast(1e-9, ln(0, 0, 1, 0), ln(2, 0, 3, 0)))
	assert.False(t, IsCoincidentToFast(1e-9, ln(0, 0, 1, 0), ln(2, 1, 3, 1)))
	assert.False(t, IsCoincidentToFast(1e-9, ln(0, 0, 1, 0), ln(0, 0, 0, 1)))
}
