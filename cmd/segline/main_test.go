package main

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/gogpu/geom"
)

func TestReadConfigString(t *testing.T) {
	cfg, err := ReadConfigString(`
[tolerance]
length = 1e-3
parallel-angle = 1
distance-sq = 1e-8

[render]
size = 256
`)
	require.NoError(t, err)
	assert.Equal(t, 256, cfg.Render.Size)

	tol := cfg.Tolerance.Tolerance()
	def := geom.DefaultTolerance()
	assert.Equal(t, 1e-3, tol.Length)
	assert.InDelta(t, math.Tan(math.Pi/180), tol.ParallelTangent, 1e-15)
	assert.Equal(t, 1e-8, tol.DistanceSq)
	assert.Equal(t, def.ParamSlack, tol.ParamSlack)
	assert.Equal(t, def.RayParamLimit, tol.RayParamLimit)
}

func TestReadConfigString_Empty(t *testing.T) {
	cfg, err := ReadConfigString("")
	require.NoError(t, err)
	assert.Equal(t, geom.DefaultTolerance(), cfg.Tolerance.Tolerance())
	assert.Empty(t, cfg.Tolerance.Options())
}

func TestReadConfigString_Invalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"negative length", "[tolerance]\nlength = -1\n"},
		{"right angle", "[tolerance]\nparallel-angle = 90\n"},
		{"negative size", "[render]\nsize = -5\n"},
		{"not a number", "[tolerance]\nlength = tiny\n"},
		{"unknown variable", "[tolerance]\nwidth = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadConfigString(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestReadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segline.gcfg")
	require.NoError(t, os.WriteFile(path, []byte("[tolerance]\nparam-slack = 0.01\n"), 0o600))

	cfg, err := ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Tolerance.Tolerance().ParamSlack)

	_, err = ReadConfigFile(filepath.Join(t.TempDir(), "missing.gcfg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.gcfg")
}

func TestParseLines(t *testing.T) {
	a, b, err := parseLines([]string{"0", "0", "2", "2", "0", "2", "2", "-0.5"})
	require.NoError(t, err)
	assert.Equal(t, geom.NewLine(geom.Pt(0, 0), geom.Pt(2, 2)), a)
	assert.Equal(t, geom.NewLine(geom.Pt(0, 2), geom.Pt(2, -0.5)), b)

	_, _, err = parseLines([]string{"0", "0", "1"})
	assert.Error(t, err)

	_, _, err = parseLines([]string{"0", "0", "1", "x", "0", "0", "1", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "coordinate 4")
}

func TestRenderSize(t *testing.T) {
	tests := []struct {
		name       string
		flag, conf int
		expect     int
	}{
		{"default", 0, 0, defaultSize},
		{"config", 0, 300, 300},
		{"flag wins", 200, 300, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderSize(tt.flag, tt.conf)
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}

	_, err := renderSize(-5, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--size")
}

func TestRun_RejectsNegativeSize(t *testing.T) {
	var opts options
	opts.Size = -1
	opts.PNG = filepath.Join(t.TempDir(), "out.png")
	opts.Args.Coords = []string{"0", "0", "1", "1", "0", "1", "1", "0"}

	require.Error(t, run(opts))
	_, err := os.Stat(opts.PNG)
	assert.True(t, os.IsNotExist(err))
}

func TestAnalyze(t *testing.T) {
	tol := geom.DefaultTolerance()

	cross := Analyze(tol, geom.NewLine(geom.Pt(0, 0), geom.Pt(2, 2)), geom.NewLine(geom.Pt(0, 2), geom.Pt(2, 0)))
	assert.Equal(t, geom.Intersect, cross.Relationship.Kind)
	assert.True(t, cross.Intersects)
	assert.True(t, cross.Crossing.Approx(geom.Pt(1, 1), 1e-12))
	assert.True(t, cross.IntersectsOrOverlaps)
	assert.False(t, cross.HasOverlap)
	assert.InDelta(t, 0, cross.Distance, 1e-12)
	assert.NoError(t, cross.RayParamErr)

	overlap := Analyze(tol, geom.NewLine(geom.Pt(0, 0), geom.Pt(4, 0)), geom.NewLine(geom.Pt(3, 0), geom.Pt(1, 0)))
	assert.Equal(t, geom.Parallel, overlap.Relationship.Kind)
	assert.True(t, overlap.HasOverlap)
	assert.InDelta(t, 0.75, overlap.OverlapStart, 1e-12)
	assert.InDelta(t, 0.25, overlap.OverlapEnd, 1e-12)
	assert.True(t, overlap.Parallel)
	assert.True(t, overlap.Coincident)

	dot := geom.NewLine(geom.Pt(1, 1), geom.Pt(1, 1))
	both := Analyze(tol, dot, dot)
	assert.Equal(t, geom.TooShortBoth, both.Relationship.Kind)
	assert.True(t, errors.Is(both.RayParamErr, geom.ErrTooSmallInput))
	assert.True(t, both.Touching)
}

func TestReport_Write(t *testing.T) {
	r := Analyze(geom.DefaultTolerance(),
		geom.NewLine(geom.Pt(0, 0), geom.Pt(2, 2)),
		geom.NewLine(geom.Pt(0, 2), geom.Pt(2, 0)))

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, language.English))
	out := buf.String()
	assert.Contains(t, out, "relation     Intersect\n")
	assert.Contains(t, out, "touch        true\n")
	assert.Contains(t, out, "overlap      no\n")
	assert.Contains(t, out, "coincident   false\n")
}

func TestRender(t *testing.T) {
	r := Analyze(geom.DefaultTolerance(),
		geom.NewLine(geom.Pt(0, 0), geom.Pt(2, 2)),
		geom.NewLine(geom.Pt(0, 2), geom.Pt(2, 0)))

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, render(path, 64, r))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}
