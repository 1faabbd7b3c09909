// Package sketch rasterizes lines and points in world coordinates into an
// RGBA image, for visual inspection of line relationships.
package sketch

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/geom"
)

// Margin is the number of pixels kept free around the fitted bounds.
const Margin = 24

// Canvas maps a world-space window onto a square image.
// The world Y axis points up; image rows grow downwards.
type Canvas struct {
	img   *image.RGBA
	size  int
	minX  float64
	minY  float64
	scale float64
}

// New creates a size×size canvas with background bg whose view fits every
// endpoint of lines. A view with no extent is widened to one world unit.
func New(size int, bg color.Color, lines ...geom.Line) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, l := range lines {
		for _, p := range [2]geom.Point{l.From, l.To} {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
	}
	if len(lines) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	span := math.Max(maxX-minX, maxY-minY)
	if span < geom.ShortLength {
		span = 1
		minX -= 0.5
		minY -= 0.5
	}
	inner := float64(size - 2*Margin)
	if inner <= 0 {
		inner = float64(size)
	}

	return &Canvas{
		img:   img,
		size:  size,
		minX:  minX,
		minY:  minY,
		scale: inner / span,
	}
}

// Image returns the rendered image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ToPixel maps a world point to image coordinates.
func (c *Canvas) ToPixel(p geom.Point) geom.Point {
	return geom.Pt(
		Margin+(p.X-c.minX)*c.scale,
		float64(c.size)-Margin-(p.Y-c.minY)*c.scale,
	)
}

// Line strokes l with the given pixel width. Lines too short to have a
// direction are drawn as a marker instead.
func (c *Canvas) Line(l geom.Line, col color.Color, width float64) {
	from, to := c.ToPixel(l.From), c.ToPixel(l.To)
	dir, err := to.Sub(from).Unit()
	if err != nil {
		c.Marker(l.From, col, width)
		return
	}
	n := dir.Perp().Mul(width / 2)

	z := c.rasterizer()
	moveTo(z, from.Add(n))
	lineTo(z, to.Add(n))
	lineTo(z, to.Add(n.Neg()))
	lineTo(z, from.Add(n.Neg()))
	z.ClosePath()
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Marker draws a diamond of the given pixel radius centered on p.
func (c *Canvas) Marker(p geom.Point, col color.Color, radius float64) {
	center := c.ToPixel(p)

	z := c.rasterizer()
	moveTo(z, center.Add(geom.V2(0, -radius)))
	lineTo(z, center.Add(geom.V2(radius, 0)))
	lineTo(z, center.Add(geom.V2(0, radius)))
	lineTo(z, center.Add(geom.V2(-radius, 0)))
	z.ClosePath()
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Label draws text with its baseline origin just right of p.
func (c *Canvas) Label(p geom.Point, text string, col color.Color) {
	px := c.ToPixel(p)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(px.X)+6, int(px.Y)-4),
	}
	d.DrawString(text)
}

// WritePNG encodes the image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	return vector.NewRasterizer(c.size, c.size)
}

func moveTo(z *vector.Rasterizer, p geom.Point) {
	z.MoveTo(float32(p.X), float32(p.Y))
}

func lineTo(z *vector.Rasterizer, p geom.Point) {
	z.LineTo(float32(p.X), float32(p.Y))
}
