// Command segline reports how two line segments relate to each other.
//
// Usage:
//
//	segline [--config FILE] [--png FILE] [--size N] [--verbose] ax ay bx by cx cy dx dy
//
// Line A runs from (ax, ay) to (bx, by), line B from (cx, cy) to (dx, dy).
// Put negative coordinates after "--" so they are not read as flags.
package main

import (
	"image/color"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/sketch"
)

const defaultSize = 512

type options struct {
	Config  string `long:"config" description:"tolerance config file"`
	PNG     string `long:"png" description:"render the lines into this PNG file"`
	Size    int    `long:"size" description:"PNG width and height in pixels"`
	Verbose bool   `short:"v" long:"verbose" description:"log engine diagnostics to stderr"`

	Args struct {
		Coords []string `positional-arg-name:"coord" required:"8"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		log.Fatalf("segline: %v", err)
	}
}

func run(opts options) error {
	if opts.Verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := &Config{}
	if opts.Config != "" {
		var err error
		if cfg, err = ReadConfigFile(opts.Config); err != nil {
			return err
		}
	}

	size, err := renderSize(opts.Size, cfg.Render.Size)
	if err != nil {
		return err
	}

	a, b, err := parseLines(opts.Args.Coords)
	if err != nil {
		return err
	}

	report := Analyze(cfg.Tolerance.Tolerance(), a, b)
	if err := report.Write(os.Stdout, language.English); err != nil {
		return errors.Wrap(err, "writing report")
	}

	if opts.PNG == "" {
		return nil
	}
	return render(opts.PNG, size, report)
}

// renderSize picks the PNG size: the flag, then the config file, then
// defaultSize. Zero means unset.
func renderSize(flagSize, configSize int) (int, error) {
	if flagSize < 0 {
		return 0, errors.Errorf("--size must be non-negative, but is %d", flagSize)
	}
	switch {
	case flagSize > 0:
		return flagSize, nil
	case configSize > 0:
		return configSize, nil
	default:
		return defaultSize, nil
	}
}

func parseLines(coords []string) (a, b geom.Line, err error) {
	if len(coords) != 8 {
		return a, b, errors.Errorf("need 8 coordinates, got %d", len(coords))
	}
	var v [8]float64
	for i, s := range coords {
		if v[i], err = strconv.ParseFloat(s, 64); err != nil {
			return a, b, errors.Wrapf(err, "coordinate %d", i+1)
		}
	}
	a = geom.NewLine(geom.Pt(v[0], v[1]), geom.Pt(v[2], v[3]))
	b = geom.NewLine(geom.Pt(v[4], v[5]), geom.Pt(v[6], v[7]))
	return a, b, nil
}

var (
	background = color.RGBA{0xfa, 0xfa, 0xf5, 0xff}
	colorA     = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
	colorB     = color.RGBA{0xff, 0x7f, 0x0e, 0xff}
	colorMark  = color.RGBA{0xd6, 0x27, 0x28, 0xff}
	colorText  = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

func render(path string, size int, r Report) error {
	c := sketch.New(size, background, r.A, r.B)
	c.Line(r.A, colorA, 3)
	c.Line(r.B, colorB, 3)
	c.Label(r.A.From, "A", colorText)
	c.Label(r.B.From, "B", colorText)

	c.Marker(r.ClosestA, colorMark, 4)
	c.Marker(r.ClosestB, colorMark, 4)
	if r.Intersects {
		c.Marker(r.Crossing, colorMark, 7)
		c.Label(r.Crossing, r.Relationship.Kind.String(), colorText)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating png")
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
