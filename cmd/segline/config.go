package main

import (
	"github.com/pkg/errors"
	"gopkg.in/gcfg.v1"

	"github.com/gogpu/geom"
)

// Config is the layout of a segline configuration file:
//
//	[tolerance]
//	length = 1e-6
//	parallel-angle = 0.25
//	param-slack = 1e-6
//	distance-sq = 1e-12
//	ray-param-limit = 1e12
//
//	[render]
//	size = 512
//
// Missing or zero values keep their defaults.
type Config struct {
	Tolerance ToleranceConfig
	Render    RenderConfig
}

// ToleranceConfig overrides fields of geom.DefaultTolerance.
type ToleranceConfig struct {
	Length        float64
	ParallelAngle float64 `gcfg:"parallel-angle"`
	ParamSlack    float64 `gcfg:"param-slack"`
	DistanceSq    float64 `gcfg:"distance-sq"`
	RayParamLimit float64 `gcfg:"ray-param-limit"`
}

// RenderConfig controls PNG output.
type RenderConfig struct {
	Size int
}

// ReadConfigFile parses and validates the config file at path.
func ReadConfigFile(path string) (*Config, error) {
	cfg := &Config{}
	if err := gcfg.ReadFileInto(cfg, path); err != nil {
		return nil, errors.Wrapf(err, "reading config %q", path)
	}
	if err := cfg.Check(); err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

// ReadConfigString parses and validates config text.
func ReadConfigString(text string) (*Config, error) {
	cfg := &Config{}
	if err := gcfg.ReadStringInto(cfg, text); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Check rejects negative values and parallel angles of 90 degrees or more.
func (c *Config) Check() error {
	tc := c.Tolerance
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"length", tc.Length},
		{"parallel-angle", tc.ParallelAngle},
		{"param-slack", tc.ParamSlack},
		{"distance-sq", tc.DistanceSq},
		{"ray-param-limit", tc.RayParamLimit},
	} {
		if f.value < 0 {
			return errors.Errorf("tolerance %s must be non-negative, but is %g", f.name, f.value)
		}
	}
	if tc.ParallelAngle >= 90 {
		return errors.Errorf("tolerance parallel-angle must be below 90 degrees, but is %g", tc.ParallelAngle)
	}
	if c.Render.Size < 0 {
		return errors.Errorf("render size must be non-negative, but is %d", c.Render.Size)
	}
	return nil
}

// Options converts the non-zero overrides into tolerance options.
func (tc ToleranceConfig) Options() []geom.Option {
	var opts []geom.Option
	if tc.Length > 0 {
		opts = append(opts, geom.WithLength(tc.Length))
	}
	if tc.ParallelAngle > 0 {
		opts = append(opts, geom.WithParallelAngle(tc.ParallelAngle))
	}
	if tc.ParamSlack > 0 {
		opts = append(opts, geom.WithParamSlack(tc.ParamSlack))
	}
	if tc.DistanceSq > 0 {
		opts = append(opts, geom.WithDistanceSq(tc.DistanceSq))
	}
	if tc.RayParamLimit > 0 {
		opts = append(opts, geom.WithRayParamLimit(tc.RayParamLimit))
	}
	return opts
}

// Tolerance returns the default tolerance with the overrides applied.
func (tc ToleranceConfig) Tolerance() geom.Tolerance {
	return geom.NewTolerance(tc.Options()...)
}
