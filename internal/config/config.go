// Package config loads CLI settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"go.uber.org/multierr"
)

// Config is the flex CLI configuration.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	Output   Output   `toml:"output"`
	Measure  Measure  `toml:"measure"`
	Log      Log      `toml:"log"`
	Animate  Animate  `toml:"animate"`
}

// Viewport is the root size used when a scene sets none. A zero width in
// cells mode falls back to the terminal width.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Output struct {
	Format string `toml:"format"`
}

// Measure selects how text elements are measured.
type Measure struct {
	// Mode is "cells" or "face".
	Mode string `toml:"mode"`

	// EastAsian treats ambiguous-width runes as double width in cells mode.
	EastAsian bool `toml:"east-asian"`
}

type Log struct {
	Level string `toml:"level"`
}

type Animate struct {
	FrameRate int `toml:"frame-rate"`

	// Timeout bounds a single animate run.
	Timeout Duration `toml:"timeout"`
}

// Duration is a time.Duration written as a string such as "2s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

const (
	MeasureCells = "cells"
	MeasureFace  = "face"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 80, Height: 24},
		Output:   Output{Format: "tree"},
		Measure:  Measure{Mode: MeasureCells},
		Log:      Log{Level: "info"},
		Animate:  Animate{FrameRate: 60, Timeout: Duration{10 * time.Second}},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := Parse(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data into cfg, keeping fields the document does not set.
// Unknown keys are an error.
func Parse(data string, cfg *Config) error {
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var err error
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		err = multierr.Append(err, fmt.Errorf("viewport: negative size %gx%g", c.Viewport.Width, c.Viewport.Height))
	}
	switch c.Measure.Mode {
	case MeasureCells, MeasureFace:
	default:
		err = multierr.Append(err, fmt.Errorf("measure.mode: unknown mode %q", c.Measure.Mode))
	}
	if _, lerr := c.Level(); lerr != nil {
		err = multierr.Append(err, fmt.Errorf("log.level: %w", lerr))
	}
	if c.Animate.FrameRate < 1 || c.Animate.FrameRate > 240 {
		err = multierr.Append(err, fmt.Errorf("animate.frame-rate: %d out of range 1-240", c.Animate.FrameRate))
	}
	return err
}

// Level parses Log.Level.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}
