package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"
)

func TestParse(t *testing.T) {
	type tc struct {
		doc     string
		check   func(t *testing.T, c Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty keeps defaults": {
			doc: ``,
			check: func(t *testing.T, c Config) {
				if c != Default() {
					t.Errorf("got = %+v, want defaults", c)
				}
			},
		},
		"overrides": {
			doc: `
[viewport]
width = 120
height = 40

[output]
format = "json"

[measure]
mode = "face"
east-asian = true

[log]
level = "debug"

[animate]
frame-rate = 30
timeout = "2s"
`,
			check: func(t *testing.T, c Config) {
				if c.Viewport.Width != 120 || c.Viewport.Height != 40 {
					t.Errorf("viewport = %+v, want 120x40", c.Viewport)
				}
				if c.Output.Format != "json" {
					t.Errorf("format = %q, want json", c.Output.Format)
				}
				if c.Measure.Mode != MeasureFace || !c.Measure.EastAsian {
					t.Errorf("measure = %+v, want face east-asian", c.Measure)
				}
				if lvl, _ := c.Level(); lvl != log.DebugLevel {
					t.Errorf("level = %v, want debug", lvl)
				}
				if c.Animate.FrameRate != 30 || c.Animate.Timeout.Duration != 2*time.Second {
					t.Errorf("animate = %+v, want 30fps 2s", c.Animate)
				}
			},
		},
		"partial section keeps other defaults": {
			doc: "[viewport]\nwidth = 10\n",
			check: func(t *testing.T, c Config) {
				if c.Viewport.Width != 10 || c.Viewport.Height != 24 {
					t.Errorf("viewport = %+v, want 10x24", c.Viewport)
				}
			},
		},
		"unknown key": {
			doc:     "[viewport]\ndepth = 3\n",
			wantErr: "unknown keys: viewport.depth",
		},
		"unknown section": {
			doc:     "[grid]\nrows = 3\n",
			wantErr: "unknown keys",
		},
		"bad duration": {
			doc:     "[animate]\ntimeout = \"soon\"\n",
			wantErr: "soon",
		},
		"bad mode": {
			doc:     "[measure]\nmode = \"pixels\"\n",
			wantErr: `unknown mode "pixels"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			err := Parse(tt.doc, &cfg)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Viewport.Width = -1
	cfg.Measure.Mode = "ink"
	cfg.Log.Level = "loud"
	cfg.Animate.FrameRate = 0

	err := cfg.Validate()
	if got := len(multierr.Errors(err)); got != 4 {
		t.Errorf("len(Errors) = %d, want 4: %v", got, err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	path := filepath.Join(t.TempDir(), "flex.toml")
	if err := os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("format = %q, want yaml", cfg.Output.Format)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}
