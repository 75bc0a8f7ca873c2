package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/measure"
	"github.com/grindlemire/go-flex/internal/render"
	"github.com/grindlemire/go-flex/internal/scene"
)

const defaultTerminalWidth = 80

// settings are the config values after flag overrides.
type settings struct {
	width     float64
	height    float64
	format    render.Format
	measure   string
	eastAsian bool
	frameRate int
}

// worldFlags are the flags shared by commands that build scenes.
type worldFlags struct {
	width     float64
	height    float64
	format    string
	measure   string
	frameRate int
}

func (f *worldFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "viewport width when the scene sets none")
	cmd.Flags().Float64Var(&f.height, "height", 0, "viewport height when the scene sets none")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: tree, json, yaml")
	cmd.Flags().StringVar(&f.measure, "measure", "", "text measurement: cells, face")
	cmd.Flags().IntVar(&f.frameRate, "fps", 0, "frame rate for the scheduler loop")
}

// resolve merges cfg with the flags that were set on cmd.
func (f *worldFlags) resolve(cmd *cobra.Command, cfg config.Config) (settings, error) {
	s := settings{
		width:     cfg.Viewport.Width,
		height:    cfg.Viewport.Height,
		measure:   cfg.Measure.Mode,
		eastAsian: cfg.Measure.EastAsian,
		frameRate: cfg.Animate.FrameRate,
	}
	format := cfg.Output.Format

	flags := cmd.Flags()
	if flags.Changed("width") {
		s.width = f.width
	}
	if flags.Changed("height") {
		s.height = f.height
	}
	if flags.Changed("format") {
		format = f.format
	}
	if flags.Changed("measure") {
		s.measure = f.measure
	}
	if flags.Changed("fps") {
		s.frameRate = f.frameRate
	}

	var err error
	if s.format, err = render.ParseFormat(format); err != nil {
		return s, err
	}
	switch s.measure {
	case config.MeasureCells:
		if s.width == 0 {
			s.width = defaultTerminalWidth
			if w, _, ok := terminalSize(int(os.Stdout.Fd())); ok && w > 0 {
				s.width = float64(w)
			}
		}
	case config.MeasureFace:
	default:
		return s, fmt.Errorf("unknown measure mode %q", s.measure)
	}
	return s, nil
}

func (s settings) metrics() measure.Metrics {
	if s.measure == config.MeasureFace {
		return measure.Basic()
	}
	return measure.NewCells(s.eastAsian)
}

// world is one scene with its own tree and scheduler.
type world struct {
	path  string
	sched *flex.Scheduler
	scene *scene.Scene
}

func newWorld(ctx context.Context, path string, s settings) (*world, error) {
	logger := loggerFromContext(ctx).With("scene", path)

	doc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	sched, err := flex.NewScheduler(flex.WithLogger(logger), flex.WithFrameRate(s.frameRate))
	if err != nil {
		return nil, err
	}

	b := &scene.Builder{
		Metrics:  s.metrics(),
		Viewport: scene.Size{Width: s.width, Height: s.height},
	}
	sc, err := b.Build(flex.NewTree(sched), doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &world{path: path, sched: sched, scene: sc}, nil
}

func (w *world) snapshot() *render.Node {
	return render.Snapshot(w.scene.Tree, w.scene.Root)
}
