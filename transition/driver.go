package transition

import (
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"

	"github.com/grindlemire/go-flex"
)

// Definition describes one animated property.
type Definition struct {
	Property Property
	Target   flex.ElementID
	From     float64 // Value in the off state
	To       float64 // Value in the on state
	Duration time.Duration
	Ease     Easing
}

// Driver switches a set of definitions between their off and on states.
type Driver struct {
	tree   *flex.Tree
	defs   []Definition
	access []accessor
	state  bool
	tweens []tween
	logger *log.Logger
}

type tween struct {
	index      int
	start, end float64
	elapsed    time.Duration
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the driver's logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// New binds definitions to the elements of tree. Every definition whose
// target is missing or lacks the property is reported in the returned
// error.
func New(tree *flex.Tree, defs []Definition, opts ...Option) (*Driver, error) {
	d := &Driver{
		tree:   tree,
		defs:   defs,
		access: make([]accessor, len(defs)),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	var errs error
	for i, def := range defs {
		a, err := resolve(tree, def.Target, def.Property)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		d.access[i] = a
	}
	if errs != nil {
		return nil, errs
	}
	return d, nil
}

// State reports whether the driver is in the on state.
func (d *Driver) State() bool {
	return d.state
}

// Active reports whether any tween is still running.
func (d *Driver) Active() bool {
	return len(d.tweens) > 0
}

// SwitchState moves every definition toward the state. With animate set,
// tweens start from the current values; otherwise the values jump. Running
// tweens are cancelled either way.
func (d *Driver) SwitchState(enabled, animate bool) {
	d.state = enabled
	d.tweens = d.tweens[:0]

	for i, def := range d.defs {
		if !d.tree.Contains(def.Target) {
			d.logger.Debug("transition: target removed", "element", def.Target, "property", def.Property)
			continue
		}
		target := def.From
		if enabled {
			target = def.To
		}
		if !animate || def.Duration <= 0 {
			d.access[i].set(target)
			continue
		}
		d.tweens = append(d.tweens, tween{index: i, start: d.access[i].get(), end: target})
	}
}

// Toggle animates to the opposite state.
func (d *Driver) Toggle() {
	d.SwitchState(!d.state, true)
}

// Step advances running tweens by dt and reports whether any are still
// running afterwards.
func (d *Driver) Step(dt time.Duration) bool {
	running := d.tweens[:0]
	for _, tw := range d.tweens {
		def := d.defs[tw.index]
		if !d.tree.Contains(def.Target) {
			continue
		}

		tw.elapsed += dt
		progress := float64(tw.elapsed) / float64(def.Duration)
		d.access[tw.index].set(tw.start + (tw.end-tw.start)*def.Ease.Apply(progress))

		if tw.elapsed < def.Duration {
			running = append(running, tw)
		}
	}
	clear(d.tweens[len(running):])
	d.tweens = running
	return len(d.tweens) > 0
}

// Attach steps the driver on every scheduler tick, before the flush.
func (d *Driver) Attach(s *flex.Scheduler) {
	s.OnTick(func(dt time.Duration) {
		if d.Active() {
			d.Step(dt)
		}
	})
}
