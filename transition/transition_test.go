package transition

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"

	"github.com/grindlemire/go-flex"
)

type world struct {
	sched *flex.Scheduler
	tree  *flex.Tree
	root  *flex.Container
	id    flex.ElementID
	leaf  flex.ElementID
}

func newWorld(t *testing.T) world {
	t.Helper()
	sched, err := flex.NewScheduler(flex.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	tree := flex.NewTree(sched)
	root := flex.NewContainer(flex.WithAbsolute())
	id := tree.Add(flex.NoElement, root)
	tree.SetSize(id, 200, 100)
	leaf := tree.Add(id, flex.NewText(func(_, _ float64) (float64, float64) { return 10, 10 }))
	sched.Flush()
	return world{sched: sched, tree: tree, root: root, id: id, leaf: leaf}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEasing_Apply(t *testing.T) {
	type tc struct {
		ease Easing
		in   float64
		want float64
	}

	tests := map[string]tc{
		"linear midpoint":      {ease: Linear, in: 0.5, want: 0.5},
		"ease in midpoint":     {ease: EaseIn, in: 0.5, want: 0.25},
		"ease out midpoint":    {ease: EaseOut, in: 0.5, want: 0.75},
		"ease in out quarter":  {ease: EaseInOut, in: 0.25, want: 0.125},
		"ease in out midpoint": {ease: EaseInOut, in: 0.5, want: 0.5},
		"ease in out end":      {ease: EaseInOut, in: 1, want: 1},
		"clamps above one":     {ease: EaseOut, in: 3, want: 1},
		"clamps below zero":    {ease: EaseIn, in: -1, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.ease.Apply(tt.in); !approx(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProperty_TextRoundTrip(t *testing.T) {
	for _, name := range propertyNames {
		var p Property
		if err := p.UnmarshalText([]byte(name)); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", name, err)
		}
		if p.String() != name {
			t.Errorf("String() = %q, want %q", p.String(), name)
		}
	}

	var e Easing
	if err := e.UnmarshalText([]byte("bounce")); err == nil {
		t.Error(`UnmarshalText("bounce") succeeded, want error`)
	}
}

func TestNew_CollectsEveryBadDefinition(t *testing.T) {
	w := newWorld(t)
	defs := []Definition{
		{Property: Gap, Target: w.id},
		{Property: PaddingLeft, Target: w.leaf},
		{Property: MinWidth, Target: 99},
		{Property: Gap, Target: w.leaf},
	}

	_, err := New(w.tree, defs)
	if err == nil {
		t.Fatal("New() error = nil, want error")
	}
	if got := len(multierr.Errors(err)); got != 3 {
		t.Errorf("len(multierr.Errors()) = %d, want 3: %v", got, err)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("New() error = %v, want ErrUnsupported in chain", err)
	}
}

func TestDriver_SwitchStateWithoutAnimation(t *testing.T) {
	w := newWorld(t)
	d, err := New(w.tree, []Definition{
		{Property: Gap, Target: w.id, From: 0, To: 12, Duration: time.Second},
		{Property: MinWidth, Target: w.leaf, From: 0, To: 40},
		{Property: ScaleY, Target: w.leaf, From: 1, To: 2},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d.SwitchState(true, false)

	if got := w.root.Gap(); got != 12 {
		t.Errorf("Gap() = %v, want 12", got)
	}
	leaf := w.tree.Node(w.leaf)
	if got := leaf.Sizing().MinWidth; got != flex.Px(40) {
		t.Errorf("MinWidth = %v, want 40px", got)
	}
	if _, y := w.tree.Transform(w.leaf).Scale(); y != 2 {
		t.Errorf("scale y = %v, want 2", y)
	}
	if d.Active() {
		t.Error("Active() = true after a jump")
	}
	if w.sched.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", w.sched.Pending())
	}
}

func TestDriver_StepTweens(t *testing.T) {
	w := newWorld(t)
	d, err := New(w.tree, []Definition{
		{Property: PaddingTop, Target: w.id, From: 0, To: 10, Duration: 100 * time.Millisecond},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d.Toggle()
	if !d.State() || !d.Active() {
		t.Fatalf("State(), Active() = %v, %v, want true, true", d.State(), d.Active())
	}

	if !d.Step(50 * time.Millisecond) {
		t.Error("Step() = false halfway, want true")
	}
	if got := w.root.Padding().Top; !approx(got, 5) {
		t.Errorf("padding top halfway = %v, want 5", got)
	}
	if d.Step(50 * time.Millisecond) {
		t.Error("Step() = true at the end, want false")
	}
	if got := w.root.Padding().Top; !approx(got, 10) {
		t.Errorf("padding top at end = %v, want 10", got)
	}

	// Toggling back starts from the current value.
	d.Toggle()
	d.Step(25 * time.Millisecond)
	if got := w.root.Padding().Top; !approx(got, 7.5) {
		t.Errorf("padding top on the way back = %v, want 7.5", got)
	}
}

func TestDriver_AttachRunsOnTick(t *testing.T) {
	w := newWorld(t)
	d, err := New(w.tree, []Definition{
		{Property: Gap, Target: w.id, From: 0, To: 20, Duration: 40 * time.Millisecond, Ease: EaseInOut},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	d.Attach(w.sched)
	d.SwitchState(true, true)

	frames := 0
	for d.Active() {
		if n := w.sched.Tick(10 * time.Millisecond); n != 1 {
			t.Fatalf("Tick() laid out %d roots, want 1", n)
		}
		frames++
	}

	if frames != 4 {
		t.Errorf("frames = %d, want 4", frames)
	}
	if got := w.root.Gap(); !approx(got, 20) {
		t.Errorf("Gap() = %v, want 20", got)
	}
}

func TestDriver_SkipsRemovedTargets(t *testing.T) {
	w := newWorld(t)
	d, err := New(w.tree, []Definition{
		{Property: MaxHeight, Target: w.leaf, From: 10, To: 50, Duration: time.Second},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	d.SwitchState(true, true)
	w.tree.Remove(w.leaf)

	if d.Step(time.Millisecond) {
		t.Error("Step() = true with only removed targets")
	}
}
