package flex

import (
	"io"
	"math"
	"testing"

	"github.com/charmbracelet/log"
)

func newWorld(t *testing.T) (*Scheduler, *Tree) {
	t.Helper()
	s, err := NewScheduler(WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	return s, NewTree(s)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func rectsEqual(a, b Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

func checkRect(t *testing.T, tree *Tree, id ElementID, want Rect) {
	t.Helper()
	if got := tree.Transform(id).Rect(); !rectsEqual(got, want) {
		t.Errorf("rect of %d = %+v, want %+v", id, got, want)
	}
}

// fixedText returns a measure func for content of a fixed size.
func fixedText(w, h float64) MeasureFunc {
	return func(_, _ float64) (float64, float64) {
		return w, h
	}
}

// wrappingText returns a measure func for content that is width wide on a
// single line and wraps into lines of lineHeight.
func wrappingText(width, lineHeight float64) MeasureFunc {
	return func(maxWidth, _ float64) (float64, float64) {
		w := min(width, maxWidth)
		if w <= 0 {
			return 0, 0
		}
		return w, math.Ceil(width/w) * lineHeight
	}
}
