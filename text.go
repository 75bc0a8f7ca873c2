package flex

import "math"

// MeasureFunc reports the size of foreign content given the space it may
// occupy. An unbounded axis is passed as +Inf.
type MeasureFunc func(maxWidth, maxHeight float64) (width, height float64)

// Text adapts externally measured content, typically wrapped text, into a
// layout leaf. Its preferred width is the unconstrained content width; its
// preferred height is measured against the width its parent committed.
type Text struct {
	base

	measureFn MeasureFunc
}

// NewText creates a text leaf. Leaves default to grow 1 and shrink 1.
func NewText(fn MeasureFunc, opts ...Option) *Text {
	cfg := newNodeConfig(1, 1, opts)
	t := &Text{measureFn: fn}
	t.base = newBase(t, cfg)
	return t
}

// SetMeasure replaces the measurement source, for example after the text
// content changed, and marks the leaf dirty.
func (t *Text) SetMeasure(fn MeasureFunc) {
	t.measureFn = fn
	t.SetLayoutDirty(false)
}

func (t *Text) measureHorizontal() {
	w, h := t.query(t.sizing.MaxWidth.PixelsOr(math.Inf(1)), t.sizing.MaxHeight.PixelsOr(math.Inf(1)))
	t.prefWidth = max(w, t.sizing.MinWidth.PixelsOr(0))
	t.prefHeight = max(h, t.sizing.MinHeight.PixelsOr(0))
}

func (t *Text) layoutHorizontal(_, _ float64) {}

func (t *Text) measureVertical() {
	_, h := t.query(t.committedWidth(), t.sizing.MaxHeight.PixelsOr(math.Inf(1)))
	t.prefHeight = max(h, t.sizing.MinHeight.PixelsOr(0))
}

func (t *Text) layoutVertical(_, _ float64) {}

func (t *Text) query(maxWidth, maxHeight float64) (float64, float64) {
	if t.measureFn == nil {
		return 0, 0
	}
	return t.measureFn(maxWidth, maxHeight)
}
