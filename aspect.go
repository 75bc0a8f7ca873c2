package flex

// AspectRatio is a leaf whose height follows its committed width.
type AspectRatio struct {
	base

	ratioX, ratioY float64
}

// NewAspectRatio creates an aspect-ratio leaf with the given width:height
// ratio. Leaves default to grow 1 and shrink 1.
func NewAspectRatio(x, y float64, opts ...Option) *AspectRatio {
	cfg := newNodeConfig(1, 1, append([]Option{WithAspectRatio(x, y)}, opts...))
	a := &AspectRatio{ratioX: cfg.aspectX, ratioY: cfg.aspectY}
	a.base = newBase(a, cfg)
	return a
}

// SetAspectRatio changes the ratio and marks the leaf dirty.
func (a *AspectRatio) SetAspectRatio(x, y float64) {
	a.ratioX, a.ratioY = x, y
	a.SetLayoutDirty(false)
}

// Ratio returns the effective width:height ratio. Ratios whose x is not
// positive or whose y is not above 1 fall back to 1:1.
func (a *AspectRatio) Ratio() float64 {
	if a.ratioX > 0 && a.ratioY > 1 {
		return a.ratioX / a.ratioY
	}
	return 1
}

func (a *AspectRatio) measureHorizontal() {
	a.prefWidth = a.sizing.MinWidth.PixelsOr(1)
	a.prefHeight = a.sizing.MinHeight.PixelsOr(1)
}

func (a *AspectRatio) layoutHorizontal(_, _ float64) {}

func (a *AspectRatio) measureVertical() {
	a.prefHeight = a.committedWidth() / a.Ratio()
}

func (a *AspectRatio) layoutVertical(_, _ float64) {}
