package flex

import (
	"math"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Columns distributes children round-robin into vertical columns. Each
// column stacks its children top to bottom.
//
// In fixed mode the column count is set and the column width derives from
// the available width. In flow mode the column width is set and the count
// derives from how many columns fit.
type Columns struct {
	base

	padding     Padding
	gap         float64
	columnCount int
	columnWidth float64

	count   int
	offsets []float64
}

// NewColumns creates a Columns node. Without WithColumnCount or
// WithColumnWidth it uses a single fixed column.
func NewColumns(opts ...Option) *Columns {
	cfg := newNodeConfig(0, 1, opts)
	c := &Columns{
		padding:     cfg.padding,
		gap:         cfg.gap,
		columnCount: cfg.columnCount,
		columnWidth: cfg.columnWidth,
	}
	if c.columnCount == 0 && c.columnWidth == 0 {
		c.columnCount = 1
	}
	c.base = newBase(c, cfg)
	return c
}

// PerformLayout lays out the columns as a root using its host size.
func (c *Columns) PerformLayout() {
	c.performLayout()
}

// Fixed reports whether the column count is fixed.
func (c *Columns) Fixed() bool {
	return c.columnCount > 0
}

// SetColumnCount switches to fixed mode with n columns.
func (c *Columns) SetColumnCount(n int) {
	c.columnCount = max(n, 1)
	c.columnWidth = 0
	c.SetLayoutDirty(false)
}

// SetColumnWidth switches to flow mode with columns of width w.
func (c *Columns) SetColumnWidth(w float64) {
	c.columnWidth = max(w, 1)
	c.columnCount = 0
	c.SetLayoutDirty(false)
}

// SetPadding changes the inner padding. Negative sides become zero.
func (c *Columns) SetPadding(p Padding) {
	c.padding = p.NonNegative()
	c.SetLayoutDirty(false)
}

// Padding returns the inner padding.
func (c *Columns) Padding() Padding {
	return c.padding
}

// SetGap changes the spacing between columns and between stacked children.
func (c *Columns) SetGap(gap float64) {
	c.gap = max(gap, 0)
	c.SetLayoutDirty(false)
}

// Gap returns the spacing between columns and stacked children.
func (c *Columns) Gap() float64 {
	return c.gap
}

// ColumnCount returns the number of columns used by the last layout.
func (c *Columns) ColumnCount() int {
	return c.count
}

func (c *Columns) reversed() bool {
	return false
}

func (c *Columns) measureHorizontal() {
	var content float64
	if c.Fixed() {
		// Sum of the widest child in each column.
		widths := make([]float64, min(c.columnCount, len(c.children)))
		for i, child := range c.children {
			if child.IsDirty() {
				child.MeasureHorizontal()
			}
			col := i % c.columnCount
			widths[col] = max(widths[col], preferredAxis(child, true)*scaleAxis(child, true))
		}
		for _, w := range widths {
			content += w
		}
		content += c.gap * float64(max(len(widths)-1, 0))
	} else {
		for i, child := range c.children {
			if child.IsDirty() {
				child.MeasureHorizontal()
			}
			content += preferredAxis(child, true) * scaleAxis(child, true)
			if i > 0 {
				content += c.gap
			}
		}
	}

	lo, hi := c.ownBounds(true, true)
	c.prefWidth = layout.Clamp(content+c.padding.Horizontal(), lo, hi)
}

func (c *Columns) layoutHorizontal(maxWidth, _ float64) {
	inner := maxWidth - c.padding.Horizontal()

	var width float64
	if c.Fixed() {
		c.count = c.columnCount
		width = (inner - c.gap*float64(c.count-1)) / float64(c.count)
	} else {
		width = c.columnWidth
		fit := math.Floor((inner + c.gap) / (width + c.gap))
		c.count = 1
		if fit > 1 {
			c.count = int(min(fit, float64(max(len(c.children), 1))))
		}
	}

	for i, child := range c.children {
		col := i % c.count
		s := child.Sizing()
		lo := s.MinWidth.Resolve(inner, 0)
		hi := s.MaxWidth.Resolve(inner, math.Inf(1))
		w := layout.Clamp(width, lo, hi)

		c.place(child, true, w, c.padding.Left+(width+c.gap)*float64(col))
		child.LayoutHorizontal(w, math.Inf(1))
	}
}

func (c *Columns) measureVertical() {
	heights := c.columnHeights()
	for i, child := range c.children {
		if child.IsDirty() {
			child.MeasureVertical()
		}
		col := i % len(heights)
		if i >= len(heights) {
			heights[col] += c.gap
		}
		heights[col] += preferredAxis(child, false) * scaleAxis(child, false)
	}

	var content float64
	for _, h := range heights {
		content = max(content, h)
	}

	lo, hi := c.ownBounds(false, true)
	c.prefHeight = layout.Clamp(content+c.padding.Vertical(), lo, hi)
}

func (c *Columns) layoutVertical(_, maxHeight float64) {
	inner := maxHeight - c.padding.Vertical()
	offsets := c.columnHeights()

	for i, child := range c.children {
		col := i % len(offsets)
		s := child.Sizing()
		lo := s.MinHeight.Resolve(inner, 0)
		hi := s.MaxHeight.Resolve(inner, math.Inf(1))
		h := layout.Clamp(preferredAxis(child, false), lo, hi)

		c.place(child, false, h, c.padding.Top+offsets[col])
		child.LayoutVertical(math.Inf(1), h)
		offsets[col] += h*scaleAxis(child, false) + c.gap
	}
}

// columnHeights returns a zeroed per-column accumulator sized to the
// column count of the last horizontal layout.
func (c *Columns) columnHeights() []float64 {
	n := max(c.count, 1)
	if cap(c.offsets) < n {
		c.offsets = make([]float64, n)
	}
	c.offsets = c.offsets[:n]
	clear(c.offsets)
	return c.offsets
}
