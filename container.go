package flex

import (
	"math"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Container lays out its children along a single main axis.
//
// The main axis follows Direction. Children start at their basis (or
// preferred size) and then grow into leftover space or shrink out of
// overflow according to their weights, limited by their min and max.
// Justify places them along the main axis and AlignItems (or a child's
// AlignSelf) on the cross axis.
type Container struct {
	base

	direction  Direction
	justify    Justify
	alignItems Align
	padding    Padding
	gap        float64

	items []layout.Item
}

// NewContainer creates a container. Containers default to grow 0, shrink 1
// and AlignStretch.
func NewContainer(opts ...Option) *Container {
	cfg := newNodeConfig(0, 1, opts)
	c := &Container{
		direction:  cfg.direction,
		justify:    cfg.justify,
		alignItems: cfg.alignItems,
		padding:    cfg.padding,
		gap:        cfg.gap,
	}
	c.base = newBase(c, cfg)
	return c
}

// PerformLayout lays out the container as a root using its host size.
func (c *Container) PerformLayout() {
	c.performLayout()
}

// Direction returns the main axis.
func (c *Container) Direction() Direction {
	return c.direction
}

// SetDirection changes the main axis and marks the container dirty.
func (c *Container) SetDirection(d Direction) {
	c.direction = d
	c.SetLayoutDirty(false)
}

// Justify returns the main-axis distribution mode.
func (c *Container) Justify() Justify {
	return c.justify
}

// SetJustify changes the main-axis distribution mode.
func (c *Container) SetJustify(j Justify) {
	c.justify = j
	c.SetLayoutDirty(false)
}

// AlignItems returns the default cross-axis alignment.
func (c *Container) AlignItems() Align {
	return c.alignItems
}

// SetAlignItems changes the default cross-axis alignment.
func (c *Container) SetAlignItems(a Align) {
	c.alignItems = a
	c.SetLayoutDirty(false)
}

// Padding returns the inner padding.
func (c *Container) Padding() Padding {
	return c.padding
}

// SetPadding changes the inner padding. Negative sides become zero.
func (c *Container) SetPadding(p Padding) {
	c.padding = p.NonNegative()
	c.SetLayoutDirty(false)
}

// Gap returns the spacing between adjacent children.
func (c *Container) Gap() float64 {
	return c.gap
}

// SetGap changes the spacing between adjacent children. Negative gaps
// become zero.
func (c *Container) SetGap(gap float64) {
	c.gap = max(gap, 0)
	c.SetLayoutDirty(false)
}

func (c *Container) reversed() bool {
	return c.direction.IsReversed()
}

func (c *Container) measureHorizontal() {
	c.measure(true)
}

func (c *Container) layoutHorizontal(maxWidth, _ float64) {
	c.layout(true, maxWidth)
}

func (c *Container) measureVertical() {
	c.measure(false)
}

func (c *Container) layoutVertical(_, maxHeight float64) {
	c.layout(false, maxHeight)
}

func (c *Container) measure(horizontal bool) {
	if horizontal == c.direction.IsHorizontal() {
		c.measureMain(horizontal)
		return
	}
	c.measureCross(horizontal)
}

func (c *Container) layout(horizontal bool, avail float64) {
	if horizontal == c.direction.IsHorizontal() {
		c.layoutMain(horizontal, avail)
		return
	}
	c.layoutCross(horizontal, avail)
}

// measureMain sums scaled preferred sizes and gaps of the children.
func (c *Container) measureMain(horizontal bool) {
	padding, _ := c.padding.Axis(horizontal)

	var content float64
	for i, child := range c.children {
		if child.IsDirty() {
			measureAxis(child, horizontal)
		}
		content += preferredAxis(child, horizontal) * scaleAxis(child, horizontal)
		if i > 0 {
			content += c.gap
		}
	}

	lo, hi := c.ownBounds(horizontal, true)
	c.setPreferred(horizontal, c.rootOverride(horizontal, layout.Clamp(content+padding, lo, hi)))
}

// measureCross takes the largest scaled preferred size of the children.
func (c *Container) measureCross(horizontal bool) {
	padding, _ := c.padding.Axis(horizontal)

	var content float64
	for _, child := range c.children {
		if child.IsDirty() {
			measureAxis(child, horizontal)
		}
		content = max(content, preferredAxis(child, horizontal)*scaleAxis(child, horizontal))
	}

	lo, hi := c.ownBounds(horizontal, false)
	c.setPreferred(horizontal, c.rootOverride(horizontal, layout.Clamp(content+padding, lo, hi)))
}

// rootOverride substitutes the host size for an absolute root that does
// not auto-size on the axis.
func (c *Container) rootOverride(horizontal bool, pref float64) float64 {
	if c.absolute && !c.autoSize(horizontal) {
		return c.hostSize(horizontal)
	}
	return pref
}

// layoutMain resolves child sizes on the main axis and places them.
func (c *Container) layoutMain(horizontal bool, avail float64) {
	padding, lead := c.padding.Axis(horizontal)
	inner := avail - padding
	gapCount := max(len(c.children)-1, 0)
	gaps := c.gap * float64(gapCount)
	innerMinusGap := inner - gaps

	clear(c.items)
	c.items = c.items[:0]

	content := gaps
	for _, child := range c.children {
		s := child.Sizing()
		minLen, maxLen := s.axis(horizontal)
		hi := maxLen.Resolve(innerMinusGap, math.Inf(1))
		lo := min(minLen.Resolve(innerMinusGap, 0), hi)
		start := s.Basis.Resolve(innerMinusGap, preferredAxis(child, horizontal))

		item := layout.Item{
			Size:     layout.Clamp(start, lo, hi),
			Min:      lo,
			Max:      hi,
			Scale:    scaleAxis(child, horizontal),
			Grow:     s.Grow,
			Shrink:   s.Shrink,
			Flexible: lo < hi,
		}
		content += item.Scaled()
		c.items = append(c.items, item)
	}

	growth := max(inner-content, 0)
	shrink := max(content-inner, 0)
	c.log().Debug("flex: main axis", "id", c.id, "horizontal", horizontal,
		"inner", inner, "content", content, "growth", growth, "shrink", shrink)

	layout.Distribute(c.items, growth, shrink)

	used := gaps
	for i := range c.items {
		used += c.items[i].Scaled()
	}
	start, spacing := layout.PlaceMain(c.justify, c.direction.IsReversed(), inner, used, gapCount)

	cursor := lead + start
	for i, child := range c.children {
		item := &c.items[i]
		c.place(child, horizontal, item.Size, cursor)
		layoutAxis(child, horizontal, item.Size)
		cursor += item.Scaled() + c.gap + spacing
	}
}

// layoutCross sizes each child on the cross axis and aligns it.
func (c *Container) layoutCross(horizontal bool, avail float64) {
	padding, lead := c.padding.Axis(horizontal)
	inner := avail - padding

	for _, child := range c.children {
		scale := scaleAxis(child, horizontal)
		var scaledInner float64
		if scale > 0 {
			scaledInner = inner / scale
		}

		s := child.Sizing()
		align := s.AlignSelf.Or(c.alignItems)
		minLen, maxLen := s.axis(horizontal)
		lo := minLen.Resolve(scaledInner, 0)
		hi := maxLen.Resolve(scaledInner, math.Inf(1))

		size := preferredAxis(child, horizontal)
		if align == AlignStretch {
			size = scaledInner
		}
		size = layout.Clamp(size, lo, hi)

		c.place(child, horizontal, size, lead+layout.CrossOffset(align, inner, size*scale))
		layoutAxis(child, horizontal, size)
	}
}
