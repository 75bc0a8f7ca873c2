package flex

import (
	"math"

	"github.com/charmbracelet/log"
)

// binding is the back reference a node holds to its host.
type binding struct {
	host   Host
	id     ElementID
	sched  *Scheduler
	logger *log.Logger
}

// binder is implemented by nodes that need a back reference to their host.
type binder interface {
	bind(binding)
}

// staleMarker is implemented by nodes that can be flagged dirty without
// propagating or queueing.
type staleMarker interface {
	markStale()
}

// phases are the per-kind hooks behind the four public layout phases.
type phases interface {
	Node
	measureHorizontal()
	layoutHorizontal(maxWidth, maxHeight float64)
	measureVertical()
	layoutVertical(maxWidth, maxHeight float64)
}

// childLister is implemented by node kinds that lay out children.
type childLister interface {
	reversed() bool
}

// base holds the state and behavior shared by every node kind: the host
// back reference, flex-item inputs, dirty tracking and preferred size.
type base struct {
	binding

	impl phases

	sizing    Sizing
	absolute  bool
	autoSizeX bool
	autoSizeY bool

	dirty  bool
	laying bool

	prefWidth, prefHeight float64

	// Refreshed on every MeasureHorizontal, never kept across host changes.
	children []Node

	warnedDetached bool
}

func newBase(impl phases, cfg nodeConfig) base {
	return base{
		binding:   binding{id: NoElement},
		impl:      impl,
		sizing:    cfg.sizing,
		absolute:  cfg.absolute,
		autoSizeX: cfg.autoSizeX,
		autoSizeY: cfg.autoSizeY,
		dirty:     true,
	}
}

func (b *base) bind(bd binding) {
	b.binding = bd
	b.warnedDetached = false
}

// ID returns the element this node is attached to.
func (b *base) ID() ElementID {
	return b.id
}

// Sizing returns the node's flex-item inputs.
func (b *base) Sizing() Sizing {
	return b.sizing
}

// SetSizing replaces the flex-item inputs and marks the node dirty.
// Negative grow and shrink weights are clamped to zero.
func (b *base) SetSizing(s Sizing) {
	b.sizing = sanitizeSizing(s)
	b.impl.SetLayoutDirty(false)
}

// UpdateSizing edits the flex-item inputs in place and marks the node dirty.
func (b *base) UpdateSizing(fn func(*Sizing)) {
	s := b.sizing
	fn(&s)
	b.SetSizing(s)
}

// SetAbsolute changes whether the node is an independent layout root.
func (b *base) SetAbsolute(absolute bool) {
	if b.absolute == absolute {
		return
	}
	// The old parent loses a participant, the node gains or loses rootness.
	b.impl.SetLayoutDirty(true)
	b.absolute = absolute
	b.impl.SetLayoutDirty(true)
}

// SetAutoSize controls whether an absolute root resizes to fit its content.
func (b *base) SetAutoSize(x, y bool) {
	b.autoSizeX, b.autoSizeY = x, y
	b.impl.SetLayoutDirty(false)
}

// AutoSize reports the auto-size flags.
func (b *base) AutoSize() (x, y bool) {
	return b.autoSizeX, b.autoSizeY
}

// IsActive reports whether the host element and its ancestors are active.
func (b *base) IsActive() bool {
	return b.host != nil && b.host.Active(b.id)
}

// IsAbsolute reports whether the node is an independent layout root.
func (b *base) IsAbsolute() bool {
	return b.absolute
}

// IsDirty reports whether the node's geometry may be stale.
func (b *base) IsDirty() bool {
	return b.dirty
}

// InLayout reports whether the node is writing layout results.
func (b *base) InLayout() bool {
	return b.laying
}

// Attached reports whether the node is still present in its host.
func (b *base) Attached() bool {
	return b.host != nil && b.host.Contains(b.id) && b.host.Node(b.id) == b.impl
}

// SetLayoutDirty marks the node stale. Unless the node is an absolute root
// or has no node parent, the mark propagates to the parent; the innermost
// root is queued on the scheduler.
func (b *base) SetLayoutDirty(force bool) {
	parent := b.parentNode()
	parentLaying := parent != nil && parent.InLayout()

	switch dirtyDecision(force, b.laying, parentLaying, b.IsActive()) {
	case markNone:
		return
	case markSelf:
		b.dirty = true
		return
	}

	b.dirty = true
	if parent != nil && !b.absolute {
		parent.SetLayoutDirty(force)
		return
	}
	b.enqueue()
}

func (b *base) markStale() {
	b.dirty = true
}

func (b *base) enqueue() {
	root, ok := b.impl.(Root)
	if !ok {
		return
	}
	if b.sched == nil {
		b.log().Warn("flex: cannot queue layout root", "id", b.id, "err", ErrNoScheduler)
		return
	}
	b.sched.Enqueue(root)
}

// parentNode returns the node on the host parent, or nil.
func (b *base) parentNode() Node {
	if b.host == nil {
		return nil
	}
	pid, ok := b.host.Parent(b.id)
	if !ok {
		return nil
	}
	return b.host.Node(pid)
}

// isLayoutRoot reports whether the node receives host-provided bounds.
func (b *base) isLayoutRoot() bool {
	return b.absolute || b.parentNode() == nil
}

// MeasureHorizontal refreshes the child list and computes the preferred width.
func (b *base) MeasureHorizontal() {
	if lister, ok := b.impl.(childLister); ok {
		b.refreshChildren(lister.reversed())
	}
	b.impl.measureHorizontal()
}

// LayoutHorizontal sizes and positions children on the horizontal axis.
func (b *base) LayoutHorizontal(maxWidth, maxHeight float64) {
	b.laying = true
	defer func() { b.laying = false }()

	b.impl.layoutHorizontal(maxWidth, maxHeight)
}

// MeasureVertical computes the preferred height against committed widths.
func (b *base) MeasureVertical() {
	b.impl.measureVertical()
}

// LayoutVertical sizes and positions children on the vertical axis and
// clears the dirty flag.
func (b *base) LayoutVertical(maxWidth, maxHeight float64) {
	b.laying = true
	defer func() { b.laying = false }()

	b.impl.layoutVertical(maxWidth, maxHeight)
	b.dirty = false
}

// Scale returns the host transform's scale, or 1 when detached.
func (b *base) Scale() (x, y float64) {
	if t := b.hostTransform(); t != nil {
		return t.Scale()
	}
	return 1, 1
}

// PreferredSize returns the size computed by the last Measure calls.
// Detached nodes report zero.
func (b *base) PreferredSize() (width, height float64) {
	if b.hostTransform() == nil {
		return 0, 0
	}
	return b.prefWidth, b.prefHeight
}

// performLayout runs the four phases against the host-provided bounds and,
// for auto-sized axes, writes the preferred size back to the host.
func (b *base) performLayout() {
	t := b.transform()
	var width, height float64
	if t != nil {
		width, height = t.Size()
	}

	bounds := func() (float64, float64) {
		w, h := width, height
		if b.autoSizeX {
			w = b.prefWidth
		}
		if b.autoSizeY {
			h = b.prefHeight
		}
		return w, h
	}

	b.impl.MeasureHorizontal()
	b.impl.LayoutHorizontal(bounds())
	b.impl.MeasureVertical()
	b.impl.LayoutVertical(bounds())

	if t == nil || (!b.autoSizeX && !b.autoSizeY) {
		return
	}

	b.laying = true
	defer func() { b.laying = false }()

	if b.autoSizeX {
		t.SetWidth(b.prefWidth)
	}
	if b.autoSizeY {
		t.SetHeight(b.prefHeight)
	}
}

func (b *base) refreshChildren(reversed bool) {
	clear(b.children)
	b.children = b.children[:0]
	if b.host == nil {
		return
	}
	for child := range LayoutChildren(b.host, b.id, reversed) {
		b.children = append(b.children, child)
	}
}

// hostTransform returns the transform without logging.
func (b *base) hostTransform() *Transform {
	if b.host == nil {
		return nil
	}
	return b.host.Transform(b.id)
}

// transform returns the host transform, warning once while it is missing.
func (b *base) transform() *Transform {
	t := b.hostTransform()
	if t == nil {
		if !b.warnedDetached {
			b.log().Warn("flex: node has no host transform", "id", b.id)
			b.warnedDetached = true
		}
		return nil
	}
	b.warnedDetached = false
	return t
}

// committedWidth returns the width the parent wrote during horizontal layout.
func (b *base) committedWidth() float64 {
	if t := b.transform(); t != nil {
		w, _ := t.Size()
		return w
	}
	return 0
}

// hostSize returns the host-provided size on one axis.
func (b *base) hostSize(horizontal bool) float64 {
	t := b.transform()
	if t == nil {
		return 0
	}
	w, h := t.Size()
	if horizontal {
		return w
	}
	return h
}

func (b *base) autoSize(horizontal bool) bool {
	if horizontal {
		return b.autoSizeX
	}
	return b.autoSizeY
}

func (b *base) setPreferred(horizontal bool, v float64) {
	if horizontal {
		b.prefWidth = v
		return
	}
	b.prefHeight = v
}

// ownBounds returns the pixel-only clamp range for this node's preferred
// size on one axis. Basis raises the lower bound when withBasis is set.
func (b *base) ownBounds(horizontal, withBasis bool) (lo, hi float64) {
	minLen, maxLen := b.sizing.axis(horizontal)
	lo = minLen.PixelsOr(0)
	if withBasis {
		lo = max(lo, b.sizing.Basis.PixelsOr(0))
	}
	return lo, maxLen.PixelsOr(math.Inf(1))
}

// place writes a child's size and position on one axis into its transform.
func (b *base) place(child Node, horizontal bool, size, pos float64) {
	t := b.host.Transform(child.ID())
	if t == nil {
		b.log().Warn("flex: child has no host transform", "parent", b.id, "child", child.ID())
		return
	}
	t.setAxis(horizontal, size, pos)
}

func (b *base) log() *log.Logger {
	if b.logger != nil {
		return b.logger
	}
	return log.Default()
}

// measureAxis measures a child on one physical axis.
func measureAxis(n Node, horizontal bool) {
	if horizontal {
		n.MeasureHorizontal()
		return
	}
	n.MeasureVertical()
}

// layoutAxis lays out a child on one physical axis with the given size and
// an unconstrained other axis.
func layoutAxis(n Node, horizontal bool, size float64) {
	if horizontal {
		n.LayoutHorizontal(size, math.Inf(1))
		return
	}
	n.LayoutVertical(math.Inf(1), size)
}

func preferredAxis(n Node, horizontal bool) float64 {
	w, h := n.PreferredSize()
	if horizontal {
		return w
	}
	return h
}

func scaleAxis(n Node, horizontal bool) float64 {
	x, y := n.Scale()
	if horizontal {
		return x
	}
	return y
}

func sanitizeSizing(s Sizing) Sizing {
	s.Grow = max(s.Grow, 0)
	s.Shrink = max(s.Shrink, 0)
	return s
}
