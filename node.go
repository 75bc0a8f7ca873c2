package flex

// ElementID addresses an element in a host tree.
type ElementID int

// NoElement is the parent of top-level elements.
const NoElement ElementID = -1

// Sizing holds the flex-item inputs every node exposes to its parent.
type Sizing struct {
	Basis     Length
	Grow      int
	Shrink    int
	MinWidth  Length
	MaxWidth  Length
	MinHeight Length
	MaxHeight Length
	AlignSelf AlignSelf
}

// axis returns the min and max constraints for one physical axis.
func (s Sizing) axis(horizontal bool) (minLen, maxLen Length) {
	if horizontal {
		return s.MinWidth, s.MaxWidth
	}
	return s.MinHeight, s.MaxHeight
}

// Node is the capability set every layout participant implements.
//
// The four phase methods must be called in order for a full pass:
// MeasureHorizontal, LayoutHorizontal, MeasureVertical, LayoutVertical.
// LayoutVertical clears the dirty flag.
type Node interface {
	// ID returns the element this node is attached to.
	ID() ElementID

	// Sizing returns the node's flex-item inputs.
	Sizing() Sizing

	IsActive() bool
	IsAbsolute() bool
	IsDirty() bool

	// InLayout reports whether the node is writing layout results. While it
	// is, dirtying the node is ignored and dirtying its children stays local.
	InLayout() bool

	// SetLayoutDirty marks the node stale and propagates to its layout root.
	// force bypasses the active and in-layout guards.
	SetLayoutDirty(force bool)

	MeasureHorizontal()
	LayoutHorizontal(maxWidth, maxHeight float64)
	MeasureVertical()
	LayoutVertical(maxWidth, maxHeight float64)

	// Scale returns the node's local scale factors.
	Scale() (x, y float64)

	// PreferredSize returns the size computed by the last Measure calls.
	PreferredSize() (width, height float64)
}

// Root is a node that can act as an independent layout root.
type Root interface {
	Node

	// PerformLayout runs all four phases using the host-provided bounds.
	PerformLayout()

	// Attached reports whether the node is still present in its host.
	Attached() bool
}

// Host is the read interface the layout core needs over the host scene graph.
type Host interface {
	Contains(id ElementID) bool
	Parent(id ElementID) (ElementID, bool)
	Children(id ElementID) []ElementID
	// Node returns the layout node attached to id, or nil.
	Node(id ElementID) Node
	// Active reports whether the element and all its ancestors are active.
	Active(id ElementID) bool
	// Transform returns the host transform for id, or nil when detached.
	Transform(id ElementID) *Transform
}

// dirtyMark is the effect of a SetLayoutDirty call.
type dirtyMark uint8

const (
	markNone  dirtyMark = iota // Ignore the call
	markSelf                   // Mark this node only
	markChain                  // Mark and propagate to the layout root
)

// dirtyDecision decides what a SetLayoutDirty call does.
//
// A node writing its own layout ignores dirtying. A node whose parent is
// writing layout into it is marked so the running pass re-measures it, but
// the mark does not travel up or enqueue anything. force bypasses both
// guards and the active check.
func dirtyDecision(force, selfLaying, parentLaying, active bool) dirtyMark {
	if force {
		return markChain
	}
	if selfLaying || !active {
		return markNone
	}
	if parentLaying {
		return markSelf
	}
	return markChain
}
