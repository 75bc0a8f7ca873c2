package flex

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
)

// Tree is an in-memory host: an arena of elements, each with a transform
// and optionally a layout node. IDs are never reused, so a stale ID never
// resolves to a different element.
//
// Tree fires the lifecycle hooks the layout core expects: creation,
// removal, reparenting, sibling reorder, activation and size changes all
// mark the affected nodes dirty.
type Tree struct {
	elements []*element
	roots    []ElementID
	names    map[string]ElementID

	sched  *Scheduler
	logger *log.Logger
}

type element struct {
	name      string
	parent    ElementID
	children  []ElementID
	active    bool
	transform *Transform
	node      Node
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithTreeLogger sets the logger handed to nodes in the tree.
func WithTreeLogger(l *log.Logger) TreeOption {
	return func(t *Tree) {
		t.logger = l
	}
}

// NewTree creates an empty tree whose layout roots are queued on s.
// s may be nil, in which case roots must be laid out with PerformLayout.
func NewTree(s *Scheduler, opts ...TreeOption) *Tree {
	t := &Tree{
		names: make(map[string]ElementID),
		sched: s,
	}
	if s != nil {
		t.logger = s.logger
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = log.Default()
	}
	return t
}

// Scheduler returns the scheduler roots are queued on.
func (t *Tree) Scheduler() *Scheduler {
	return t.sched
}

// Add appends a new element under parent (NoElement for a top-level
// element) and attaches n to it. n may be nil for elements that take no
// part in layout.
func (t *Tree) Add(parent ElementID, n Node) ElementID {
	if parent != NoElement && !t.Contains(parent) {
		panic(fmt.Sprintf("flex: add under unknown element %d", parent))
	}

	id := ElementID(len(t.elements))
	e := &element{
		parent:    parent,
		active:    true,
		transform: NewTransform(0, 0),
		node:      n,
	}
	e.transform.OnResize(func() { t.resized(id) })
	t.elements = append(t.elements, e)
	t.attach(id, parent, -1)

	if b, ok := n.(binder); ok {
		b.bind(binding{host: t, id: id, sched: t.sched, logger: t.logger})
	}
	t.dirtyFrom(id, true)
	return id
}

// AddNamed is Add followed by SetName.
func (t *Tree) AddNamed(parent ElementID, name string, n Node) ElementID {
	id := t.Add(parent, n)
	t.SetName(id, name)
	return id
}

// SetName labels an element so it can be found with Find.
func (t *Tree) SetName(id ElementID, name string) {
	e := t.get(id)
	if e == nil {
		return
	}
	if e.name != "" {
		delete(t.names, e.name)
	}
	e.name = name
	if name != "" {
		t.names[name] = id
	}
}

// Name returns the element's label.
func (t *Tree) Name(id ElementID) string {
	if e := t.get(id); e != nil {
		return e.name
	}
	return ""
}

// Find returns the element with the given label.
func (t *Tree) Find(name string) (ElementID, bool) {
	id, ok := t.names[name]
	return id, ok
}

// Remove deletes an element and its subtree. Queued layout roots inside
// the subtree become stale and are skipped by the next flush.
func (t *Tree) Remove(id ElementID) {
	e := t.get(id)
	if e == nil {
		return
	}

	// Dirty while still attached so the old parent chain is marked.
	t.dirtyFrom(id, true)

	parent := e.parent
	t.detach(id)
	t.drop(id)

	if parent != NoElement {
		t.dirtyFrom(parent, false)
	}
}

func (t *Tree) drop(id ElementID) {
	e := t.elements[id]
	for _, child := range e.children {
		t.drop(child)
	}
	if e.name != "" {
		delete(t.names, e.name)
	}
	e.transform.OnResize(nil)
	t.elements[id] = nil
}

// Move reparents an element to index among newParent's children. A
// negative index appends.
func (t *Tree) Move(id, newParent ElementID, index int) {
	e := t.get(id)
	if e == nil {
		return
	}
	if newParent != NoElement && !t.Contains(newParent) {
		panic(fmt.Sprintf("flex: move under unknown element %d", newParent))
	}
	for p := newParent; p != NoElement; p = t.elements[p].parent {
		if p == id {
			panic(fmt.Sprintf("flex: move of %d under its own descendant %d", id, newParent))
		}
	}

	oldParent := e.parent
	t.dirtyFrom(id, false)
	t.detach(id)
	if oldParent != NoElement {
		t.dirtyFrom(oldParent, false)
	}

	t.attach(id, newParent, index)
	t.dirtyFrom(id, false)
}

// SetSiblingIndex moves an element to index among its siblings.
func (t *Tree) SetSiblingIndex(id ElementID, index int) {
	e := t.get(id)
	if e == nil {
		return
	}
	siblings := t.siblings(e.parent)
	from := slices.Index(*siblings, id)
	index = min(max(index, 0), len(*siblings)-1)
	if from == index {
		return
	}
	*siblings = slices.Delete(*siblings, from, from+1)
	*siblings = slices.Insert(*siblings, index, id)

	if e.parent != NoElement {
		t.dirtyFrom(e.parent, false)
	} else {
		t.dirtyFrom(id, false)
	}
}

// SetActive enables or disables an element and its subtree. Activation
// changes always mark layout dirty.
func (t *Tree) SetActive(id ElementID, active bool) {
	e := t.get(id)
	if e == nil || e.active == active {
		return
	}
	if !active {
		t.dirtyFrom(id, true)
		e.active = false
		return
	}
	e.active = true
	// Mutations made while hidden were not recorded.
	t.markSubtree(id)
	t.dirtyFrom(id, true)
}

// markSubtree flags every node at or below id dirty without queueing.
func (t *Tree) markSubtree(id ElementID) {
	e := t.get(id)
	if e == nil {
		return
	}
	if m, ok := e.node.(staleMarker); ok {
		m.markStale()
	}
	for _, child := range e.children {
		t.markSubtree(child)
	}
}

// SetSize changes the element's host rect, as when a window or parent
// outside layout resizes it.
func (t *Tree) SetSize(id ElementID, width, height float64) {
	if e := t.get(id); e != nil {
		e.transform.SetSize(width, height)
	}
}

// SetScale changes the element's scale and marks layout dirty.
func (t *Tree) SetScale(id ElementID, x, y float64) {
	e := t.get(id)
	if e == nil {
		return
	}
	e.transform.SetScale(x, y)
	t.dirtyFrom(id, false)
}

// Layout lays out the root at id immediately through the scheduler.
func (t *Tree) Layout(id ElementID) error {
	r, ok := t.Node(id).(Root)
	if !ok {
		return fmt.Errorf("element %d: %w", id, ErrNotRoot)
	}
	if t.sched == nil {
		return fmt.Errorf("element %d: %w", id, ErrNoScheduler)
	}
	t.sched.LayoutImmediate(r)
	return nil
}

// Roots returns the top-level elements in order.
func (t *Tree) Roots() []ElementID {
	return t.roots
}

// Len returns the number of live elements.
func (t *Tree) Len() int {
	n := 0
	for _, e := range t.elements {
		if e != nil {
			n++
		}
	}
	return n
}

// Contains reports whether id refers to a live element.
func (t *Tree) Contains(id ElementID) bool {
	return t.get(id) != nil
}

// Parent returns the parent of id. Top-level and unknown elements have
// no parent.
func (t *Tree) Parent(id ElementID) (ElementID, bool) {
	e := t.get(id)
	if e == nil || e.parent == NoElement {
		return NoElement, false
	}
	return e.parent, true
}

// Children returns the children of id in order. The slice is owned by the
// tree and must not be modified.
func (t *Tree) Children(id ElementID) []ElementID {
	if e := t.get(id); e != nil {
		return e.children
	}
	return nil
}

// Node returns the layout node attached to id, or nil.
func (t *Tree) Node(id ElementID) Node {
	if e := t.get(id); e != nil {
		return e.node
	}
	return nil
}

// Active reports whether id and all of its ancestors are active.
func (t *Tree) Active(id ElementID) bool {
	for id != NoElement {
		e := t.get(id)
		if e == nil || !e.active {
			return false
		}
		id = e.parent
	}
	return true
}

// Transform returns the geometry sink of id, or nil for unknown elements.
func (t *Tree) Transform(id ElementID) *Transform {
	if e := t.get(id); e != nil {
		return e.transform
	}
	return nil
}

func (t *Tree) get(id ElementID) *element {
	if id < 0 || int(id) >= len(t.elements) {
		return nil
	}
	return t.elements[id]
}

func (t *Tree) siblings(parent ElementID) *[]ElementID {
	if parent == NoElement {
		return &t.roots
	}
	return &t.elements[parent].children
}

func (t *Tree) attach(id, parent ElementID, index int) {
	t.elements[id].parent = parent
	siblings := t.siblings(parent)
	if index < 0 || index > len(*siblings) {
		index = len(*siblings)
	}
	*siblings = slices.Insert(*siblings, index, id)
}

func (t *Tree) detach(id ElementID) {
	e := t.elements[id]
	siblings := t.siblings(e.parent)
	if i := slices.Index(*siblings, id); i >= 0 {
		*siblings = slices.Delete(*siblings, i, i+1)
	}
	e.parent = NoElement
}

// dirtyFrom marks the nearest node at or above id.
func (t *Tree) dirtyFrom(id ElementID, force bool) {
	for id != NoElement {
		e := t.get(id)
		if e == nil {
			return
		}
		if e.node != nil {
			e.node.SetLayoutDirty(force)
			return
		}
		id = e.parent
	}
}

func (t *Tree) resized(id ElementID) {
	if n := t.Node(id); n != nil {
		n.SetLayoutDirty(false)
	}
}
