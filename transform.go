package flex

// Transform is the host-owned geometry of one element. Layout writes sizes
// and positions here; the host reads them for rendering.
//
// Positions are relative to the parent's top-left corner with Y growing
// downward. Children are pivoted at their own top-left corner.
type Transform struct {
	x, y          float64
	width, height float64
	scaleX        float64
	scaleY        float64

	onResize func()
}

// NewTransform returns a transform with the given size and unit scale.
func NewTransform(width, height float64) *Transform {
	return &Transform{width: width, height: height, scaleX: 1, scaleY: 1}
}

// Size returns the committed width and height.
func (t *Transform) Size() (width, height float64) {
	return t.width, t.height
}

// Position returns the committed position within the parent.
func (t *Transform) Position() (x, y float64) {
	return t.x, t.y
}

// Scale returns the local scale factors.
func (t *Transform) Scale() (x, y float64) {
	return t.scaleX, t.scaleY
}

// Rect returns position and size as a Rect in the parent's frame.
func (t *Transform) Rect() Rect {
	return NewRect(t.x, t.y, t.width, t.height)
}

// SetWidth sets the width and notifies the host on change.
func (t *Transform) SetWidth(w float64) {
	if t.width == w {
		return
	}
	t.width = w
	t.resized()
}

// SetHeight sets the height and notifies the host on change.
func (t *Transform) SetHeight(h float64) {
	if t.height == h {
		return
	}
	t.height = h
	t.resized()
}

// SetSize sets both dimensions, notifying the host at most once.
func (t *Transform) SetSize(w, h float64) {
	if t.width == w && t.height == h {
		return
	}
	t.width, t.height = w, h
	t.resized()
}

// OnResize registers the host callback fired when the size changes.
// Hosts use it to mark the owning node dirty.
func (t *Transform) OnResize(fn func()) {
	t.onResize = fn
}

// SetX sets the horizontal position.
func (t *Transform) SetX(x float64) {
	t.x = x
}

// SetY sets the vertical position.
func (t *Transform) SetY(y float64) {
	t.y = y
}

// SetScale sets the local scale factors. Scale changes do not notify;
// callers that animate scale mark the node dirty themselves.
func (t *Transform) SetScale(x, y float64) {
	t.scaleX, t.scaleY = x, y
}

// setAxis writes one axis of size and position.
func (t *Transform) setAxis(horizontal bool, size, pos float64) {
	if horizontal {
		t.SetWidth(size)
		t.SetX(pos)
		return
	}
	t.SetHeight(size)
	t.SetY(pos)
}

func (t *Transform) resized() {
	if t.onResize != nil {
		t.onResize()
	}
}
