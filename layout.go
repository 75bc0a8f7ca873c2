// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Length is an optional pixel or percent size constraint.
type Length = layout.Length

// Unit specifies how a Length is interpreted.
type Unit = layout.Unit

const (
	Pixels  = layout.Pixels
	Percent = layout.Percent
)

// Direction specifies the main axis and its order.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignSelf optionally overrides a parent's AlignItems.
type AlignSelf = layout.AlignSelf

// Padding is the spacing between a container's edges and its children.
type Padding = layout.Padding

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Px creates a pixel Length.
func Px(v float64) Length {
	return layout.Px(v)
}

// Pct creates a percent Length on a 0-100 scale.
func Pct(v float64) Length {
	return layout.Pct(v)
}

// ParseLength parses "auto", "12", "12px" or "50%".
func ParseLength(s string) (Length, error) {
	return layout.ParseLength(s)
}

// SelfAlign creates an AlignSelf override.
func SelfAlign(a Align) AlignSelf {
	return layout.SelfAlign(a)
}

// PadAll creates Padding with the same value on all sides.
func PadAll(v float64) Padding {
	return layout.PadAll(v)
}

// PadSymmetric creates Padding with vertical (top/bottom) and horizontal (left/right) values.
func PadSymmetric(v, h float64) Padding {
	return layout.PadSymmetric(v, h)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}
