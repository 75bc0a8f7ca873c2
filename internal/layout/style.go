package layout

import "fmt"

// Direction specifies the main axis for laying out children and whether
// main-axis order is reversed.
type Direction uint8

const (
	Row           Direction = iota // Children laid out left-to-right
	RowReverse                     // Children laid out right-to-left
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

var directionNames = []string{"row", "row-reverse", "column", "column-reverse"}

// IsHorizontal reports whether width is the main axis.
func (d Direction) IsHorizontal() bool {
	return d == Row || d == RowReverse
}

// IsReversed reports whether children are iterated in reverse host order.
func (d Direction) IsReversed() bool {
	return d == RowReverse || d == ColumnReverse
}

func (d Direction) String() string { return enumString(directionNames, d) }

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return enumMarshal(directionNames, d) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	return enumUnmarshal(directionNames, "direction", text, d)
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child, half at edges
	JustifySpaceEvenly                 // Equal space between and at edges
)

var justifyNames = []string{"start", "end", "center", "space-between", "space-around", "space-evenly"}

func (j Justify) String() string { return enumString(justifyNames, j) }

// MarshalText implements encoding.TextMarshaler.
func (j Justify) MarshalText() ([]byte, error) { return enumMarshal(justifyNames, j) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *Justify) UnmarshalText(text []byte) error {
	return enumUnmarshal(justifyNames, "justify", text, j)
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

var alignNames = []string{"start", "end", "center", "stretch"}

func (a Align) String() string { return enumString(alignNames, a) }

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) { return enumMarshal(alignNames, a) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	return enumUnmarshal(alignNames, "align", text, a)
}

// AlignSelf optionally overrides the parent's AlignItems for one child.
type AlignSelf struct {
	HasValue bool
	Value    Align
}

// SelfAlign returns an AlignSelf override set to a.
func SelfAlign(a Align) AlignSelf {
	return AlignSelf{HasValue: true, Value: a}
}

// Or returns the override, or def when unset.
func (s AlignSelf) Or(def Align) Align {
	if s.HasValue {
		return s.Value
	}
	return def
}

// MarshalText implements encoding.TextMarshaler.
func (s AlignSelf) MarshalText() ([]byte, error) {
	if !s.HasValue {
		return []byte("auto"), nil
	}
	return s.Value.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler. "auto" or "" clears it.
func (s *AlignSelf) UnmarshalText(text []byte) error {
	if len(text) == 0 || string(text) == "auto" {
		*s = AlignSelf{}
		return nil
	}
	var a Align
	if err := a.UnmarshalText(text); err != nil {
		return err
	}
	*s = SelfAlign(a)
	return nil
}

// Padding is the spacing between a container's edges and its children.
type Padding struct {
	Left, Right, Top, Bottom float64
}

// PadAll creates Padding with the same value on all sides.
func PadAll(v float64) Padding {
	return Padding{Left: v, Right: v, Top: v, Bottom: v}
}

// PadSymmetric creates Padding with vertical (top/bottom) and horizontal (left/right) values.
func PadSymmetric(v, h float64) Padding {
	return Padding{Left: h, Right: h, Top: v, Bottom: v}
}

// NonNegative returns p with negative sides raised to zero.
func (p Padding) NonNegative() Padding {
	return Padding{Left: max(p.Left, 0), Right: max(p.Right, 0), Top: max(p.Top, 0), Bottom: max(p.Bottom, 0)}
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Axis returns the padding sum and leading edge for one physical axis.
func (p Padding) Axis(horizontal bool) (sum, lead float64) {
	if horizontal {
		return p.Horizontal(), p.Left
	}
	return p.Vertical(), p.Top
}

type enum interface {
	~uint8
}

func enumString[E enum](names []string, v E) string {
	if int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%T(%d)", v, uint8(v))
}

func enumMarshal[E enum](names []string, v E) ([]byte, error) {
	if int(v) >= len(names) {
		return nil, fmt.Errorf("unsupported %T value %d", v, uint8(v))
	}
	return []byte(names[v]), nil
}

func enumUnmarshal[E enum](names []string, kind string, text []byte, out *E) error {
	for i, name := range names {
		if name == string(text) {
			*out = E(i)
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q (want one of %v)", kind, text, names)
}
