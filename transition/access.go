package transition

import (
	"errors"
	"fmt"

	"github.com/grindlemire/go-flex"
)

// ErrUnsupported is returned when a definition targets a node that has no
// such property.
var ErrUnsupported = errors.New("transition: property not supported by target")

type padded interface {
	Padding() flex.Padding
	SetPadding(flex.Padding)
}

type gapped interface {
	Gap() float64
	SetGap(float64)
}

type sized interface {
	Sizing() flex.Sizing
	UpdateSizing(func(*flex.Sizing))
}

// accessor reads and writes one property of one element.
type accessor struct {
	get func() float64
	set func(float64)
}

// resolve binds a property of the element id in tree.
func resolve(tree *flex.Tree, id flex.ElementID, p Property) (accessor, error) {
	if !tree.Contains(id) {
		return accessor{}, fmt.Errorf("element %d: not found", id)
	}
	node := tree.Node(id)

	switch p {
	case PaddingLeft, PaddingRight, PaddingTop, PaddingBottom:
		n, ok := node.(padded)
		if !ok {
			return accessor{}, fmt.Errorf("element %d %s: %w", id, p, ErrUnsupported)
		}
		field := func(pad *flex.Padding) *float64 {
			switch p {
			case PaddingLeft:
				return &pad.Left
			case PaddingRight:
				return &pad.Right
			case PaddingTop:
				return &pad.Top
			default:
				return &pad.Bottom
			}
		}
		return accessor{
			get: func() float64 {
				pad := n.Padding()
				return *field(&pad)
			},
			set: func(v float64) {
				pad := n.Padding()
				*field(&pad) = v
				n.SetPadding(pad)
			},
		}, nil

	case Gap:
		n, ok := node.(gapped)
		if !ok {
			return accessor{}, fmt.Errorf("element %d %s: %w", id, p, ErrUnsupported)
		}
		return accessor{get: n.Gap, set: n.SetGap}, nil

	case MinWidth, MinHeight, MaxWidth, MaxHeight:
		n, ok := node.(sized)
		if !ok {
			return accessor{}, fmt.Errorf("element %d %s: %w", id, p, ErrUnsupported)
		}
		field := func(s *flex.Sizing) *flex.Length {
			switch p {
			case MinWidth:
				return &s.MinWidth
			case MinHeight:
				return &s.MinHeight
			case MaxWidth:
				return &s.MaxWidth
			default:
				return &s.MaxHeight
			}
		}
		return accessor{
			get: func() float64 {
				s := n.Sizing()
				return field(&s).Value
			},
			set: func(v float64) {
				n.UpdateSizing(func(s *flex.Sizing) {
					l := field(s)
					l.HasValue = true
					l.Value = v
				})
			},
		}, nil

	case ScaleX, ScaleY:
		if node == nil {
			return accessor{}, fmt.Errorf("element %d %s: %w", id, p, ErrUnsupported)
		}
		t := tree.Transform(id)
		return accessor{
			get: func() float64 {
				x, y := t.Scale()
				if p == ScaleX {
					return x
				}
				return y
			},
			set: func(v float64) {
				x, y := t.Scale()
				if p == ScaleX {
					x = v
				} else {
					y = v
				}
				tree.SetScale(id, x, y)
			},
		}, nil
	}

	return accessor{}, fmt.Errorf("element %d %s: %w", id, p, ErrUnsupported)
}
