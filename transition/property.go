package transition

import "fmt"

// Property names an animatable node input.
type Property uint8

const (
	PaddingLeft Property = iota
	PaddingRight
	PaddingTop
	PaddingBottom
	Gap
	MinWidth
	MinHeight
	MaxWidth
	MaxHeight
	ScaleX
	ScaleY
)

var propertyNames = []string{
	"padding-left", "padding-right", "padding-top", "padding-bottom",
	"gap", "min-width", "min-height", "max-width", "max-height",
	"scale-x", "scale-y",
}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Property) MarshalText() ([]byte, error) {
	if int(p) >= len(propertyNames) {
		return nil, fmt.Errorf("unsupported property %d", uint8(p))
	}
	return []byte(propertyNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Property) UnmarshalText(text []byte) error {
	for i, name := range propertyNames {
		if name == string(text) {
			*p = Property(i)
			return nil
		}
	}
	return fmt.Errorf("unknown property %q", text)
}
