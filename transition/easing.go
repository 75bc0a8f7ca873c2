package transition

import "fmt"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing uint8

const (
	Linear Easing = iota
	EaseIn
	EaseOut
	EaseInOut
)

var easingNames = []string{"linear", "ease-in", "ease-out", "ease-in-out"}

// Apply returns eased progress for t, clamped to [0, 1]. The curves are
// quadratic.
func (e Easing) Apply(t float64) float64 {
	t = min(max(t, 0), 1)
	switch e {
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	default:
		return t
	}
}

func (e Easing) String() string {
	if int(e) < len(easingNames) {
		return easingNames[e]
	}
	return fmt.Sprintf("Easing(%d)", uint8(e))
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	if int(e) >= len(easingNames) {
		return nil, fmt.Errorf("unsupported easing %d", uint8(e))
	}
	return []byte(easingNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(text []byte) error {
	for i, name := range easingNames {
		if name == string(text) {
			*e = Easing(i)
			return nil
		}
	}
	return fmt.Errorf("unknown easing %q", text)
}
