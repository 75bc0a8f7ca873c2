package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit specifies how a Length is interpreted.
type Unit uint8

const (
	Pixels  Unit = iota // Literal size
	Percent             // Percentage of the containing axis
)

// Length is an optional size constraint. The zero value is unset.
type Length struct {
	HasValue bool
	Value    float64
	Unit     Unit
}

// Px returns a pixel Length.
func Px(v float64) Length {
	return Length{HasValue: true, Value: v, Unit: Pixels}
}

// Pct returns a percent Length on a 0-100 scale (50 = 50%).
func Pct(v float64) Length {
	return Length{HasValue: true, Value: v, Unit: Percent}
}

// Unset returns a Length with no value.
func Unset() Length {
	return Length{}
}

// Resolve computes the concrete size of the length.
// Unset lengths return def. Percent lengths scale fill.
// NaN or negative fill values propagate unchanged.
func (l Length) Resolve(fill, def float64) float64 {
	if !l.HasValue {
		return def
	}
	if l.Unit == Percent {
		return l.Value / 100 * fill
	}
	return l.Value
}

// PixelsOr returns the value of a set pixel length, or def otherwise.
// Measurement uses this because percent lengths can only be resolved once
// the parent has committed a size.
func (l Length) PixelsOr(def float64) float64 {
	if l.HasValue && l.Unit == Pixels {
		return l.Value
	}
	return def
}

// String formats the length as "auto", "12px" or "50%".
func (l Length) String() string {
	if !l.HasValue {
		return "auto"
	}
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == Percent {
		return v + "%"
	}
	return v + "px"
}

// ParseLength parses "auto", "", "12", "12px" or "50%".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Length{}, nil
	}

	unit := Pixels
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		unit = Percent
		num = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, fmt.Errorf("invalid length %q: must be finite", s)
	}
	return Length{HasValue: true, Value: v, Unit: unit}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Length) UnmarshalText(text []byte) error {
	parsed, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Clamp restricts v to [minVal, maxVal]. When minVal exceeds maxVal the
// minimum is pulled down to the maximum, so the result never exceeds maxVal.
func Clamp(v, minVal, maxVal float64) float64 {
	if minVal > maxVal {
		minVal = maxVal
	}
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
