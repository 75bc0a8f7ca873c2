package layout

import (
	"math"
	"testing"
)

func TestLength_Resolve(t *testing.T) {
	type tc struct {
		length   Length
		fill     float64
		def      float64
		expected float64
	}

	tests := map[string]tc{
		"percent scales fill": {
			length:   Pct(50),
			fill:     200,
			expected: 100,
		},
		"pixels ignore fill": {
			length:   Px(20),
			fill:     999,
			expected: 20,
		},
		"unset returns min default": {
			length:   Unset(),
			fill:     200,
			def:      0,
			expected: 0,
		},
		"unset returns max default": {
			length:   Length{},
			fill:     200,
			def:      math.Inf(1),
			expected: math.Inf(1),
		},
		"negative fill propagates": {
			length:   Pct(50),
			fill:     -40,
			expected: -20,
		},
		"zero percent": {
			length:   Pct(0),
			fill:     300,
			def:      7,
			expected: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.length.Resolve(tt.fill, tt.def); got != tt.expected {
				t.Errorf("Resolve(%v, %v) = %v, want %v", tt.fill, tt.def, got, tt.expected)
			}
		})
	}
}

func TestLength_Resolve_NaNFill(t *testing.T) {
	if got := Pct(10).Resolve(math.NaN(), 0); !math.IsNaN(got) {
		t.Errorf("Resolve(NaN) = %v, want NaN", got)
	}
}

func TestLength_PixelsOr(t *testing.T) {
	type tc struct {
		length   Length
		expected float64
	}

	tests := map[string]tc{
		"pixels":  {length: Px(12), expected: 12},
		"percent": {length: Pct(12), expected: -1},
		"unset":   {length: Unset(), expected: -1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.length.PixelsOr(-1); got != tt.expected {
				t.Errorf("PixelsOr(-1) = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLength(t *testing.T) {
	type tc struct {
		input    string
		expected Length
		wantErr  bool
	}

	tests := map[string]tc{
		"empty":        {input: "", expected: Length{}},
		"auto":         {input: "auto", expected: Length{}},
		"bare number":  {input: "120", expected: Px(120)},
		"pixels":       {input: "12.5px", expected: Px(12.5)},
		"percent":      {input: "50%", expected: Pct(50)},
		"spaces":       {input: " 40 % ", expected: Pct(40)},
		"garbage":      {input: "wide", wantErr: true},
		"bad percent":  {input: "x%", wantErr: true},
		"infinite":     {input: "Inf", wantErr: true},
		"not a number": {input: "NaN", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLength(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLength(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLength(%q) error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseLength(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLength_TextRoundTrip(t *testing.T) {
	for _, l := range []Length{Px(10), Pct(33.5), Unset()} {
		text, err := l.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", l, err)
		}
		var back Length
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if back != l {
			t.Errorf("round trip of %v = %v", l, back)
		}
	}
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, lo, hi float64
		expected  float64
	}

	tests := map[string]tc{
		"inside":            {v: 5, lo: 0, hi: 10, expected: 5},
		"below":             {v: -1, lo: 0, hi: 10, expected: 0},
		"above":             {v: 11, lo: 0, hi: 10, expected: 10},
		"infinite max":      {v: 1e9, lo: 0, hi: math.Inf(1), expected: 1e9},
		"min above max":     {v: 5, lo: 20, hi: 10, expected: 10},
		"min above max low": {v: 50, lo: 20, hi: 10, expected: 10},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}
