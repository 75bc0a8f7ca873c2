// Package measure provides text measurement sources for flex.Text leaves.
package measure

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/grindlemire/go-flex"
)

// Metrics measures single-line text runs.
type Metrics interface {
	// Advance returns the width of s laid out on one line.
	Advance(s string) float64
	// LineHeight returns the distance between consecutive baselines.
	LineHeight() float64
}

// Cells measures text in terminal cells: one unit per narrow rune, two per
// wide rune, one line per row.
type Cells struct {
	cond *runewidth.Condition
}

// NewCells creates a cell measurer. eastAsian treats ambiguous-width runes
// as wide.
func NewCells(eastAsian bool) *Cells {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Cells{cond: cond}
}

func (c *Cells) Advance(s string) float64 {
	return float64(c.cond.StringWidth(s))
}

func (c *Cells) LineHeight() float64 {
	return 1
}

// Face measures text in pixels using a font face.
type Face struct {
	face font.Face
}

// NewFace wraps a font face.
func NewFace(f font.Face) *Face {
	return &Face{face: f}
}

// Basic returns a Face over the built-in 7x13 bitmap font.
func Basic() *Face {
	return NewFace(basicfont.Face7x13)
}

func (f *Face) Advance(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s))
}

func (f *Face) LineHeight() float64 {
	return fixedToFloat(f.face.Metrics().Height)
}

// Func returns a flex.MeasureFunc for text wrapped greedily at maxWidth.
// The reported width is the widest wrapped line.
func Func(m Metrics, text string) flex.MeasureFunc {
	return func(maxWidth, _ float64) (float64, float64) {
		lines := Wrap(m, text, maxWidth)
		var width float64
		for _, line := range lines {
			width = max(width, m.Advance(line))
		}
		return width, float64(len(lines)) * m.LineHeight()
	}
}

// Wrap breaks text into lines no wider than maxWidth. Lines break at
// spaces; words wider than a line are split between runes. Every line
// holds at least one rune, so a width smaller than any rune still makes
// progress. Explicit newlines always break.
func Wrap(m Metrics, text string, maxWidth float64) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if math.IsInf(maxWidth, 1) {
			lines = append(lines, strings.Join(strings.Fields(para), " "))
			continue
		}
		lines = wrapParagraph(m, para, maxWidth, lines)
	}
	return lines
}

func wrapParagraph(m Metrics, para string, maxWidth float64, lines []string) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(lines, "")
	}

	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if m.Advance(candidate) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		if m.Advance(word) <= maxWidth {
			line = word
			continue
		}
		parts := splitWord(m, word, maxWidth)
		lines = append(lines, parts[:len(parts)-1]...)
		line = parts[len(parts)-1]
	}
	return append(lines, line)
}

// splitWord breaks a word between runes into pieces no wider than maxWidth.
func splitWord(m Metrics, word string, maxWidth float64) []string {
	var parts []string
	start := 0
	for i := 0; i < len(word); {
		_, size := utf8.DecodeRuneInString(word[i:])
		if i > start && m.Advance(word[start:i+size]) > maxWidth {
			parts = append(parts, word[start:i])
			start = i
		}
		i += size
	}
	return append(parts, word[start:])
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
