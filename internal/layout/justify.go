package layout

import "fmt"

// PlaceMain computes where the first child starts on the main axis and how
// much extra spacing goes between consecutive children.
//
// inner is the container's inner size, content the scaled sum of child sizes
// plus gaps, gapCount the number of gaps between children. start is relative
// to the leading padding edge. Reversed containers pack Start toward the far
// edge and End toward the near edge.
func PlaceMain(j Justify, reversed bool, inner, content float64, gapCount int) (start, spacing float64) {
	used := min(content, inner)

	var lead float64
	switch j {
	case JustifyStart:
	case JustifyEnd:
		if reversed {
			return 0, 0
		}
		return inner - used, 0
	case JustifyCenter:
		return (inner - used) / 2, 0
	case JustifySpaceBetween:
		if gapCount > 0 {
			spacing = (inner - used) / float64(gapCount)
			used = inner
		}
	case JustifySpaceAround:
		spacing = (inner - used) / float64(gapCount+1)
		lead = spacing / 2
		used = inner
	case JustifySpaceEvenly:
		spacing = (inner - used) / float64(gapCount+2)
		lead = spacing
		used = inner
	default:
		panic(fmt.Sprintf("layout: unsupported justify %s", j))
	}

	if reversed {
		return inner - used + lead, spacing
	}
	return lead, spacing
}
