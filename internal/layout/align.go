package layout

import "fmt"

// CrossOffset returns a child's offset from the leading padding edge on the
// cross axis. size is the child's scaled cross size.
func CrossOffset(a Align, inner, size float64) float64 {
	switch a {
	case AlignStart, AlignStretch:
		return 0
	case AlignEnd:
		return inner - size
	case AlignCenter:
		return inner/2 - size/2
	default:
		panic(fmt.Sprintf("layout: unsupported align %s", a))
	}
}
