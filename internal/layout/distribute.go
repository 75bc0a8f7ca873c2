package layout

// Epsilon is the smallest delta that still counts as a child absorbing
// allowance during distribution.
const Epsilon = 1e-6

// Item is the per-child sizing buffer used while resolving flexible lengths
// on the main axis. Sizes are unscaled; allowances are in scaled units.
type Item struct {
	Size     float64 // Starting size in, final size out
	Min, Max float64
	Scale    float64
	Grow     int
	Shrink   int
	Flexible bool

	settled bool
}

// Scaled returns the size the item occupies in its parent's frame.
func (it *Item) Scaled() float64 {
	return it.Size * it.Scale
}

// Distribute hands out growth (or shrink) allowance to flexible items.
//
// Each pass gives every unsettled item a share of the remaining allowance
// proportional to its weight against the remaining weight sum. Shares are
// clamped to the room left before the item's max (or min). An item settles
// once it absorbs no more than Epsilon; a clamped item's unclaimed share
// goes to the items after it in the pass and in later passes.
func Distribute(items []Item, growth, shrink float64) {
	for i := range items {
		items[i].settled = !items[i].Flexible
	}

	for {
		growSum, shrinkSum := 0, 0
		pending := false
		for i := range items {
			if items[i].settled {
				continue
			}
			pending = true
			growSum += items[i].Grow
			shrinkSum += items[i].Shrink
		}
		if !pending {
			return
		}

		for i := range items {
			it := &items[i]
			if it.settled {
				continue
			}

			var delta float64
			switch {
			case growth > 0 && it.Grow > 0 && growSum > 0:
				share := float64(it.Grow) * growth / float64(growSum)
				delta = min(share, room(it.Max-it.Size, it.Scale))
				if it.Scale > 0 {
					it.Size += delta / it.Scale
				}
				growth -= delta
				growSum -= it.Grow
			case shrink > 0 && it.Shrink > 0 && shrinkSum > 0:
				share := float64(it.Shrink) * shrink / float64(shrinkSum)
				delta = min(share, room(it.Size-it.Min, it.Scale))
				if it.Scale > 0 {
					it.Size -= delta / it.Scale
				}
				shrink -= delta
				shrinkSum -= it.Shrink
			}

			if delta <= Epsilon {
				it.settled = true
			}
		}
	}
}

// room converts unscaled headroom into scaled allowance units.
// Non-positive scales have no room.
func room(headroom, scale float64) float64 {
	if scale <= 0 || headroom <= 0 {
		return 0
	}
	return headroom * scale
}
