package flex

import "testing"

func TestContainer_Layout(t *testing.T) {
	type tc struct {
		root          []Option
		width, height float64
		children      [][]Option
		want          []Rect
	}

	tests := map[string]tc{
		"grow splits leftover space": {
			root:     []Option{WithGap(10)},
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(100)), WithGrow(1)}, {WithBasis(Px(100)), WithGrow(1)}},
			want:     []Rect{NewRect(0, 0, 145, 100), NewRect(155, 0, 145, 100)},
		},
		"justify center": {
			root:     []Option{WithJustify(JustifyCenter)},
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(150))}},
			want:     []Rect{NewRect(75, 0, 150, 100)},
		},
		"justify end": {
			root:     []Option{WithJustify(JustifyEnd)},
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(50))}, {WithBasis(Px(50))}},
			want:     []Rect{NewRect(200, 0, 50, 100), NewRect(250, 0, 50, 100)},
		},
		"space between": {
			root:     []Option{WithJustify(JustifySpaceBetween)},
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(50))}, {WithBasis(Px(50))}, {WithBasis(Px(50))}},
			want:     []Rect{NewRect(0, 0, 50, 100), NewRect(125, 0, 50, 100), NewRect(250, 0, 50, 100)},
		},
		"space around": {
			root:     []Option{WithJustify(JustifySpaceAround)},
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(50))}, {WithBasis(Px(50))}, {WithBasis(Px(50))}},
			want:     []Rect{NewRect(25, 0, 50, 100), NewRect(125, 0, 50, 100), NewRect(225, 0, 50, 100)},
		},
		"space evenly": {
			root:     []Option{WithJustify(JustifySpaceEvenly)},
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(50))}, {WithBasis(Px(50))}, {WithBasis(Px(50))}},
			want:     []Rect{NewRect(37.5, 0, 50, 100), NewRect(125, 0, 50, 100), NewRect(212.5, 0, 50, 100)},
		},
		"row reverse packs at the far edge": {
			root:     []Option{WithDirection(RowReverse)},
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(50))}, {WithBasis(Px(50))}, {WithBasis(Px(50))}},
			want:     []Rect{NewRect(250, 0, 50, 100), NewRect(200, 0, 50, 100), NewRect(150, 0, 50, 100)},
		},
		"max width passes leftover to siblings": {
			width:  300,
			height: 100,
			children: [][]Option{
				{WithBasis(Px(100)), WithGrow(1), WithMaxWidth(Px(120))},
				{WithBasis(Px(100)), WithGrow(1)},
			},
			want: []Rect{NewRect(0, 0, 120, 100), NewRect(120, 0, 180, 100)},
		},
		"shrink respects min width": {
			width:  300,
			height: 100,
			children: [][]Option{
				{WithBasis(Px(200)), WithMinWidth(Px(180))},
				{WithBasis(Px(200))},
			},
			want: []Rect{NewRect(0, 0, 180, 100), NewRect(180, 0, 120, 100)},
		},
		"zero shrink overflows": {
			width:  300,
			height: 100,
			children: [][]Option{
				{WithBasis(Px(200)), WithShrink(0)},
				{WithBasis(Px(200)), WithShrink(0)},
			},
			want: []Rect{NewRect(0, 0, 200, 100), NewRect(200, 0, 200, 100)},
		},
		"percent basis resolves against inner size": {
			root:     []Option{WithGap(20)},
			width:    320,
			height:   100,
			children: [][]Option{{WithBasis(Pct(50))}, {WithBasis(Pct(25))}},
			want:     []Rect{NewRect(0, 0, 150, 100), NewRect(170, 0, 75, 100)},
		},
		"basis clamped by max": {
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(200)), WithMaxWidth(Px(150))}},
			want:     []Rect{NewRect(0, 0, 150, 100)},
		},
		"padding insets both axes": {
			root:     []Option{WithPadding(PadAll(10))},
			width:    300,
			height:   100,
			children: [][]Option{{WithGrow(1)}},
			want:     []Rect{NewRect(10, 10, 280, 80)},
		},
		"negative padding is treated as zero": {
			root:     []Option{WithPadding(Padding{Left: -20, Right: 10, Top: -5})},
			width:    300,
			height:   100,
			children: [][]Option{{WithGrow(1)}},
			want:     []Rect{NewRect(0, 0, 290, 100)},
		},
		"column grows vertically": {
			root:     []Option{WithDirection(Column), WithGap(10)},
			width:    100,
			height:   300,
			children: [][]Option{{WithBasis(Px(100)), WithGrow(1)}, {WithBasis(Px(100)), WithGrow(1)}},
			want:     []Rect{NewRect(0, 0, 100, 145), NewRect(0, 155, 100, 145)},
		},
		"column reverse packs at the bottom": {
			root:     []Option{WithDirection(ColumnReverse)},
			width:    100,
			height:   300,
			children: [][]Option{{WithBasis(Px(50))}, {WithBasis(Px(50))}},
			want:     []Rect{NewRect(0, 250, 100, 50), NewRect(0, 200, 100, 50)},
		},
		"align self overrides align items": {
			root:   []Option{WithAlignItems(AlignStart)},
			width:  300,
			height: 100,
			children: [][]Option{
				{WithBasis(Px(50)), WithMinHeight(Px(20)), WithAlignSelf(AlignEnd)},
				{WithBasis(Px(50)), WithMinHeight(Px(20))},
				{WithBasis(Px(50)), WithMinHeight(Px(20)), WithAlignSelf(AlignCenter)},
			},
			want: []Rect{NewRect(0, 80, 50, 20), NewRect(50, 0, 50, 20), NewRect(100, 40, 50, 20)},
		},
		"stretch clamped by max height": {
			width:    300,
			height:   100,
			children: [][]Option{{WithBasis(Px(50)), WithMaxHeight(Px(60))}, {WithBasis(Px(50)), WithMaxHeight(Pct(50))}},
			want:     []Rect{NewRect(0, 0, 50, 60), NewRect(50, 0, 50, 50)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sched, tree := newWorld(t)
			rootID := tree.Add(NoElement, NewContainer(append([]Option{WithAbsolute()}, tt.root...)...))
			tree.SetSize(rootID, tt.width, tt.height)

			ids := make([]ElementID, len(tt.children))
			for i, opts := range tt.children {
				ids[i] = tree.Add(rootID, NewContainer(opts...))
			}

			if n := sched.Flush(); n != 1 {
				t.Fatalf("Flush() = %d, want 1", n)
			}
			checkRect(t, tree, rootID, NewRect(0, 0, tt.width, tt.height))
			for i, id := range ids {
				checkRect(t, tree, id, tt.want[i])
			}
		})
	}
}

func TestSetPadding_ClampsNegativeSides(t *testing.T) {
	sched, tree := newWorld(t)
	c := NewContainer(WithAbsolute())
	rootID := tree.Add(NoElement, c)
	tree.SetSize(rootID, 100, 50)
	child := tree.Add(rootID, NewContainer(WithGrow(1)))
	cols := NewColumns()
	tree.Add(NoElement, cols)
	sched.Flush()

	c.SetPadding(Padding{Left: -30, Right: 5, Top: -1, Bottom: 2})
	cols.SetPadding(Padding{Left: -4, Right: -4})

	if got, want := c.Padding(), (Padding{Right: 5, Bottom: 2}); got != want {
		t.Errorf("Container.Padding() = %+v, want %+v", got, want)
	}
	if got, want := cols.Padding(), (Padding{}); got != want {
		t.Errorf("Columns.Padding() = %+v, want %+v", got, want)
	}

	sched.Flush()
	checkRect(t, tree, child, NewRect(0, 0, 95, 48))
}

func TestContainer_ScaledChildOccupiesScaledSpace(t *testing.T) {
	sched, tree := newWorld(t)
	rootID := tree.Add(NoElement, NewContainer(WithAbsolute()))
	tree.SetSize(rootID, 300, 100)
	a := tree.Add(rootID, NewContainer(WithBasis(Px(100))))
	b := tree.Add(rootID, NewContainer(WithBasis(Px(50))))
	tree.SetScale(a, 2, 1)

	sched.Flush()

	checkRect(t, tree, a, NewRect(0, 0, 100, 100))
	checkRect(t, tree, b, NewRect(200, 0, 50, 100))
}

func TestContainer_NestedContentSizing(t *testing.T) {
	sched, tree := newWorld(t)
	rootID := tree.Add(NoElement, NewContainer(WithAbsolute(), WithAlignItems(AlignStart)))
	tree.SetSize(rootID, 300, 100)

	row := tree.Add(rootID, NewContainer())
	first := tree.Add(row, NewText(fixedText(40, 10)))
	second := tree.Add(row, NewText(fixedText(40, 10)))

	sched.Flush()

	checkRect(t, tree, row, NewRect(0, 0, 80, 10))
	checkRect(t, tree, first, NewRect(0, 0, 40, 10))
	checkRect(t, tree, second, NewRect(40, 0, 40, 10))
}

func TestContainer_AutoSizeWritesPreferredSize(t *testing.T) {
	sched, tree := newWorld(t)
	root := NewContainer(WithAbsolute(), WithAutoSize(true, true), WithPadding(PadAll(5)))
	rootID := tree.Add(NoElement, root)
	a := tree.Add(rootID, NewText(fixedText(30, 10)))
	b := tree.Add(rootID, NewText(fixedText(30, 10)))

	sched.Flush()

	checkRect(t, tree, rootID, NewRect(0, 0, 70, 20))
	checkRect(t, tree, a, NewRect(5, 5, 30, 10))
	checkRect(t, tree, b, NewRect(35, 5, 30, 10))
	if root.IsDirty() {
		t.Error("root.IsDirty() = true after layout, want false")
	}
	if n := sched.Pending(); n != 0 {
		t.Errorf("Pending() = %d after auto-size write, want 0", n)
	}
}

func TestContainer_RelayoutIsIdempotent(t *testing.T) {
	sched, tree := newWorld(t)
	root := NewContainer(WithAbsolute(), WithGap(7), WithJustify(JustifySpaceEvenly), WithPadding(PadSymmetric(3, 9)))
	rootID := tree.Add(NoElement, root)
	tree.SetSize(rootID, 317, 123)
	ids := []ElementID{
		tree.Add(rootID, NewContainer(WithBasis(Px(40)), WithGrow(2), WithMaxWidth(Px(90)))),
		tree.Add(rootID, NewText(wrappingText(120, 12))),
		tree.Add(rootID, NewContainer(WithBasis(Pct(20)), WithAlignSelf(AlignCenter), WithMinHeight(Px(30)))),
	}

	sched.Flush()
	first := make([]Rect, len(ids))
	for i, id := range ids {
		first[i] = tree.Transform(id).Rect()
	}

	sched.LayoutImmediate(root)
	for i, id := range ids {
		checkRect(t, tree, id, first[i])
	}
}

func TestContainer_MinMaxInvariant(t *testing.T) {
	sched, tree := newWorld(t)
	rootID := tree.Add(NoElement, NewContainer(WithAbsolute()))
	tree.SetSize(rootID, 500, 100)

	type limits struct{ lo, hi float64 }
	children := map[ElementID]limits{}
	for _, l := range []limits{{10, 60}, {0, 400}, {120, 130}, {30, 1000}} {
		id := tree.Add(rootID, NewContainer(
			WithBasis(Px(80)), WithGrow(1), WithShrink(1),
			WithMinWidth(Px(l.lo)), WithMaxWidth(Px(l.hi)),
		))
		children[id] = l
	}

	for _, width := range []float64{50, 200, 500, 2000} {
		tree.SetSize(rootID, width, 100)
		sched.Flush()
		for id, l := range children {
			w, _ := tree.Transform(id).Size()
			if w < l.lo-1e-6 || w > l.hi+1e-6 {
				t.Errorf("width %v: child %d size = %v, want within [%v, %v]", width, id, w, l.lo, l.hi)
			}
		}
	}
}

func TestContainer_InvalidJustifyPanics(t *testing.T) {
	sched, tree := newWorld(t)
	rootID := tree.Add(NoElement, NewContainer(WithAbsolute(), WithJustify(Justify(42))))
	tree.SetSize(rootID, 100, 100)
	tree.Add(rootID, NewContainer())

	defer func() {
		if recover() == nil {
			t.Error("Flush() did not panic for an unsupported justify value")
		}
	}()
	sched.Flush()
}
