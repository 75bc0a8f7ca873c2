package flex

import (
	"math"
	"testing"
)

func TestText_HeightFollowsCommittedWidth(t *testing.T) {
	sched, tree := newWorld(t)
	rootID := tree.Add(NoElement, NewContainer(WithAbsolute(), WithDirection(Column)))
	tree.SetSize(rootID, 50, 200)
	text := tree.Add(rootID, NewText(wrappingText(100, 10), WithGrow(0)))

	sched.Flush()
	checkRect(t, tree, text, NewRect(0, 0, 50, 20))

	tree.SetSize(rootID, 25, 200)
	sched.Flush()
	checkRect(t, tree, text, NewRect(0, 0, 25, 40))
}

func TestText_MinSizeRaisesPreferredSize(t *testing.T) {
	sched, tree := newWorld(t)
	rootID := tree.Add(NoElement, NewContainer(WithAbsolute(), WithAlignItems(AlignStart)))
	tree.SetSize(rootID, 300, 100)
	text := tree.Add(rootID, NewText(fixedText(10, 5), WithGrow(0), WithMinWidth(Px(30)), WithMinHeight(Px(12))))

	sched.Flush()
	checkRect(t, tree, text, NewRect(0, 0, 30, 12))
}

func TestText_MaxSizeBoundsMeasurement(t *testing.T) {
	var gotW, gotH float64
	measure := func(maxWidth, maxHeight float64) (float64, float64) {
		gotW, gotH = maxWidth, maxHeight
		return 0, 0
	}
	text := NewText(measure, WithMaxWidth(Px(80)))
	_, tree := newWorld(t)
	tree.Add(NoElement, text)

	text.MeasureHorizontal()

	if gotW != 80 {
		t.Errorf("measure maxWidth = %v, want 80", gotW)
	}
	if !math.IsInf(gotH, 1) {
		t.Errorf("measure maxHeight = %v, want +Inf", gotH)
	}
}

func TestText_SetMeasureQueuesRoot(t *testing.T) {
	sched, tree := newWorld(t)
	root := NewContainer(WithAbsolute())
	rootID := tree.Add(NoElement, root)
	text := NewText(nil)
	tree.Add(rootID, text)
	sched.Flush()

	if w, h := text.PreferredSize(); w != 0 || h != 0 {
		t.Errorf("PreferredSize() with nil measure = (%v, %v), want (0, 0)", w, h)
	}

	text.SetMeasure(fixedText(5, 5))
	if !sched.IsQueued(root) {
		t.Error("root not queued after SetMeasure")
	}
}

func TestText_ShrunkWrapKeepsUnconstrainedWidth(t *testing.T) {
	sched, tree := newWorld(t)
	root := NewContainer(WithAbsolute())
	rootID := tree.Add(NoElement, root)
	tree.SetSize(rootID, 60, 50)
	text := NewText(wrappingText(100, 10))
	ids := []ElementID{
		tree.Add(rootID, text),
		tree.Add(rootID, NewContainer(WithBasis(Px(40)))),
	}
	sched.Flush()

	first := make([]Rect, len(ids))
	for i, id := range ids {
		first[i] = tree.Transform(id).Rect()
	}
	if first[0].Width >= 100 {
		t.Fatalf("text width = %v, want it shrunk below 100", first[0].Width)
	}
	if w, _ := text.PreferredSize(); w != 100 {
		t.Errorf("PreferredSize() width = %v, want 100", w)
	}

	sched.LayoutImmediate(root)
	for i, id := range ids {
		checkRect(t, tree, id, first[i])
	}
}
