// Package flex computes box layouts for trees of flex nodes.
//
// A host owns the element tree (parent/child containment, active state and
// a [Transform] per element). Layout participants implement [Node]:
// [Container] arranges children on a single flex line, [Columns] arranges
// them round-robin in columns, [Text] and [AspectRatio] adapt foreign
// preferred-size sources. [Tree] is an in-memory host.
//
// Every full layout of a root runs four phases: MeasureHorizontal,
// LayoutHorizontal, MeasureVertical, LayoutVertical. Vertical measurement
// happens only after widths are committed, so content whose height depends
// on width (wrapped text, aspect boxes) measures against its final width.
//
// Mutating a node's inputs marks it dirty. Dirtiness walks up to the nearest
// layout root, which is queued on a [Scheduler]. The host calls
// [Scheduler.Flush] once per tick, or runs [Scheduler.Run].
//
//	sched, _ := flex.NewScheduler()
//	tree := flex.NewTree(sched)
//	root := flex.NewContainer(flex.WithAbsolute(), flex.WithGap(10))
//	rootID := tree.Add(flex.NoElement, root)
//	tree.SetSize(rootID, 300, 100)
//	tree.Add(rootID, flex.NewContainer(flex.WithBasis(flex.Px(100)), flex.WithGrow(1)))
//	sched.Flush()
package flex
