package scene

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/measure"
	"github.com/grindlemire/go-flex/transition"
)

// Builder turns documents into host elements and nodes.
type Builder struct {
	// Metrics measures text elements.
	Metrics measure.Metrics

	// Viewport is the root size used when neither the root nor the
	// document sets one.
	Viewport Size

	// NewName names unnamed elements. The default appends a random suffix
	// to the kind.
	NewName func(Kind) string
}

// Scene is a built document.
type Scene struct {
	Tree        *flex.Tree
	Root        flex.ElementID
	Transitions []transition.Definition
}

// Build validates doc and adds its elements to tree.
func (b *Builder) Build(tree *flex.Tree, doc *Document) (*Scene, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	root := b.add(tree, flex.NoElement, &doc.Root)

	size := b.Viewport
	if doc.Viewport != nil {
		size = *doc.Viewport
	}
	if doc.Root.Size != nil {
		size = *doc.Root.Size
	}
	w, h := tree.Transform(root).Size()
	if !doc.Root.AutoSize.X {
		w = size.Width
	}
	if !doc.Root.AutoSize.Y {
		h = size.Height
	}
	tree.SetSize(root, w, h)

	defs := make([]transition.Definition, 0, len(doc.Transitions))
	for _, tr := range doc.Transitions {
		id, ok := tree.Find(tr.Target)
		if !ok {
			return nil, fmt.Errorf("transition target %q: not found", tr.Target)
		}
		defs = append(defs, transition.Definition{
			Property: tr.Property,
			Target:   id,
			From:     tr.From,
			To:       tr.To,
			Duration: tr.Duration,
			Ease:     tr.Ease,
		})
	}

	return &Scene{Tree: tree, Root: root, Transitions: defs}, nil
}

func (b *Builder) add(tree *flex.Tree, parent flex.ElementID, e *Element) flex.ElementID {
	name := e.Name
	if name == "" {
		name = b.name(e.Kind)
	}

	id := tree.AddNamed(parent, name, b.node(e))
	if e.Size != nil && parent != flex.NoElement {
		tree.SetSize(id, e.Size.Width, e.Size.Height)
	}
	if e.Scale != nil {
		tree.SetScale(id, e.Scale.X, e.Scale.Y)
	}
	for i := range e.Children {
		b.add(tree, id, &e.Children[i])
	}
	if e.Active != nil && !*e.Active {
		tree.SetActive(id, false)
	}
	return id
}

func (b *Builder) node(e *Element) flex.Node {
	opts := []flex.Option{
		flex.WithBasis(e.Basis),
		flex.WithMinWidth(e.MinWidth),
		flex.WithMaxWidth(e.MaxWidth),
		flex.WithMinHeight(e.MinHeight),
		flex.WithMaxHeight(e.MaxHeight),
		flex.WithDirection(e.Direction),
		flex.WithJustify(e.Justify),
		flex.WithPadding(e.Padding),
		flex.WithGap(e.Gap),
		flex.WithAutoSize(e.AutoSize.X, e.AutoSize.Y),
	}
	if e.Grow != nil {
		opts = append(opts, flex.WithGrow(*e.Grow))
	}
	if e.Shrink != nil {
		opts = append(opts, flex.WithShrink(*e.Shrink))
	}
	if e.AlignSelf.HasValue {
		opts = append(opts, flex.WithAlignSelf(e.AlignSelf.Value))
	}
	if e.AlignItems != nil {
		opts = append(opts, flex.WithAlignItems(*e.AlignItems))
	}
	if e.Absolute {
		opts = append(opts, flex.WithAbsolute())
	}

	switch e.Kind {
	case KindColumns:
		if e.ColumnWidth > 0 {
			opts = append(opts, flex.WithColumnWidth(e.ColumnWidth))
		} else if e.Columns > 0 {
			opts = append(opts, flex.WithColumnCount(e.Columns))
		}
		return flex.NewColumns(opts...)
	case KindText:
		return flex.NewText(b.measureFunc(e.Text), opts...)
	case KindAspect:
		return flex.NewAspectRatio(e.Aspect[0], e.Aspect[1], opts...)
	case KindGroup:
		return nil
	default:
		return flex.NewContainer(opts...)
	}
}

func (b *Builder) measureFunc(text string) flex.MeasureFunc {
	m := b.Metrics
	if m == nil {
		m = measure.NewCells(false)
	}
	return measure.Func(m, text)
}

func (b *Builder) name(k Kind) string {
	if b.NewName != nil {
		return b.NewName(k)
	}
	return k.String() + "-" + uuid.NewString()[:8]
}
