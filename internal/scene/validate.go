package scene

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks the document and returns every problem found, combined
// with multierr.
func Validate(doc *Document) error {
	var errs error
	add := func(path, format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
	}

	if !doc.Root.Kind.IsRoot() {
		add("root", "kind %s cannot be a layout root", doc.Root.Kind)
	}
	if v := doc.Viewport; v != nil && (v.Width < 0 || v.Height < 0) {
		add("viewport", "negative size %vx%v", v.Width, v.Height)
	}

	names := make(map[string]string)
	doc.Root.Walk(func(path string, e *Element) {
		if e.Name != "" {
			if prev, ok := names[e.Name]; ok {
				add(path, "duplicate name %q (first used at %s)", e.Name, prev)
			} else {
				names[e.Name] = path
			}
		}
		if e.Kind.IsLeaf() && len(e.Children) > 0 {
			add(path, "%s elements cannot have children", e.Kind)
		}
		if e.Kind == KindAspect && len(e.Aspect) != 2 {
			add(path, "aspect needs two values, got %d", len(e.Aspect))
		}
		if e.Kind != KindAspect && len(e.Aspect) > 0 {
			add(path, "aspect is only valid on aspect elements")
		}
		if e.Kind != KindText && e.Text != "" {
			add(path, "text is only valid on text elements")
		}
		if e.Columns != 0 && e.ColumnWidth != 0 {
			add(path, "columns and column-width are mutually exclusive")
		}
		if e.Kind != KindColumns && (e.Columns != 0 || e.ColumnWidth != 0) {
			add(path, "columns settings are only valid on columns elements")
		}
		if e.Columns < 0 || e.ColumnWidth < 0 {
			add(path, "negative column settings")
		}
		if e.Grow != nil && *e.Grow < 0 {
			add(path, "negative grow %d", *e.Grow)
		}
		if e.Shrink != nil && *e.Shrink < 0 {
			add(path, "negative shrink %d", *e.Shrink)
		}
		if e.Gap < 0 {
			add(path, "negative gap %v", e.Gap)
		}
		if p := e.Padding; p.Left < 0 || p.Right < 0 || p.Top < 0 || p.Bottom < 0 {
			add(path, "negative padding")
		}
		if s := e.Size; s != nil && (s.Width < 0 || s.Height < 0) {
			add(path, "negative size %vx%v", s.Width, s.Height)
		}
		if e.Kind == KindGroup && e.Absolute {
			add(path, "group elements cannot be absolute")
		}
	})

	for i, tr := range doc.Transitions {
		path := fmt.Sprintf("transitions[%d]", i)
		if tr.Target == "" {
			add(path, "missing target")
		} else if _, ok := names[tr.Target]; !ok {
			add(path, "unknown target %q", tr.Target)
		}
		if tr.Duration < 0 {
			add(path, "negative duration %v", tr.Duration)
		}
	}

	return errs
}
