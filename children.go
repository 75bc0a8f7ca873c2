package flex

import "iter"

// LayoutChildren yields the nodes that participate in the layout of id, in
// host order or reversed. Elements without a node, inactive nodes and
// absolute nodes are skipped.
func LayoutChildren(h Host, id ElementID, reversed bool) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		ids := h.Children(id)
		for i := range ids {
			idx := i
			if reversed {
				idx = len(ids) - 1 - i
			}
			n := h.Node(ids[idx])
			if n == nil || !n.IsActive() || n.IsAbsolute() {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}
