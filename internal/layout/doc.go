// Package layout holds the host-independent pieces of the flex engine.
//
// It knows nothing about nodes or trees: it resolves [Length] constraints,
// clamps sizes, distributes grow/shrink allowance across a line of items
// ([Distribute]) and computes main-axis ([PlaceMain]) and cross-axis
// ([CrossOffset]) placement. The root flex package drives these from its
// container types and re-exports the public types.
package layout
