package flex

// nodeConfig collects the construction-time settings of every node kind.
// Each kind reads the fields it understands.
type nodeConfig struct {
	sizing    Sizing
	absolute  bool
	autoSizeX bool
	autoSizeY bool

	direction  Direction
	justify    Justify
	alignItems Align
	padding    Padding
	gap        float64

	columnCount int
	columnWidth float64

	aspectX, aspectY float64
}

// Option configures a node at construction.
type Option func(*nodeConfig)

func newNodeConfig(grow, shrink int, opts []Option) nodeConfig {
	cfg := nodeConfig{
		sizing:     Sizing{Grow: grow, Shrink: shrink},
		alignItems: AlignStretch,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.sizing = sanitizeSizing(cfg.sizing)
	return cfg
}

// WithSizing replaces all flex-item inputs.
func WithSizing(s Sizing) Option {
	return func(c *nodeConfig) {
		c.sizing = s
	}
}

// WithBasis sets the main-axis starting size.
func WithBasis(l Length) Option {
	return func(c *nodeConfig) {
		c.sizing.Basis = l
	}
}

// WithGrow sets the grow weight. Negative weights become zero.
func WithGrow(n int) Option {
	return func(c *nodeConfig) {
		c.sizing.Grow = n
	}
}

// WithShrink sets the shrink weight. Negative weights become zero.
func WithShrink(n int) Option {
	return func(c *nodeConfig) {
		c.sizing.Shrink = n
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(l Length) Option {
	return func(c *nodeConfig) {
		c.sizing.MinWidth = l
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(l Length) Option {
	return func(c *nodeConfig) {
		c.sizing.MaxWidth = l
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(l Length) Option {
	return func(c *nodeConfig) {
		c.sizing.MinHeight = l
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(l Length) Option {
	return func(c *nodeConfig) {
		c.sizing.MaxHeight = l
	}
}

// WithAlignSelf overrides the parent's cross-axis alignment for this node.
func WithAlignSelf(a Align) Option {
	return func(c *nodeConfig) {
		c.sizing.AlignSelf = SelfAlign(a)
	}
}

// WithAbsolute makes the node an independent layout root that its parent
// skips.
func WithAbsolute() Option {
	return func(c *nodeConfig) {
		c.absolute = true
	}
}

// WithAutoSize makes a layout root write its preferred size back to the
// host on the given axes.
func WithAutoSize(x, y bool) Option {
	return func(c *nodeConfig) {
		c.autoSizeX, c.autoSizeY = x, y
	}
}

// WithDirection sets the main axis of a container.
func WithDirection(d Direction) Option {
	return func(c *nodeConfig) {
		c.direction = d
	}
}

// WithJustify sets main-axis distribution of leftover space.
func WithJustify(j Justify) Option {
	return func(c *nodeConfig) {
		c.justify = j
	}
}

// WithAlignItems sets the default cross-axis alignment of children.
func WithAlignItems(a Align) Option {
	return func(c *nodeConfig) {
		c.alignItems = a
	}
}

// WithPadding sets the inner padding. Negative sides become zero.
func WithPadding(p Padding) Option {
	return func(c *nodeConfig) {
		c.padding = p.NonNegative()
	}
}

// WithGap sets the spacing between adjacent children.
func WithGap(gap float64) Option {
	return func(c *nodeConfig) {
		c.gap = max(gap, 0)
	}
}

// WithColumnCount puts a Columns node in fixed-count mode.
func WithColumnCount(n int) Option {
	return func(c *nodeConfig) {
		c.columnCount = max(n, 1)
		c.columnWidth = 0
	}
}

// WithColumnWidth puts a Columns node in flow mode with the given column width.
func WithColumnWidth(w float64) Option {
	return func(c *nodeConfig) {
		c.columnWidth = max(w, 1)
		c.columnCount = 0
	}
}

// WithAspectRatio sets the width:height ratio of an AspectRatio node.
func WithAspectRatio(x, y float64) Option {
	return func(c *nodeConfig) {
		c.aspectX, c.aspectY = x, y
	}
}
