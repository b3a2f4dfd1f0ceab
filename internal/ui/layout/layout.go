// Package layout splits the available space between child renderables by
// fixed sizes and flex ratios.
package layout

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Direction is the axis children are split along.
type Direction int

const (
	// Column stacks children top to bottom.
	Column Direction = iota
	// Row places children side by side.
	Row
)

// Layout is a node in a split tree. A leaf renders its renderable; an
// internal node renders its children and ignores its own renderable.
type Layout struct {
	name        string
	renderable  render.Renderable
	children    []*Layout
	direction   Direction
	size        int
	fixed       bool
	ratio       int
	minimumSize int
	visible     bool
}

// New creates a leaf layout. renderable may be nil for an empty region.
func New(renderable render.Renderable) *Layout {
	return &Layout{renderable: renderable, ratio: 1, visible: true}
}

// WithName names the node so it can be found with Find.
func (l *Layout) WithName(name string) *Layout {
	l.name = name
	return l
}

// WithSize gives the node a fixed size in cells along its parent's axis.
func (l *Layout) WithSize(size int) *Layout {
	l.size = max(0, size)
	l.fixed = true
	return l
}

// WithRatio sets the flex weight used when the node has no fixed size.
func (l *Layout) WithRatio(ratio int) *Layout {
	l.ratio = max(0, ratio)
	return l
}

// WithMinimumSize reserves cells for a flexible node before ratios apply.
func (l *Layout) WithMinimumSize(size int) *Layout {
	l.minimumSize = max(0, size)
	return l
}

// WithVisible shows or hides the node. Hidden nodes take no space.
func (l *Layout) WithVisible(visible bool) *Layout {
	l.visible = visible
	return l
}

// Name returns the node name.
func (l *Layout) Name() string { return l.name }

// Direction returns the split axis.
func (l *Layout) Direction() Direction { return l.direction }

// Children returns the child nodes.
func (l *Layout) Children() []*Layout { return l.children }

// Renderable returns the leaf content.
func (l *Layout) Renderable() render.Renderable { return l.renderable }

// SplitRow replaces the children with items placed side by side.
func (l *Layout) SplitRow(items ...render.Renderable) *Layout {
	l.split(Row, items)
	return l
}

// SplitColumn replaces the children with items stacked vertically.
func (l *Layout) SplitColumn(items ...render.Renderable) *Layout {
	l.split(Column, items)
	return l
}

func (l *Layout) split(direction Direction, items []render.Renderable) {
	l.direction = direction
	l.children = make([]*Layout, 0, len(items))
	for _, item := range items {
		l.children = append(l.children, wrap(item))
	}
}

// wrap returns item as a layout node, wrapping plain renderables in a leaf.
func wrap(item render.Renderable) *Layout {
	if child, ok := item.(*Layout); ok {
		return child
	}
	return New(item)
}

// Update replaces the leaf content.
func (l *Layout) Update(renderable render.Renderable) *Layout {
	l.renderable = renderable
	return l
}

// Find returns the first node named name in depth-first order, or nil.
func (l *Layout) Find(name string) *Layout {
	if l.name == name {
		return l
	}
	for _, child := range l.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Render draws the node at the offered width.
func (l *Layout) Render(c render.Console, opts render.Options) render.Result {
	if !l.visible {
		return render.Result{}
	}
	width := render.Width(c, opts)
	opts = opts.WithWidth(width)

	if len(l.children) == 0 {
		if l.renderable == nil {
			return render.Result{Width: width}
		}
		return l.renderable.Render(c, opts)
	}
	if l.direction == Column {
		return l.renderColumn(c, opts)
	}
	return l.renderRow(c, opts, width)
}

func (l *Layout) renderColumn(c render.Console, opts render.Options) render.Result {
	var segs []segment.Segment
	for _, child := range l.children {
		if !child.visible {
			continue
		}
		out := child.Render(c, opts).Segments
		segs = append(segs, out...)
		if n := len(out); n > 0 && !strings.HasSuffix(out[n-1].Text, "\n") {
			segs = append(segs, segment.Newline())
		}
	}
	res := render.NewResult(segs)
	res.Width = opts.Width
	return res
}

func (l *Layout) renderRow(c render.Console, opts render.Options, width int) render.Result {
	widths := Sizes(width, l.children)
	columns := make([][]segment.Line, len(l.children))
	height := 0
	for i, child := range l.children {
		if !child.visible {
			continue
		}
		columns[i] = render.Lines(child, c, opts.WithWidth(widths[i]))
		height = max(height, len(columns[i]))
	}

	out := make([]segment.Line, height)
	for y := range height {
		line := segment.Line{}
		for i, child := range l.children {
			if !child.visible {
				continue
			}
			if y < len(columns[i]) {
				line = append(line, segment.PadLine(segment.CropLine(columns[i][y], widths[i]), widths[i], style.Null())...)
			} else if widths[i] > 0 {
				line = append(line, segment.Spaces(widths[i], style.Null()))
			}
		}
		out[y] = line
	}
	res := render.FromLines(out)
	res.Width = width
	return res
}

// Sizes distributes available cells between children. Fixed sizes are taken
// first (capped at what remains), minimums are reserved for flexible
// children, and the rest is shared by ratio with the rounding remainder going
// to the last flexible child. Hidden children get zero. The result never sums
// to more than available.
func Sizes(available int, children []*Layout) []int {
	sizes := make([]int, len(children))
	remaining := max(0, available)
	totalRatio := 0

	for i, child := range children {
		if !child.visible {
			continue
		}
		switch {
		case child.fixed:
			sizes[i] = min(child.size, remaining)
			remaining -= sizes[i]
		case child.minimumSize > 0:
			sizes[i] = min(child.minimumSize, remaining)
			remaining -= sizes[i]
		}
		if !child.fixed {
			totalRatio += child.ratio
		}
	}
	if remaining <= 0 || totalRatio == 0 {
		return sizes
	}

	distributed := 0
	lastFlexible := -1
	for i, child := range children {
		if !child.visible || child.fixed {
			continue
		}
		share := child.ratio * remaining / totalRatio
		sizes[i] += share
		distributed += share
		lastFlexible = i
	}
	if dust := remaining - distributed; dust > 0 && lastFlexible >= 0 {
		sizes[lastFlexible] += dust
	}
	return sizes
}

