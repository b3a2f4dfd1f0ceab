package components

import (
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

// Align places a child horizontally within the offered width.
type Align struct {
	content render.Renderable
	align   Alignment
	style   string
}

// NewAlign wraps content with the given alignment.
func NewAlign(content render.Renderable, align Alignment) *Align {
	return &Align{content: content, align: align}
}

// Left aligns content to the left edge.
func Left(content render.Renderable) *Align { return NewAlign(content, AlignLeft) }

// Center centres content.
func Center(content render.Renderable) *Align { return NewAlign(content, AlignCenter) }

// Right aligns content to the right edge.
func Right(content render.Renderable) *Align { return NewAlign(content, AlignRight) }

// WithStyle sets the style of the fill spaces.
func (a *Align) WithStyle(description string) *Align {
	a.style = description
	return a
}

// Render renders the child at the full width and shifts each line by the
// free space to its left.
func (a *Align) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	fill := styleOf(c, a.style)

	lines := render.Lines(a.content, c, opts.WithWidth(width))
	out := make([]segment.Line, 0, len(lines))
	for _, line := range lines {
		left, _ := a.align.split(width - line.CellLength())
		if left > 0 {
			line = append(segment.Line{segment.Spaces(left, fill)}, line...)
		}
		out = append(out, line)
	}
	return render.FromLines(out)
}
