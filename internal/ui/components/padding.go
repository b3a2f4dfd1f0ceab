package components

import (
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

// Padding surrounds a child with blank space.
type Padding struct {
	content render.Renderable
	pad     Spacing
	style   string
}

// NewPadding wraps content with the given spacing.
func NewPadding(content render.Renderable, pad Spacing) *Padding {
	return &Padding{content: content, pad: pad}
}

// WithStyle sets the style of the padding cells.
func (p *Padding) WithStyle(description string) *Padding {
	p.style = description
	return p
}

// Render offers the child the width minus the horizontal padding, then adds
// blank rows above and below and left padding on every line.
func (p *Padding) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	inner := max(1, width-p.pad.Horizontal())
	fill := styleOf(c, p.style)

	var out []segment.Line
	for range p.pad.Top {
		out = append(out, blankLine(width, fill))
	}
	for _, line := range render.Lines(p.content, c, opts.WithWidth(inner)) {
		if p.pad.Left > 0 {
			line = append(segment.Line{segment.Spaces(p.pad.Left, fill)}, line...)
		}
		out = append(out, line)
	}
	for range p.pad.Bottom {
		out = append(out, blankLine(width, fill))
	}
	return render.FromLines(out)
}
