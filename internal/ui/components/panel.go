package components

import (
	"github.com/alexisbeaulieu97/prism/internal/box"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Panel draws a box border around a child, with an optional title in the top
// edge and subtitle in the bottom edge.
type Panel struct {
	content       render.Renderable
	title         string
	titleAlign    Alignment
	subtitle      string
	subtitleAlign Alignment
	box           string
	style         string
	borderStyle   string
	padding       Spacing
	width         int
	height        int
	expand        bool
}

// NewPanel creates a panel that expands to the full offered width.
func NewPanel(content render.Renderable) *Panel {
	return &Panel{
		content:       content,
		titleAlign:    AlignCenter,
		subtitleAlign: AlignCenter,
		box:           box.Default,
		borderStyle:   "dim",
		padding:       UniformSpacing(1),
		expand:        true,
	}
}

// FitPanel creates a panel that shrinks to its content.
func FitPanel(content render.Renderable) *Panel {
	return NewPanel(content).WithExpand(false)
}

// WithTitle sets the markup title drawn in the top border.
func (p *Panel) WithTitle(title string) *Panel {
	p.title = title
	return p
}

// WithTitleAlign sets where the title sits in the top border.
func (p *Panel) WithTitleAlign(a Alignment) *Panel {
	p.titleAlign = a
	return p
}

// WithSubtitle sets the markup subtitle drawn in the bottom border.
func (p *Panel) WithSubtitle(subtitle string) *Panel {
	p.subtitle = subtitle
	return p
}

// WithSubtitleAlign sets where the subtitle sits in the bottom border.
func (p *Panel) WithSubtitleAlign(a Alignment) *Panel {
	p.subtitleAlign = a
	return p
}

// WithBox selects the border glyphs by registry name. "none" hides the panel.
func (p *Panel) WithBox(name string) *Panel {
	p.box = name
	return p
}

// WithStyle sets a style applied underneath the content and padding.
func (p *Panel) WithStyle(description string) *Panel {
	p.style = description
	return p
}

// WithBorderStyle sets the border style.
func (p *Panel) WithBorderStyle(description string) *Panel {
	p.borderStyle = description
	return p
}

// WithPadding sets the space between border and content.
func (p *Panel) WithPadding(pad Spacing) *Panel {
	p.padding = pad
	return p
}

// WithWidth fixes the maximum panel width regardless of the offered width.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// WithHeight fixes the panel height; content is blank-filled or cut to fit.
func (p *Panel) WithHeight(height int) *Panel {
	p.height = height
	return p
}

// WithExpand controls whether the panel fills the offered width.
func (p *Panel) WithExpand(expand bool) *Panel {
	p.expand = expand
	return p
}

// Render renders the content against the inner width first, then sizes the
// border around it.
func (p *Panel) Render(c render.Console, opts render.Options) render.Result {
	glyphs := box.Get(p.box)
	if glyphs == nil {
		return render.Result{}
	}

	maxWidth := render.Width(c, opts)
	if p.width > 0 {
		maxWidth = p.width
	}
	border := styleOf(c, p.borderStyle)
	base := styleOf(c, p.style)
	pad := p.padding

	contentWidth := max(1, maxWidth-2-pad.Horizontal())
	lines := render.Lines(p.content, c, opts.WithWidth(contentWidth))

	title := p.edgeLabel(c, p.title, "bold")
	subtitle := p.edgeLabel(c, p.subtitle, "dim italic")

	panelWidth := maxWidth
	if !p.expand {
		widest := 0
		for _, line := range lines {
			widest = max(widest, line.CellLength())
		}
		panelWidth = min(maxWidth, max(
			widest+2+pad.Horizontal(),
			labelMeasure(title)+2,
			labelMeasure(subtitle)+2,
		))
	}
	inner := max(0, panelWidth-2)
	lineWidth := max(0, inner-pad.Horizontal())

	if p.height > 0 {
		lines = fitHeight(lines, max(1, p.height-2-pad.Vertical()))
	}

	row := func(content segment.Line) segment.Line {
		out := segment.Line{segment.New(glyphs.Left, border)}
		out = append(out, content...)
		return append(out, segment.New(glyphs.Right, border))
	}
	blank := row(blankLine(inner, base))

	out := []segment.Line{p.edge(glyphs.TopLeft, glyphs.Top, glyphs.TopRight, title, p.titleAlign, inner, border)}
	for range pad.Top {
		out = append(out, blank)
	}
	for _, line := range lines {
		content := segment.Line{}
		if pad.Left > 0 {
			content = append(content, segment.Spaces(pad.Left, base))
		}
		content = append(content, segment.PadLine(segment.Line(segment.Apply(line, base)), lineWidth, base)...)
		if pad.Right > 0 {
			content = append(content, segment.Spaces(pad.Right, base))
		}
		out = append(out, row(content))
	}
	if len(lines) == 0 {
		out = append(out, blank)
	}
	for range pad.Bottom {
		out = append(out, blank)
	}
	out = append(out, p.edge(glyphs.BottomLeft, glyphs.Bottom, glyphs.BottomRight, subtitle, p.subtitleAlign, inner, border))

	res := render.FromLines(out)
	res.Width = panelWidth
	return res
}

// edgeLabel renders " label " in the given style, or nil for no label.
func (p *Panel) edgeLabel(c render.Console, label, description string) segment.Line {
	if label == "" {
		return nil
	}
	return markupLine(c, " "+label+" ", styleOf(c, description))
}

// labelMeasure is the room a label claims when the panel fits its content:
// the label plus one border cell either side.
func labelMeasure(label segment.Line) int {
	if label == nil {
		return 0
	}
	return label.CellLength() + 2
}

// edge draws a top or bottom border with an embedded label.
func (p *Panel) edge(left, fill, right string, label segment.Line, align Alignment, inner int, border style.Style) segment.Line {
	if label.CellLength() > inner {
		label = segment.CropLine(label, inner)
	}
	before, after := align.split(inner - label.CellLength())
	out := segment.Line{segment.New(left+segment.Fill(fill, before), border)}
	out = append(out, label...)
	return append(out, segment.New(segment.Fill(fill, after)+right, border))
}

// fitHeight blank-fills or cuts lines to exactly height rows.
func fitHeight(lines []segment.Line, height int) []segment.Line {
	if len(lines) >= height {
		return lines[:height]
	}
	out := append([]segment.Line(nil), lines...)
	for len(out) < height {
		out = append(out, segment.Line{})
	}
	return out
}
