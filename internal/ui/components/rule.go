package components

import (
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

// Rule renders a horizontal line across the full width, optionally with a
// centred title.
type Rule struct {
	title      string
	characters string
	style      string
}

// NewRule creates a rule. An empty title draws a plain line.
func NewRule(title string) *Rule {
	return &Rule{title: title, characters: "─", style: "rule.line"}
}

// WithCharacters sets the pattern the line is drawn with. Multi-character
// patterns are repeated and cropped to the exact width.
func (r *Rule) WithCharacters(chars string) *Rule {
	if chars != "" {
		r.characters = chars
	}
	return r
}

// WithStyle sets the line style. The default is the theme's "rule.line".
func (r *Rule) WithStyle(description string) *Rule {
	r.style = description
	return r
}

// Render draws one line of exactly the offered width.
func (r *Rule) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	lineStyle := styleOf(c, r.style)

	if r.title == "" {
		line := segment.Line{segment.New(segment.Fill(r.characters, width), lineStyle)}
		return render.FromLines([]segment.Line{line})
	}

	title := markupLine(c, " "+r.title+" ", styleOf(c, "rule.text"))
	if title.CellLength() > width {
		title = segment.CropLine(title, width)
	}
	free := width - title.CellLength()
	left := free / 2

	line := segment.Line{segment.New(segment.Fill(r.characters, left), lineStyle)}
	line = append(line, title...)
	line = append(line, segment.New(segment.Fill(r.characters, free-left), lineStyle))
	return render.FromLines([]segment.Line{line})
}
