// Package markdown renders Markdown documents through glamour.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

// DefaultStyle is the glamour style used when none is set.
const DefaultStyle = "dark"

// gutter is the left margin glamour adds to every block.
const gutter = 2

// Markdown is a Markdown document rendered at the offered width.
type Markdown struct {
	source string
	style  string
}

// New creates a Markdown renderable.
func New(source string) *Markdown {
	return &Markdown{source: source, style: DefaultStyle}
}

// WithStyle selects a glamour standard style ("dark", "light", "notty", ...).
func (m *Markdown) WithStyle(name string) *Markdown {
	if name != "" {
		m.style = name
	}
	return m
}

// Render word-wraps the document to the width. If glamour fails the source
// is shown unformatted.
func (m *Markdown) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	out, err := m.format(width)
	if err != nil {
		out = m.source
	}

	var lines []segment.Line
	for _, text := range strings.Split(strings.Trim(out, "\n"), "\n") {
		text = strings.TrimRight(ansi.Truncate(text, width, ""), " ")
		line := segment.Line{}
		if text != "" {
			line = append(line, segment.Plain(text))
		}
		lines = append(lines, line)
	}
	return render.FromLines(lines)
}

func (m *Markdown) format(width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(max(1, width-gutter)),
	)
	if err != nil {
		return "", err
	}
	return r.Render(m.source)
}
