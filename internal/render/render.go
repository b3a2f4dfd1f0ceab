// Package render defines the protocol every component implements: given a
// console context and layout options, produce a flat list of segments.
package render

import (
	"iter"
	"slices"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/prism/internal/markup"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

// DefaultWidth is used when neither the options nor the console know a width.
const DefaultWidth = 80

// Console is the context a renderable may consult for fallbacks.
type Console interface {
	Width() int
	Height() int
	Theme() *theme.Theme
}

// Options carry the layout constraints offered by a parent. Zero means unset;
// Height is advisory.
type Options struct {
	Width  int
	Height int
}

// WithWidth returns a copy with Width replaced.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithHeight returns a copy with Height replaced.
func (o Options) WithHeight(height int) Options {
	o.Height = height
	return o
}

// Result is the output of one render pass.
type Result struct {
	Segments []segment.Segment
	Width    int
	Height   int
}

// Renderable is implemented by every component.
type Renderable interface {
	Render(c Console, opts Options) Result
}

// Func adapts a plain function to Renderable.
type Func func(c Console, opts Options) Result

// Render calls f.
func (f Func) Render(c Console, opts Options) Result { return f(c, opts) }

// Stream is a renderable that yields its segments lazily. Render drains it.
type Stream func(c Console, opts Options) iter.Seq[segment.Segment]

// Render collects the stream into a result.
func (s Stream) Render(c Console, opts Options) Result {
	return NewResult(slices.Collect(s(c, opts)))
}

// Str is plain text rendered verbatim, without markup.
type Str string

// Render emits the text as one unstyled segment.
func (s Str) Render(Console, Options) Result {
	if s == "" {
		return Result{}
	}
	return NewResult([]segment.Segment{segment.Plain(string(s))})
}

// Markup is text in inline markup, resolved against the console theme.
type Markup string

// Render parses the markup.
func (m Markup) Render(c Console, _ Options) Result {
	return NewResult(markup.NewParser(ThemeOf(c)).Parse(string(m)))
}

// NewResult wraps segments, measuring the widest line and the line count.
func NewResult(segs []segment.Segment) Result {
	lines := segment.SplitLines(segs)
	width := 0
	for _, line := range lines {
		width = max(width, line.CellLength())
	}
	return Result{Segments: segs, Width: width, Height: len(lines)}
}

// FromLines joins lines into a result with a control newline after each.
func FromLines(lines []segment.Line) Result {
	width := 0
	for _, line := range lines {
		width = max(width, line.CellLength())
	}
	return Result{Segments: segment.JoinLines(lines), Width: width, Height: len(lines)}
}

// Width resolves the width offered to a renderable: the explicit option,
// else the console width, else DefaultWidth.
func Width(c Console, opts Options) int {
	if opts.Width > 0 {
		return opts.Width
	}
	if c != nil && c.Width() > 0 {
		return c.Width()
	}
	return DefaultWidth
}

// Height resolves the advisory height the same way Width does. Zero means
// unknown.
func Height(c Console, opts Options) int {
	if opts.Height > 0 {
		return opts.Height
	}
	if c != nil {
		return c.Height()
	}
	return 0
}

// ThemeOf returns the console theme, or the default theme.
func ThemeOf(c Console) *theme.Theme {
	if c != nil {
		if th := c.Theme(); th != nil {
			return th
		}
	}
	return theme.Default()
}

// ProfileOf returns the colour profile of consoles that report one, else
// TrueColor.
func ProfileOf(c Console) termenv.Profile {
	if p, ok := c.(interface{ Profile() termenv.Profile }); ok {
		return p.Profile()
	}
	return termenv.TrueColor
}

// Lines renders r and splits the output into lines.
func Lines(r Renderable, c Console, opts Options) []segment.Line {
	if r == nil {
		return nil
	}
	return segment.SplitLines(r.Render(c, opts).Segments)
}

// Plain renders r and returns its raw text with styling dropped.
func Plain(r Renderable, c Console, opts Options) string {
	if r == nil {
		return ""
	}
	return segment.Text(r.Render(c, opts).Segments)
}

// Fixed is a Console with constant dimensions, used where no terminal is
// attached.
type Fixed struct {
	W      int
	H      int
	Styles *theme.Theme
	// Colors is the reported colour profile; the zero value is TrueColor.
	Colors termenv.Profile
}

// Width implements Console.
func (f Fixed) Width() int { return f.W }

// Height implements Console.
func (f Fixed) Height() int { return f.H }

// Theme implements Console.
func (f Fixed) Theme() *theme.Theme {
	if f.Styles == nil {
		return theme.Default()
	}
	return f.Styles
}

// Profile reports the colour profile.
func (f Fixed) Profile() termenv.Profile { return f.Colors }
