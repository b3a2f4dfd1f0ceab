// Package segment defines the styled text run exchanged by every renderer and
// the helpers that split a run stream into lines.
package segment

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/muesli/termenv"
)

// Segment is an immutable run of text with a style. Control segments
// occupy no cells but are still emitted (e.g. line breaks).
type Segment struct {
	Text    string
	Style   style.Style
	Control bool
}

// New returns a styled text segment.
func New(text string, st style.Style) Segment {
	return Segment{Text: text, Style: st}
}

// Plain returns a segment with the null style.
func Plain(text string) Segment {
	return Segment{Text: text}
}

// Newline returns the zero-width line break marker.
func Newline() Segment {
	return Segment{Text: "\n", Control: true}
}

// Spaces returns a run of n spaces in the given style.
func Spaces(n int, st style.Style) Segment {
	if n < 0 {
		n = 0
	}
	return Segment{Text: strings.Repeat(" ", n), Style: st}
}

// CellLength is the display width of the segment; zero for control segments.
func (s Segment) CellLength() int {
	if s.Control {
		return 0
	}
	return CellWidth(s.Text)
}

// Render returns the text wrapped in escape sequences at full colour fidelity.
func (s Segment) Render() string {
	return s.RenderFor(termenv.TrueColor)
}

// RenderFor renders for a colour profile. Control text passes through untouched.
func (s Segment) RenderFor(profile termenv.Profile) string {
	if s.Control {
		return s.Text
	}
	return s.Style.RenderFor(profile, s.Text)
}

// SplitLines splits the segment on embedded newlines into one segment per piece.
func (s Segment) SplitLines() []Segment {
	parts := strings.Split(s.Text, "\n")
	out := make([]Segment, len(parts))
	for i, part := range parts {
		out[i] = Segment{Text: part, Style: s.Style, Control: s.Control}
	}
	return out
}

// WithText returns a copy with different text.
func (s Segment) WithText(text string) Segment {
	s.Text = text
	return s
}

// WithStyle returns a copy with a different style.
func (s Segment) WithStyle(st style.Style) Segment {
	s.Style = st
	return s
}

// WithControl returns a copy with the control flag replaced.
func (s Segment) WithControl(control bool) Segment {
	s.Control = control
	return s
}

// CellLength sums the widths of a list of segments.
func CellLength(segments []Segment) int {
	total := 0
	for _, s := range segments {
		total += s.CellLength()
	}
	return total
}

// Text concatenates the raw text of the segments.
func Text(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Apply combines st underneath every non-control segment: the segment's own
// attributes win.
func Apply(segments []Segment, st style.Style) []Segment {
	if st.IsNull() {
		return segments
	}
	out := make([]Segment, len(segments))
	for i, s := range segments {
		if !s.Control {
			s.Style = st.Combine(s.Style)
		}
		out[i] = s
	}
	return out
}

// Overlay combines st on top of every non-control segment: st wins.
func Overlay(segments []Segment, st style.Style) []Segment {
	if st.IsNull() {
		return segments
	}
	out := make([]Segment, len(segments))
	for i, s := range segments {
		if !s.Control {
			s.Style = s.Style.Combine(st)
		}
		out[i] = s
	}
	return out
}
