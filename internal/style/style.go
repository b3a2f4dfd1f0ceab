// Package style implements the immutable text attribute bag used by every
// renderer: colours, boolean modifiers, override-combine and ANSI rendering.
package style

import (
	"strings"

	"github.com/muesli/termenv"
)

// Attribute is a boolean text modifier.
type Attribute uint16

const (
	Bold Attribute = 1 << iota
	Italic
	Underline
	Strikethrough
	Dim
	Reverse
	Blink
	Hidden
)

// attributeOrder is the fixed order modifiers are applied in when rendering.
var attributeOrder = []Attribute{Bold, Italic, Underline, Strikethrough, Dim, Reverse, Blink, Hidden}

var modifierWords = map[string]Attribute{
	"bold":          Bold,
	"italic":        Italic,
	"underline":     Underline,
	"strike":        Strikethrough,
	"strikethrough": Strikethrough,
	"dim":           Dim,
	"reverse":       Reverse,
	"blink":         Blink,
	"hidden":        Hidden,
}

// Style is an immutable set of optional attributes. Every attribute is either
// unset or explicitly set; unset attributes fall through in Combine.
// The zero value is the null style.
type Style struct {
	fg    Color
	bg    Color
	set   Attribute
	value Attribute
}

// Null returns the style with every attribute unset.
func Null() Style { return Style{} }

// New returns a style with the given modifiers switched on.
func New(attrs ...Attribute) Style {
	var s Style
	for _, a := range attrs {
		s = s.With(a, true)
	}
	return s
}

// Parse builds a style from a whitespace separated description such as
// "bold red on #202020". Unrecognised tokens are skipped.
func Parse(description string) Style {
	words := strings.Fields(description)
	var s Style
	for i := 0; i < len(words); i++ {
		word := words[i]
		if word == "none" {
			continue
		}
		if attr, ok := modifierWords[word]; ok {
			s = s.With(attr, true)
			continue
		}
		if word == "on" {
			if i+1 < len(words) {
				if bg, ok := ParseColor(words[i+1]); ok {
					s.bg = bg
					i++
				}
			}
			continue
		}
		if fg, ok := ParseColor(word); ok {
			s.fg = fg
		}
	}
	return s
}

// With returns a copy with the attribute explicitly set to value.
func (s Style) With(attr Attribute, value bool) Style {
	s.set |= attr
	if value {
		s.value |= attr
	} else {
		s.value &^= attr
	}
	return s
}

// WithForeground returns a copy with the foreground colour replaced.
func (s Style) WithForeground(c Color) Style {
	s.fg = c
	return s
}

// WithBackground returns a copy with the background colour replaced.
func (s Style) WithBackground(c Color) Style {
	s.bg = c
	return s
}

// Foreground returns the foreground colour and whether it is set.
func (s Style) Foreground() (Color, bool) { return s.fg, !s.fg.IsZero() }

// Background returns the background colour and whether it is set.
func (s Style) Background() (Color, bool) { return s.bg, !s.bg.IsZero() }

// Attr returns the value of a modifier and whether it is set at all.
func (s Style) Attr(attr Attribute) (value bool, ok bool) {
	return s.value&attr != 0, s.set&attr != 0
}

// Has reports whether a modifier is set and true.
func (s Style) Has(attr Attribute) bool {
	return s.set&attr != 0 && s.value&attr != 0
}

// IsNull reports whether no attribute is set.
func (s Style) IsNull() bool { return s == Style{} }

// Combine returns a new style where every attribute set in other replaces
// the corresponding attribute of s.
func (s Style) Combine(other Style) Style {
	out := s
	if !other.fg.IsZero() {
		out.fg = other.fg
	}
	if !other.bg.IsZero() {
		out.bg = other.bg
	}
	out.set |= other.set
	out.value = (s.value &^ other.set) | (other.value & other.set)
	return out
}

// String renders the style back into Parse notation.
func (s Style) String() string {
	var parts []string
	for _, attr := range attributeOrder {
		if s.Has(attr) {
			parts = append(parts, attr.String())
		}
	}
	if !s.fg.IsZero() {
		parts = append(parts, s.fg.String())
	}
	if !s.bg.IsZero() {
		parts = append(parts, "on", s.bg.String())
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// Render wraps text in escape sequences at full colour fidelity.
func (s Style) Render(text string) string {
	return s.RenderFor(termenv.TrueColor, text)
}

// RenderFor wraps text for the given colour profile: foreground, background,
// then modifiers in a fixed order. The Ascii profile returns text unchanged.
func (s Style) RenderFor(profile termenv.Profile, text string) string {
	if s.IsNull() || text == "" || profile == termenv.Ascii {
		return text
	}
	out := profile.String()
	if c := s.fg.terminal(profile); c != nil {
		out = out.Foreground(c)
	}
	if c := s.bg.terminal(profile); c != nil {
		out = out.Background(c)
	}
	if s.Has(Bold) {
		out = out.Bold()
	}
	if s.Has(Italic) {
		out = out.Italic()
	}
	if s.Has(Underline) {
		out = out.Underline()
	}
	if s.Has(Strikethrough) {
		out = out.CrossOut()
	}
	if s.Has(Dim) {
		out = out.Faint()
	}
	if s.Has(Reverse) {
		out = out.Reverse()
	}
	if s.Has(Blink) {
		out = out.Blink()
	}
	if s.Has(Hidden) {
		// termenv has no conceal modifier.
		return termenv.CSI + "8m" + out.Styled(text) + termenv.CSI + termenv.ResetSeq + "m"
	}
	return out.Styled(text)
}

func (a Attribute) String() string {
	switch a {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Underline:
		return "underline"
	case Strikethrough:
		return "strike"
	case Dim:
		return "dim"
	case Reverse:
		return "reverse"
	case Blink:
		return "blink"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}
