// Package theme holds the named-style and named-colour tables consulted when
// markup tags and component defaults are resolved.
package theme

import (
	"maps"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Entry is a theme value: either a raw style description, resolved against the
// palette on every lookup, or a prebuilt Style.
type Entry struct {
	raw   string
	style style.Style
	isRaw bool
}

// Raw returns an entry holding a style description such as "bold primary".
func Raw(description string) Entry { return Entry{raw: description, isRaw: true} }

// Of returns an entry holding a prebuilt style.
func Of(st style.Style) Entry { return Entry{style: st} }

// Theme maps tag names to styles with a palette fallback. A Theme is
// read-only once constructed.
type Theme struct {
	styles  map[string]Entry
	palette *Palette
}

// New builds a theme. A nil palette means no colour fallback.
func New(styles map[string]Entry, palette *Palette) *Theme {
	t := &Theme{styles: make(map[string]Entry, len(styles)), palette: palette}
	maps.Copy(t.styles, styles)
	return t
}

// Default returns the built-in theme over the default palette.
func Default() *Theme {
	return New(map[string]Entry{
		"none":       Raw("none"),
		"dim":        Raw("dim"),
		"bright":     Raw("bold"),
		"danger":     Raw("bold red"),
		"success":    Raw("bold green"),
		"warning":    Raw("bold yellow"),
		"info":       Raw("cyan"),
		"rule.line":  Raw("green"),
		"repr.str":   Raw("green"),
		"repr.brace": Raw("bold"),
	}, DefaultPalette())
}

// FromPalette builds the semantic styles (danger, success, warning, info) from
// the palette's colours of the same name.
func FromPalette(p *Palette) *Theme {
	styles := map[string]Entry{}
	for _, name := range []string{"danger", "success", "warning"} {
		if _, ok := p.Get(name); ok {
			styles[name] = Raw("bold " + name)
		}
	}
	if _, ok := p.Get("info"); ok {
		styles["info"] = Raw("info")
	}
	return New(styles, p)
}

// Extend returns a copy of the theme with extra entries layered on top.
func (t *Theme) Extend(styles map[string]Entry) *Theme {
	out := New(t.styles, t.palette)
	maps.Copy(out.styles, styles)
	return out
}

// WithPalette returns a copy of the theme using a different palette.
func (t *Theme) WithPalette(p *Palette) *Theme {
	return New(t.styles, p)
}

// Palette returns the fallback palette, possibly nil.
func (t *Theme) Palette() *Palette {
	if t == nil {
		return nil
	}
	return t.palette
}

// Names returns the style names in sorted order.
func (t *Theme) Names() []string {
	if t == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(t.styles))
}

// Get resolves name to a style, returning the null style when nothing matches.
func (t *Theme) Get(name string) style.Style {
	st, _ := t.Lookup(name)
	return st
}

// Lookup resolves name against the style map, then the palette. The boolean
// reports whether either matched.
func (t *Theme) Lookup(name string) (style.Style, bool) {
	if t == nil {
		return style.Null(), false
	}
	if entry, ok := t.styles[name]; ok {
		if entry.isRaw {
			return t.Parse(entry.raw), true
		}
		return entry.style, true
	}
	if color, ok := t.palette.Get(name); ok {
		return style.Parse(color), true
	}
	return style.Null(), false
}

// Resolve treats description as a style name first and falls back to parsing
// it as a style expression.
func (t *Theme) Resolve(description string) style.Style {
	if st, ok := t.Lookup(description); ok {
		return st
	}
	return t.Parse(description)
}

// Parse parses a style description after replacing palette names with their
// colour values. "on_<name>" is accepted as a spelling of "on <name>".
func (t *Theme) Parse(description string) style.Style {
	return style.Parse(t.substitute(description))
}

func (t *Theme) substitute(description string) string {
	palette := t.Palette()
	words := strings.Fields(description)
	out := make([]string, 0, len(words))
	for _, word := range words {
		if name, ok := strings.CutPrefix(word, "on_"); ok {
			if color, found := palette.Get(name); found {
				out = append(out, "on", color)
				continue
			}
		}
		if color, ok := palette.Get(word); ok {
			out = append(out, color)
			continue
		}
		out = append(out, word)
	}
	return strings.Join(out, " ")
}
