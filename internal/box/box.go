// Package box is the registry of named box-drawing glyph sets used by bordered
// components.
package box

import (
	"maps"
	"slices"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/charmbracelet/lipgloss"
)

// None is the name that disables a border entirely.
const None = "none"

// Default is the style used for unknown names.
const Default = "rounded"

// Box is a fully populated glyph set. Edge glyphs are single cells; junction
// glyphs are used by tables to join columns and rows.
type Box struct {
	TopLeft     string
	Top         string
	TopRight    string
	Right       string
	BottomRight string
	Bottom      string
	BottomLeft  string
	Left        string

	TopMid      string
	MidMid      string
	BottomMid   string
	LeftMid     string
	RightMid    string
	Mid         string
	VerticalMid string
}

var (
	rounded = Box{
		TopLeft: "╭", Top: "─", TopRight: "╮", Right: "│",
		BottomRight: "╯", Bottom: "─", BottomLeft: "╰", Left: "│",
		TopMid: "┬", MidMid: "┼", BottomMid: "┴", LeftMid: "├", RightMid: "┤", Mid: "─", VerticalMid: "│",
	}
	heavy = Box{
		TopLeft: "┏", Top: "━", TopRight: "┓", Right: "┃",
		BottomRight: "┛", Bottom: "━", BottomLeft: "┗", Left: "┃",
		TopMid: "┳", MidMid: "╋", BottomMid: "┻", LeftMid: "┣", RightMid: "┫", Mid: "━", VerticalMid: "┃",
	}
	double = Box{
		TopLeft: "╔", Top: "═", TopRight: "╗", Right: "║",
		BottomRight: "╝", Bottom: "═", BottomLeft: "╚", Left: "║",
		TopMid: "╦", MidMid: "╬", BottomMid: "╩", LeftMid: "╠", RightMid: "╣", Mid: "═", VerticalMid: "║",
	}
	single = Box{
		TopLeft: "┌", Top: "─", TopRight: "┐", Right: "│",
		BottomRight: "┘", Bottom: "─", BottomLeft: "└", Left: "│",
		TopMid: "┬", MidMid: "┼", BottomMid: "┴", LeftMid: "├", RightMid: "┤", Mid: "─", VerticalMid: "│",
	}
	ascii = Box{
		TopLeft: "+", Top: "-", TopRight: "+", Right: "|",
		BottomRight: "+", Bottom: "-", BottomLeft: "+", Left: "|",
		TopMid: "+", MidMid: "+", BottomMid: "+", LeftMid: "+", RightMid: "+", Mid: "-", VerticalMid: "|",
	}
	minimal = Box{
		TopLeft: " ", Top: " ", TopRight: " ", Right: " ",
		BottomRight: " ", Bottom: " ", BottomLeft: " ", Left: " ",
		TopMid: " ", MidMid: " ", BottomMid: " ", LeftMid: " ", RightMid: " ", Mid: "─", VerticalMid: " ",
	}
	simple = Box{
		TopLeft: " ", Top: "─", TopRight: " ", Right: " ",
		BottomRight: " ", Bottom: "─", BottomLeft: " ", Left: " ",
		TopMid: " ", MidMid: "─", BottomMid: " ", LeftMid: " ", RightMid: " ", Mid: "─", VerticalMid: " ",
	}
	markdown = Box{
		TopLeft: " ", Top: " ", TopRight: " ", Right: "|",
		BottomRight: " ", Bottom: " ", BottomLeft: " ", Left: "|",
		TopMid: " ", MidMid: "|", BottomMid: " ", LeftMid: "|", RightMid: "|", Mid: "-", VerticalMid: "|",
	}
)

var registry = map[string]Box{
	"rounded":  rounded,
	"round":    rounded,
	"heavy":    heavy,
	"bold":     heavy,
	"double":   double,
	"single":   single,
	"square":   single,
	"ascii":    ascii,
	"minimal":  minimal,
	"simple":   simple,
	"markdown": markdown,

	"normal":           fromLipgloss(lipgloss.NormalBorder()),
	"thick":            fromLipgloss(lipgloss.ThickBorder()),
	"block":            fromLipgloss(lipgloss.BlockBorder()),
	"outer_half_block": fromLipgloss(lipgloss.OuterHalfBlockBorder()),
	"inner_half_block": fromLipgloss(lipgloss.InnerHalfBlockBorder()),
	"hidden":           fromLipgloss(lipgloss.HiddenBorder()),
}

// fromLipgloss converts a lipgloss border, filling every junction it leaves
// empty so the record is complete.
func fromLipgloss(b lipgloss.Border) Box {
	return Box{
		TopLeft:     b.TopLeft,
		Top:         b.Top,
		TopRight:    b.TopRight,
		Right:       b.Right,
		BottomRight: b.BottomRight,
		Bottom:      b.Bottom,
		BottomLeft:  b.BottomLeft,
		Left:        b.Left,
		TopMid:      orDefault(b.MiddleTop, "┬"),
		MidMid:      orDefault(b.Middle, "┼"),
		BottomMid:   orDefault(b.MiddleBottom, "┴"),
		LeftMid:     orDefault(b.MiddleLeft, "├"),
		RightMid:    orDefault(b.MiddleRight, "┤"),
		Mid:         orDefault(b.Top, "─"),
		VerticalMid: orDefault(b.Left, "│"),
	}
}

func orDefault(glyph, fallback string) string {
	if glyph == "" {
		return fallback
	}
	return glyph
}

// Get returns the glyph set for name. "none" yields nil; unknown names fall
// back to rounded.
func Get(name string) *Box {
	if name == None {
		return nil
	}
	b, ok := registry[name]
	if !ok {
		b = registry[Default]
	}
	return &b
}

// Lookup reports whether name is a registered style.
func Lookup(name string) (*Box, bool) {
	b, ok := registry[name]
	if !ok {
		return nil, false
	}
	return &b, true
}

// Names returns every registered style name, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// TopBorder draws the top edge over columns of the given cell widths.
func (b *Box) TopBorder(widths []int) string {
	return b.edge(b.TopLeft, b.Top, b.TopMid, b.TopRight, widths)
}

// Separator draws a horizontal rule between rows.
func (b *Box) Separator(widths []int) string {
	return b.edge(b.LeftMid, b.Mid, b.MidMid, b.RightMid, widths)
}

// BottomBorder draws the bottom edge.
func (b *Box) BottomBorder(widths []int) string {
	return b.edge(b.BottomLeft, b.Bottom, b.BottomMid, b.BottomRight, widths)
}

func (b *Box) edge(left, fill, junction, right string, widths []int) string {
	var sb strings.Builder
	sb.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(junction)
		}
		sb.WriteString(segment.Fill(fill, w))
	}
	sb.WriteString(right)
	return sb.String()
}
