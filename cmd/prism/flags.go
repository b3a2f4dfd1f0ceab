package main

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

// renderOptions holds the flags that choose how a resource is rendered.
type renderOptions struct {
	print       bool
	markdown    bool
	json        bool
	syntax      bool
	lineNumbers bool
	theme       string
	lexer       string
	panel       string
	title       string
	caption     string
	width       int
	left        bool
	center      bool
	right       bool
	padding     string
	style       string
}

func bindRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	f := cmd.Flags()
	f.BoolVarP(&opts.print, "print", "p", false, "Print console markup")
	f.BoolVarP(&opts.markdown, "markdown", "m", false, "Render as markdown")
	f.BoolVarP(&opts.json, "json", "J", false, "Render as JSON")
	f.BoolVarP(&opts.syntax, "syntax", "s", false, "Force syntax highlighting")
	f.BoolVarP(&opts.lineNumbers, "line-numbers", "n", false, "Show line numbers (for syntax highlighting)")
	f.StringVar(&opts.theme, "theme", "", "Syntax theme (monokai, dracula, github-light, onedark)")
	f.StringVarP(&opts.lexer, "lexer", "x", "", "Lexer for syntax highlighting")
	f.StringVarP(&opts.panel, "panel", "a", "", "Wrap output in a panel with this box style (rounded, heavy, double, square, ...)")
	f.StringVar(&opts.title, "title", "", "Panel title")
	f.StringVar(&opts.caption, "caption", "", "Panel caption")
	f.IntVarP(&opts.width, "width", "w", 0, "Output width")
	f.BoolVarP(&opts.left, "left", "l", false, "Align output to the left")
	f.BoolVarP(&opts.center, "center", "c", false, "Align output to the centre")
	f.BoolVarP(&opts.right, "right", "r", false, "Align output to the right")
	f.StringVarP(&opts.padding, "padding", "d", "", "Padding: one value, or top,right,bottom,left")
	f.StringVarP(&opts.style, "style", "S", "", "Style applied to the output (the border when --panel is set)")
}

var errPadding = errors.New("padding should be 1, 2, or 4 comma-separated values")

// parsePadding reads "1", "1,2" or "1,2,3,4".
func parsePadding(value string) (components.Spacing, error) {
	parts := strings.Split(value, ",")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return components.Spacing{}, errPadding
		}
		values = append(values, n)
	}
	pad, err := components.ParseSpacing(values...)
	if err != nil {
		return components.Spacing{}, errPadding
	}
	return pad, nil
}

// alignment resolves the alignment flags. Right wins over centre, which wins
// over left.
func (o *renderOptions) alignment() (components.Alignment, bool) {
	switch {
	case o.right:
		return components.AlignRight, true
	case o.center:
		return components.AlignCenter, true
	case o.left:
		return components.AlignLeft, true
	default:
		return components.AlignLeft, false
	}
}
