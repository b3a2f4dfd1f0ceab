package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// widthCondition fixes ambiguous-width characters (box drawing, most
// symbols) to one cell regardless of the user's locale.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

// CellWidth returns the number of terminal cells text occupies, measured per
// grapheme cluster. Embedded escape sequences are ignored so pre-styled text
// measures correctly.
func CellWidth(text string) int {
	if text == "" {
		return 0
	}
	if strings.IndexByte(text, '\x1b') >= 0 {
		text = ansi.Strip(text)
	}
	width := 0
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		width += clusterWidth(cluster, w)
	}
	return width
}

// clusterWidth sizes one grapheme cluster. Single code points use the fixed
// runewidth condition; sequences (VS16 emoji, ZWJ joins, flags, combining
// marks) take the cluster width from uniseg.
func clusterWidth(cluster string, clusterW int) int {
	if r, size := utf8.DecodeRuneInString(cluster); size == len(cluster) {
		return widthCondition.RuneWidth(r)
	}
	return clusterW
}

// Grapheme is one user-perceived character and its cell width.
type Grapheme struct {
	Text  string
	Width int
}

// Graphemes splits text into grapheme clusters with their widths.
func Graphemes(text string) []Grapheme {
	out := make([]Grapheme, 0, len(text))
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, Grapheme{Text: cluster, Width: clusterWidth(cluster, w)})
	}
	return out
}

// Crop returns the longest prefix of text that fits in width cells.
func Crop(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if CellWidth(text) <= width {
		return text
	}
	var b strings.Builder
	used := 0
	for _, g := range Graphemes(text) {
		if used+g.Width > width {
			break
		}
		b.WriteString(g.Text)
		used += g.Width
	}
	return b.String()
}

// Fill returns a run of exactly width cells made by repeating pattern.
// Wide pattern characters that would overshoot are replaced with spaces.
func Fill(pattern string, width int) string {
	if width <= 0 {
		return ""
	}
	pw := CellWidth(pattern)
	if pw <= 0 {
		return strings.Repeat(" ", width)
	}
	run := strings.Repeat(pattern, width/pw+1)
	out := Crop(run, width)
	if short := width - CellWidth(out); short > 0 {
		out += strings.Repeat(" ", short)
	}
	return out
}
