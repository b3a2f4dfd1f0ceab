package components

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Justify controls how wrapped lines are placed within the width.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
	JustifyFull
)

// ParseJustify maps "left", "center", "right" and "full". Anything else is left.
func ParseJustify(name string) Justify {
	switch strings.ToLower(name) {
	case "center", "centre":
		return JustifyCenter
	case "right":
		return JustifyRight
	case "full":
		return JustifyFull
	default:
		return JustifyLeft
	}
}

// Overflow controls what happens to words wider than the line.
type Overflow int

const (
	OverflowFold Overflow = iota
	OverflowCrop
	OverflowEllipsis
)

// ParseOverflow maps "fold", "crop" and "ellipsis". Anything else is fold.
func ParseOverflow(name string) Overflow {
	switch strings.ToLower(name) {
	case "crop":
		return OverflowCrop
	case "ellipsis":
		return OverflowEllipsis
	default:
		return OverflowFold
	}
}

const ellipsis = "…"

// Text is styled, word-wrapped text. Wrapping works on segments so styles
// survive line breaks.
type Text struct {
	markup   string
	segments []segment.Segment
	parsed   bool
	style    string
	justify  Justify
	overflow Overflow
	noWrap   bool
}

// NewText creates text from inline markup. Tags resolve against the theme of
// the console it is rendered on.
func NewText(markup string) *Text {
	return &Text{markup: markup}
}

// TextFromSegments creates text from already styled segments.
func TextFromSegments(segs []segment.Segment) *Text {
	return &Text{segments: segs, parsed: true}
}

// WithStyle sets a base style applied underneath the markup styles.
func (t *Text) WithStyle(description string) *Text {
	t.style = description
	return t
}

// WithJustify sets line justification.
func (t *Text) WithJustify(j Justify) *Text {
	t.justify = j
	return t
}

// WithOverflow sets how over-long words are handled.
func (t *Text) WithOverflow(o Overflow) *Text {
	t.overflow = o
	return t
}

// WithNoWrap disables word wrapping; lines wider than the width are still
// subject to the overflow method.
func (t *Text) WithNoWrap(noWrap bool) *Text {
	t.noWrap = noWrap
	return t
}

// Render wraps the text to the offered width. Every line ends with a control
// newline.
func (t *Text) Render(c render.Console, opts render.Options) render.Result {
	width := max(1, render.Width(c, opts))

	segs := t.segments
	if !t.parsed {
		segs = render.Markup(t.markup).Render(c, opts).Segments
	}
	segs = segment.Apply(segs, styleOf(c, t.style))

	var out []segment.Line
	for _, paragraph := range segment.SplitLines(segs) {
		cells := toCells(paragraph)
		var wrapped [][]cell
		if t.noWrap {
			wrapped = t.overflowLine(cells, width)
		} else {
			wrapped = t.wrap(cells, width)
		}
		for i, line := range wrapped {
			last := i == len(wrapped)-1
			out = append(out, t.justifyLine(line, width, last))
		}
	}
	return render.FromLines(out)
}

// cell is one grapheme with its style.
type cell struct {
	text  string
	width int
	style style.Style
}

func (c cell) isSpace() bool { return c.text == " " || c.text == "\t" }

func toCells(line segment.Line) []cell {
	var out []cell
	for _, seg := range line {
		if seg.Control {
			continue
		}
		for _, g := range segment.Graphemes(seg.Text) {
			out = append(out, cell{text: g.Text, width: g.Width, style: seg.Style})
		}
	}
	return out
}

func cellsWidth(cells []cell) int {
	w := 0
	for _, c := range cells {
		w += c.width
	}
	return w
}

func trimTrailingSpace(cells []cell) []cell {
	for len(cells) > 0 && cells[len(cells)-1].isSpace() {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// tokens splits cells into alternating runs of spaces and non-spaces.
func tokens(cells []cell) [][]cell {
	var out [][]cell
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i == len(cells) || cells[i].isSpace() != cells[start].isSpace() {
			out = append(out, cells[start:i])
			start = i
		}
	}
	return out
}

// wrap is a greedy word wrap. Whitespace at a wrap point is dropped; words
// wider than the line are handled by the overflow method.
func (t *Text) wrap(cells []cell, width int) [][]cell {
	var lines [][]cell
	var current []cell
	used := 0
	flush := func() {
		lines = append(lines, trimTrailingSpace(current))
		current = nil
		used = 0
	}

	for _, tok := range tokens(cells) {
		w := cellsWidth(tok)
		if tok[0].isSpace() {
			if used+w <= width {
				current = append(current, tok...)
				used += w
			} else if used > 0 {
				flush()
			}
			continue
		}
		if used+w <= width {
			current = append(current, tok...)
			used += w
			continue
		}
		if used > 0 {
			flush()
		}
		if w <= width {
			current = append(current, tok...)
			used = w
			continue
		}
		pieces := t.overflowLine(tok, width)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = append([]cell(nil), pieces[len(pieces)-1]...)
		used = cellsWidth(current)
	}
	if len(current) > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// overflowLine fits cells wider than width using the overflow method.
func (t *Text) overflowLine(cells []cell, width int) [][]cell {
	if cellsWidth(cells) <= width {
		return [][]cell{cells}
	}
	switch t.overflow {
	case OverflowCrop:
		return [][]cell{cropCells(cells, width)}
	case OverflowEllipsis:
		kept := cropCells(cells, width-1)
		st := style.Null()
		if len(kept) > 0 {
			st = kept[len(kept)-1].style
		}
		return [][]cell{append(kept, cell{text: ellipsis, width: 1, style: st})}
	default:
		return foldCells(cells, width)
	}
}

func cropCells(cells []cell, width int) []cell {
	used := 0
	for i, c := range cells {
		if used+c.width > width {
			return cells[:i]
		}
		used += c.width
	}
	return cells
}

func foldCells(cells []cell, width int) [][]cell {
	var out [][]cell
	for len(cells) > 0 {
		chunk := cropCells(cells, width)
		if len(chunk) == 0 {
			chunk = cells[:1]
		}
		out = append(out, chunk)
		cells = cells[len(chunk):]
	}
	return out
}

// justifyLine converts cells back to segments, merging runs of equal style,
// and places the line in width. Full justification leaves the last line of a
// paragraph ragged.
func (t *Text) justifyLine(cells []cell, width int, last bool) segment.Line {
	switch t.justify {
	case JustifyCenter:
		return alignLine(toLine(cells), width, AlignCenter, style.Null())
	case JustifyRight:
		return alignLine(toLine(cells), width, AlignRight, style.Null())
	case JustifyFull:
		if !last {
			return toLine(expandGaps(cells, width))
		}
	}
	return toLine(cells)
}

// expandGaps widens the spaces between words until the line fills width.
func expandGaps(cells []cell, width int) []cell {
	toks := tokens(cells)
	var gaps []int
	for i, tok := range toks {
		if tok[0].isSpace() && i > 0 && i < len(toks)-1 {
			gaps = append(gaps, i)
		}
	}
	extra := width - cellsWidth(cells)
	if len(gaps) == 0 || extra <= 0 {
		return cells
	}
	each, rest := extra/len(gaps), extra%len(gaps)
	for n, i := range gaps {
		add := each
		if n < rest {
			add++
		}
		fill := make([]cell, add)
		for k := range fill {
			fill[k] = cell{text: " ", width: 1, style: toks[i][0].style}
		}
		toks[i] = append(append([]cell(nil), toks[i]...), fill...)
	}
	var out []cell
	for _, tok := range toks {
		out = append(out, tok...)
	}
	return out
}

func toLine(cells []cell) segment.Line {
	line := segment.Line{}
	var b strings.Builder
	for i, c := range cells {
		if i > 0 && c.style != cells[i-1].style {
			line = append(line, segment.New(b.String(), cells[i-1].style))
			b.Reset()
		}
		b.WriteString(c.text)
	}
	if b.Len() > 0 {
		line = append(line, segment.New(b.String(), cells[len(cells)-1].style))
	}
	return line
}
