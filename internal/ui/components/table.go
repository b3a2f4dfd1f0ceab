package components

import (
	"github.com/alexisbeaulieu97/prism/internal/box"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// VerticalAlign places a short cell within a taller row.
type VerticalAlign int

const (
	VerticalTop VerticalAlign = iota
	VerticalMiddle
	VerticalBottom
)

// Column describes one table column. Width, MinWidth, MaxWidth, Ratio, NoWrap
// and Overflow are recorded but every column is given the same width.
type Column struct {
	Header      string
	Footer      string
	Style       string
	HeaderStyle string
	FooterStyle string
	Justify     Alignment
	Vertical    VerticalAlign
	Width       int
	MinWidth    int
	MaxWidth    int
	Ratio       int
	NoWrap      bool
	Overflow    Overflow
}

// Table renders rows of cells in equal-width bordered columns.
type Table struct {
	columns      []Column
	rows         [][]render.Renderable
	footer       []render.Renderable
	title        string
	caption      string
	box          string
	showHeader   bool
	showFooter   bool
	showLines    bool
	borderStyle  string
	headerStyle  string
	footerStyle  string
	titleStyle   string
	captionStyle string
	rowStyles    []string
	padding      int
}

// NewTable creates an empty table with a rounded border.
func NewTable() *Table {
	return &Table{
		box:          box.Default,
		showHeader:   true,
		borderStyle:  "dim",
		headerStyle:  "bold cyan",
		footerStyle:  "bold",
		titleStyle:   "bold",
		captionStyle: "dim italic",
		padding:      1,
	}
}

// AddColumn appends a column.
func (t *Table) AddColumn(col Column) *Table {
	t.columns = append(t.columns, col)
	return t
}

// AddColumns appends left-justified columns with the given headers.
func (t *Table) AddColumns(headers ...string) *Table {
	for _, h := range headers {
		t.AddColumn(Column{Header: h})
	}
	return t
}

// AddRow appends a row. Str and Markup cells are text, aligned by the column;
// other renderables are rendered at the column width.
func (t *Table) AddRow(cells ...render.Renderable) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// AddTextRow appends a row of markup cells.
func (t *Table) AddTextRow(cells ...string) *Table {
	row := make([]render.Renderable, len(cells))
	for i, c := range cells {
		row[i] = render.Markup(c)
	}
	return t.AddRow(row...)
}

// AddFooter sets the footer row and turns the footer on.
func (t *Table) AddFooter(cells ...render.Renderable) *Table {
	t.footer = cells
	t.showFooter = true
	return t
}

// WithTitle sets the centred line above the table.
func (t *Table) WithTitle(title string) *Table {
	t.title = title
	return t
}

// WithCaption sets the centred line below the table.
func (t *Table) WithCaption(caption string) *Table {
	t.caption = caption
	return t
}

// WithBox selects the border glyphs. "none" hides the table.
func (t *Table) WithBox(name string) *Table {
	t.box = name
	return t
}

// WithShowHeader toggles the header block.
func (t *Table) WithShowHeader(show bool) *Table {
	t.showHeader = show
	return t
}

// WithShowFooter toggles the footer block.
func (t *Table) WithShowFooter(show bool) *Table {
	t.showFooter = show
	return t
}

// WithShowLines draws a separator between data rows.
func (t *Table) WithShowLines(show bool) *Table {
	t.showLines = show
	return t
}

// WithBorderStyle sets the border style.
func (t *Table) WithBorderStyle(description string) *Table {
	t.borderStyle = description
	return t
}

// WithHeaderStyle sets the style shared by header cells.
func (t *Table) WithHeaderStyle(description string) *Table {
	t.headerStyle = description
	return t
}

// WithFooterStyle sets the style of footer cells.
func (t *Table) WithFooterStyle(description string) *Table {
	t.footerStyle = description
	return t
}

// WithTitleStyle sets the title style.
func (t *Table) WithTitleStyle(description string) *Table {
	t.titleStyle = description
	return t
}

// WithCaptionStyle sets the caption style.
func (t *Table) WithCaptionStyle(description string) *Table {
	t.captionStyle = description
	return t
}

// WithRowStyles sets styles cycled over data rows, e.g. "", "dim" for zebra
// stripes.
func (t *Table) WithRowStyles(styles ...string) *Table {
	t.rowStyles = styles
	return t
}

// WithPadding sets the horizontal space either side of each cell.
func (t *Table) WithPadding(padding int) *Table {
	t.padding = max(0, padding)
	return t
}

// ColumnWidth is the width every column gets at the given table width.
func (t *Table) ColumnWidth(width int) int {
	n := len(t.columns)
	if n == 0 {
		return 0
	}
	return max(1, (width-(n+1)-2*t.padding*n)/n)
}

// Render draws the table at the offered width.
func (t *Table) Render(c render.Console, opts render.Options) render.Result {
	glyphs := box.Get(t.box)
	if glyphs == nil || len(t.columns) == 0 {
		return render.Result{}
	}

	width := render.Width(c, opts)
	colWidth := t.ColumnWidth(width)
	border := styleOf(c, t.borderStyle)
	widths := make([]int, len(t.columns))
	for i := range widths {
		widths[i] = colWidth + 2*t.padding
	}
	rule := func(s string) segment.Line { return segment.Line{segment.New(s, border)} }

	var out []segment.Line
	if t.title != "" {
		out = append(out, alignLine(markupLine(c, t.title, styleOf(c, t.titleStyle)), width, AlignCenter, style.Null()))
	}

	if t.showHeader {
		out = append(out, rule(glyphs.TopBorder(widths)))
		tableHeader := styleOf(c, t.headerStyle)
		cells := make([]tableCell, len(t.columns))
		for i, col := range t.columns {
			cells[i] = tableCell{
				content: render.Markup(col.Header),
				text:    styleOf(c, col.HeaderStyle).Combine(tableHeader),
			}
		}
		out = append(out, t.row(c, glyphs, border, colWidth, cells)...)
		out = append(out, rule(glyphs.Separator(widths)))
	}

	for i, row := range t.rows {
		rowStyle := style.Null()
		if len(t.rowStyles) > 0 {
			rowStyle = styleOf(c, t.rowStyles[i%len(t.rowStyles)])
		}
		cells := make([]tableCell, len(t.columns))
		for j, col := range t.columns {
			var content render.Renderable
			if j < len(row) {
				content = row[j]
			}
			cells[j] = tableCell{
				content: content,
				text:    styleOf(c, col.Style).Combine(rowStyle),
				overlay: rowStyle,
			}
		}
		out = append(out, t.row(c, glyphs, border, colWidth, cells)...)
		if t.showLines && i < len(t.rows)-1 {
			out = append(out, rule(glyphs.Separator(widths)))
		}
	}

	if t.showFooter {
		if cells, ok := t.footerCells(c); ok {
			out = append(out, rule(glyphs.Separator(widths)))
			out = append(out, t.row(c, glyphs, border, colWidth, cells)...)
		}
	}

	out = append(out, rule(glyphs.BottomBorder(widths)))

	if t.caption != "" {
		out = append(out, alignLine(markupLine(c, t.caption, styleOf(c, t.captionStyle)), width, AlignCenter, style.Null()))
	}

	res := render.FromLines(out)
	res.Width = max(res.Width, 1+len(t.columns)*(colWidth+2*t.padding+1))
	return res
}

// footerCells prefers cells given to AddFooter, falling back to the column
// footer texts.
func (t *Table) footerCells(c render.Console) ([]tableCell, bool) {
	footerStyle := styleOf(c, t.footerStyle)
	cells := make([]tableCell, len(t.columns))
	found := false
	for i, col := range t.columns {
		var content render.Renderable
		switch {
		case len(t.footer) > 0:
			if i < len(t.footer) {
				content = t.footer[i]
			}
		case col.Footer != "":
			content = render.Markup(col.Footer)
		}
		if content != nil {
			found = true
		}
		cells[i] = tableCell{
			content: content,
			text:    styleOf(c, col.FooterStyle).Combine(footerStyle),
			overlay: footerStyle,
		}
	}
	return cells, found
}

// tableCell is one cell ready for layout. Text cells take the text style
// underneath their own; renderable cells get overlay on top.
type tableCell struct {
	content render.Renderable
	text    style.Style
	overlay style.Style
}

// cellLines renders the cell to lines exactly colWidth wide, plus the style its
// padding is filled with.
func (t *Table) cellLines(c render.Console, cell tableCell, col Column, colWidth int) ([]segment.Line, style.Style) {
	if cell.content == nil {
		return nil, cell.text
	}
	if text, isMarkup, ok := textContent(cell.content); ok {
		var txt *Text
		if isMarkup {
			txt = NewText(text)
		} else {
			txt = TextFromSegments([]segment.Segment{segment.Plain(text)})
		}
		lines := render.Lines(txt, c, render.Options{Width: colWidth})
		for i, line := range lines {
			lines[i] = alignLine(segment.Line(segment.Apply(line, cell.text)), colWidth, col.Justify, cell.text)
		}
		return lines, cell.text
	}
	lines := render.Lines(cell.content, c, render.Options{Width: colWidth})
	for i, line := range lines {
		lines[i] = segment.PadLine(segment.Line(segment.Overlay(line, cell.overlay)), colWidth, cell.overlay)
	}
	return lines, cell.overlay
}

// row lays out one table row. The row is as tall as its tallest cell; the
// others are blank-filled according to their column's vertical alignment.
func (t *Table) row(c render.Console, glyphs *box.Box, border style.Style, colWidth int, cells []tableCell) []segment.Line {
	rendered := make([][]segment.Line, len(cells))
	fills := make([]style.Style, len(cells))
	height := 1
	for i, cell := range cells {
		rendered[i], fills[i] = t.cellLines(c, cell, t.columns[i], colWidth)
		height = max(height, len(rendered[i]))
	}
	for i := range rendered {
		rendered[i] = verticalFit(rendered[i], height, t.columns[i].Vertical, blankLine(colWidth, fills[i]))
	}

	out := make([]segment.Line, height)
	for y := range height {
		line := segment.Line{segment.New(glyphs.Left, border)}
		for i := range cells {
			if t.padding > 0 {
				line = append(line, segment.Spaces(t.padding, fills[i]))
			}
			line = append(line, rendered[i][y]...)
			if t.padding > 0 {
				line = append(line, segment.Spaces(t.padding, fills[i]))
			}
			sep := glyphs.VerticalMid
			if i == len(cells)-1 {
				sep = glyphs.Right
			}
			line = append(line, segment.New(sep, border))
		}
		out[y] = line
	}
	return out
}

func verticalFit(lines []segment.Line, height int, v VerticalAlign, blank segment.Line) []segment.Line {
	missing := height - len(lines)
	if missing <= 0 {
		return lines
	}
	above := 0
	switch v {
	case VerticalMiddle:
		above = missing / 2
	case VerticalBottom:
		above = missing
	}
	out := make([]segment.Line, 0, height)
	for range above {
		out = append(out, blank)
	}
	out = append(out, lines...)
	for len(out) < height {
		out = append(out, blank)
	}
	return out
}
