package components

import (
	"slices"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Columns flows items into as many equal-width columns as fit.
type Columns struct {
	items       []render.Renderable
	title       string
	padding     int
	width       int
	columnFirst bool
	rightToLeft bool
	equal       bool
	expand      bool
}

// NewColumns creates a column layout over items.
func NewColumns(items ...render.Renderable) *Columns {
	return &Columns{items: items, padding: 1}
}

// Add appends an item.
func (cl *Columns) Add(item render.Renderable) *Columns {
	cl.items = append(cl.items, item)
	return cl
}

// WithTitle sets a markup line printed above the columns.
func (cl *Columns) WithTitle(title string) *Columns {
	cl.title = title
	return cl
}

// WithPadding sets the gap between columns.
func (cl *Columns) WithPadding(padding int) *Columns {
	cl.padding = max(0, padding)
	return cl
}

// WithWidth fixes the column width instead of measuring the widest item.
func (cl *Columns) WithWidth(width int) *Columns {
	cl.width = width
	return cl
}

// WithColumnFirst fills columns top to bottom before moving right.
func (cl *Columns) WithColumnFirst(columnFirst bool) *Columns {
	cl.columnFirst = columnFirst
	return cl
}

// WithRightToLeft reverses the item order within each row.
func (cl *Columns) WithRightToLeft(rightToLeft bool) *Columns {
	cl.rightToLeft = rightToLeft
	return cl
}

// WithEqual requests equal column widths. Columns are always equal width, so
// this only records the preference.
func (cl *Columns) WithEqual(equal bool) *Columns {
	cl.equal = equal
	return cl
}

// WithExpand is accepted for compatibility and records the preference.
func (cl *Columns) WithExpand(expand bool) *Columns {
	cl.expand = expand
	return cl
}

// Render measures every item at the offered width, then lays them out in a
// grid. Items keep their styles; only their cell widths drive the layout.
func (cl *Columns) Render(c render.Console, opts render.Options) render.Result {
	if len(cl.items) == 0 {
		return render.Result{}
	}
	width := render.Width(c, opts)

	items := make([][]segment.Line, len(cl.items))
	colWidth := cl.width
	for i, item := range cl.items {
		items[i] = render.Lines(item, c, opts.WithWidth(width))
		if cl.width <= 0 {
			for _, line := range items[i] {
				colWidth = max(colWidth, line.CellLength())
			}
		}
	}
	colWidth = max(1, colWidth)
	count := max(1, (width+cl.padding)/(colWidth+cl.padding))

	var out []segment.Line
	if cl.title != "" {
		out = append(out, markupLine(c, cl.title, style.Null()))
	}
	gap := segment.Spaces(cl.padding, style.Null())
	for _, row := range cl.arrange(len(items), count) {
		if cl.rightToLeft {
			slices.Reverse(row)
		}
		height := 0
		for _, idx := range row {
			height = max(height, len(items[idx]))
		}
		for y := range height {
			line := segment.Line{}
			for n, idx := range row {
				if n > 0 && cl.padding > 0 {
					line = append(line, gap)
				}
				var part segment.Line
				if y < len(items[idx]) {
					part = items[idx][y]
				}
				line = append(line, segment.PadLine(part, colWidth, style.Null())...)
			}
			out = append(out, line)
		}
	}
	return render.FromLines(out)
}

// arrange returns item indices grouped into display rows.
func (cl *Columns) arrange(n, count int) [][]int {
	var rows [][]int
	if cl.columnFirst {
		rowCount := (n + count - 1) / count
		for r := range rowCount {
			var row []int
			for col := range count {
				if idx := col*rowCount + r; idx < n {
					row = append(row, idx)
				}
			}
			rows = append(rows, row)
		}
		return rows
	}
	for start := 0; start < n; start += count {
		row := make([]int, 0, count)
		for idx := start; idx < min(n, start+count); idx++ {
			row = append(row, idx)
		}
		rows = append(rows, row)
	}
	return rows
}
