package components

import (
	"testing"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableLayout(t *testing.T) {
	t.Parallel()

	tbl := NewTable().WithBox("ascii").AddColumns("A", "B").AddTextRow("x", "y")
	assert.Equal(t, []string{
		"+-----+-----+",
		"| A   | B   |",
		"+-----+-----+",
		"| x   | y   |",
		"+-----+-----+",
	}, renderLines(tbl, 13))
}

func TestTableColumnWidthConservation(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ columns, width int }{{3, 40}, {2, 13}, {4, 53}, {1, 20}} {
		tbl := NewTable()
		for i := 0; i < tc.columns; i++ {
			tbl.AddColumn(Column{Header: "h"})
		}
		row := make([]string, tc.columns)
		for i := range row {
			row[i] = "value"
		}
		tbl.AddTextRow(row...)

		colWidth := tbl.ColumnWidth(tc.width)
		assert.Equal(t, tc.width, 1+tc.columns*(colWidth+2+1))
		for _, line := range renderLines(tbl, tc.width) {
			assert.Equal(t, tc.width, segment.CellWidth(line), "%d columns at %d", tc.columns, tc.width)
		}
	}
}

func TestTableJustifyAndWrap(t *testing.T) {
	t.Parallel()

	tbl := NewTable().WithBox("ascii").
		AddColumn(Column{Header: "N", Justify: AlignRight}).
		AddColumn(Column{Header: "T", Justify: AlignCenter}).
		AddTextRow("7", "ab cd")
	lines := renderLines(tbl, 13)
	assert.Equal(t, "|   N |  T  |", lines[1])
	assert.Equal(t, []string{"|   7 | ab  |", "|     | cd  |"}, lines[3:5])
}

func TestTableShowLinesAndHeader(t *testing.T) {
	t.Parallel()

	tbl := NewTable().WithBox("ascii").AddColumns("A").WithShowLines(true).
		AddTextRow("1").AddTextRow("2").AddTextRow("3")
	assert.Len(t, renderLines(tbl, 7), 9)

	noHeader := NewTable().WithBox("ascii").AddColumns("A").WithShowHeader(false).AddTextRow("1")
	assert.Equal(t, []string{"| 1   |", "+-----+"}, renderLines(noHeader, 7))
}

func TestTableFooter(t *testing.T) {
	t.Parallel()

	explicit := NewTable().WithBox("ascii").AddColumns("A", "B").AddTextRow("1", "2").
		AddFooter(render.Str("sum"))
	lines := renderLines(explicit, 13)
	require.Len(t, lines, 7)
	assert.Equal(t, "| sum |     |", lines[5])

	fromColumns := NewTable().WithBox("ascii").
		AddColumn(Column{Header: "A", Footer: "tot"}).
		WithShowFooter(true).
		AddTextRow("1")
	lines = renderLines(fromColumns, 7)
	require.Len(t, lines, 7)
	assert.Equal(t, "| tot |", lines[5])

	noFooterText := NewTable().WithBox("ascii").AddColumns("A").WithShowFooter(true).AddTextRow("1")
	assert.Len(t, renderLines(noFooterText, 7), 5)
}

func TestTableStyles(t *testing.T) {
	t.Parallel()

	tbl := NewTable().
		AddColumn(Column{Header: "A", HeaderStyle: "italic", Style: "red"}).
		WithRowStyles("", "bold").
		AddTextRow("one").
		AddTextRow("two")
	lines := segment.SplitLines(tbl.Render(testConsole, render.Options{Width: 20}).Segments)
	require.Len(t, lines, 6)

	find := func(line segment.Line, text string) segment.Segment {
		for _, seg := range line {
			if seg.Text == text {
				return seg
			}
		}
		t.Fatalf("segment %q not found", text)
		return segment.Segment{}
	}

	header := find(lines[1], "A")
	assert.True(t, header.Style.Has(style.Italic))
	assert.True(t, header.Style.Has(style.Bold))
	fg, _ := header.Style.Foreground()
	assert.Equal(t, style.Named("cyan"), fg)

	first := find(lines[3], "one")
	fg, _ = first.Style.Foreground()
	assert.Equal(t, style.Named("red"), fg)
	assert.False(t, first.Style.Has(style.Bold))

	second := find(lines[4], "two")
	assert.True(t, second.Style.Has(style.Bold))

	assert.True(t, lines[0][0].Style.Has(style.Dim), "border defaults to dim")
}

func TestTableNestedRenderable(t *testing.T) {
	t.Parallel()

	m := &mockRenderable{}
	m.On("Render", 3).Return(render.NewResult([]segment.Segment{segment.Plain("p\nq")})).Once()

	tbl := NewTable().WithBox("ascii").AddColumns("A", "B").AddRow(m, render.Str("z"))
	lines := renderLines(tbl, 13)
	assert.Equal(t, []string{"| p   | z   |", "| q   |     |"}, lines[3:5])
	m.AssertExpectations(t)
}

func TestTableTitleAndCaption(t *testing.T) {
	t.Parallel()

	tbl := NewTable().WithBox("ascii").AddColumns("A").AddTextRow("1").WithTitle("T").WithCaption("C")
	lines := renderLines(tbl, 7)
	require.Len(t, lines, 7)
	assert.Equal(t, "   T   ", lines[0])
	assert.Equal(t, "   C   ", lines[6])
}

func TestTableEmptyCases(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewTable().Render(testConsole, render.Options{Width: 10}).Segments)
	assert.Empty(t, NewTable().AddColumns("A").WithBox("none").Render(testConsole, render.Options{Width: 10}).Segments)
}

func TestTableShortRowsAreBlank(t *testing.T) {
	t.Parallel()

	tbl := NewTable().WithBox("ascii").AddColumns("A", "B").AddTextRow("1")
	assert.Equal(t, "| 1   |     |", renderLines(tbl, 13)[3])
}
