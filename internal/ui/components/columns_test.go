package components

import (
	"testing"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/stretchr/testify/assert"
)

func items() []render.Renderable {
	return []render.Renderable{render.Str("aa"), render.Str("bbbb"), render.Str("c"), render.Str("dd")}
}

func TestColumnsRowMajor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"aa   bbbb", "c    dd  "}, renderLines(NewColumns(items()...), 10))
}

func TestColumnsColumnFirst(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"aa   c   ", "bbbb dd  "}, renderLines(NewColumns(items()...).WithColumnFirst(true), 10))
}

func TestColumnsRightToLeft(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"bbbb aa  ", "dd   c   "}, renderLines(NewColumns(items()...).WithRightToLeft(true), 10))
}

func TestColumnsAtLeastOneColumn(t *testing.T) {
	t.Parallel()

	lines := renderLines(NewColumns(items()...), 2)
	assert.Equal(t, []string{"aa  ", "bbbb", "c   ", "dd  "}, lines)
}

func TestColumnsFixedWidthAndPadding(t *testing.T) {
	t.Parallel()

	cols := NewColumns(render.Str("a"), render.Str("b"), render.Str("c")).WithWidth(3).WithPadding(2)
	assert.Equal(t, []string{"a    b    c  "}, renderLines(cols, 13))
}

func TestColumnsMultiLineItemsAndTitle(t *testing.T) {
	t.Parallel()

	cols := NewColumns(render.Str("a\nb"), render.Str("c")).WithTitle("Title")
	assert.Equal(t, []string{"Title", "a c", "b  "}, renderLines(cols, 10))
}

func TestColumnsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewColumns().Render(testConsole, render.Options{Width: 10}).Segments)
}
