package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

var testConsole = render.Fixed{W: 80, H: 24}

func TestMarkdownRendersContent(t *testing.T) {
	t.Parallel()

	res := New("# Title\n\nHello *world*\n").WithStyle("notty").Render(testConsole, render.Options{Width: 40})
	text := segment.Text(res.Segments)

	assert.Contains(t, text, "Title")
	assert.Contains(t, text, "world")
	assert.True(t, strings.HasSuffix(text, "\n"))
}

func TestMarkdownFitsWidth(t *testing.T) {
	t.Parallel()

	source := strings.Repeat("lorem ipsum dolor sit amet ", 20)
	for _, style := range []string{"notty", "dark"} {
		res := New(source).WithStyle(style).Render(testConsole, render.Options{Width: 30})
		lines := segment.SplitLines(res.Segments)
		require.Greater(t, len(lines), 1, style)
		for _, line := range lines {
			assert.LessOrEqual(t, line.CellLength(), 30, style)
		}
	}
}

func TestMarkdownDefaultsToConsoleWidth(t *testing.T) {
	t.Parallel()

	res := New(strings.Repeat("word ", 40)).WithStyle("notty").Render(render.Fixed{W: 50}, render.Options{})
	assert.LessOrEqual(t, res.Width, 50)
}
