package components

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestPadding(t *testing.T) {
	t.Parallel()

	m := expectWidth(t, 5, "x")
	lines := renderLines(NewPadding(m, CustomSpacing(1, 2, 1, 3)), 10)
	assert.Equal(t, []string{strings.Repeat(" ", 10), "   x", strings.Repeat(" ", 10)}, lines)
}

func TestPaddingFromParsedValues(t *testing.T) {
	t.Parallel()

	pad, err := ParseSpacing(0, 2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"  a", "  b"}, renderLines(NewPadding(render.Str("a\nb"), pad), 10))
}
