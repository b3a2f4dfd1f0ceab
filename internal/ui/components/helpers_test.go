package components

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/stretchr/testify/mock"
)

var testConsole = render.Fixed{W: 80, H: 24}

// mockRenderable records the width it is offered.
type mockRenderable struct {
	mock.Mock
}

func (m *mockRenderable) Render(_ render.Console, opts render.Options) render.Result {
	args := m.Called(opts.Width)
	return args.Get(0).(render.Result)
}

func expectWidth(t *testing.T, width int, text string) *mockRenderable {
	t.Helper()
	m := &mockRenderable{}
	m.On("Render", width).Return(render.NewResult([]segment.Segment{segment.Plain(text)})).Once()
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// renderLines renders r at width and returns its plain text lines.
func renderLines(r render.Renderable, width int) []string {
	text := segment.Text(r.Render(testConsole, render.Options{Width: width}).Segments)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
