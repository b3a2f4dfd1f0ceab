package progress

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
)

var testConsole = render.Fixed{W: 80, H: 24}

func renderText(b *Bar, width int) (string, render.Result) {
	res := b.Render(testConsole, render.Options{Width: width})
	return strings.TrimSuffix(segment.Text(res.Segments), "\n"), res
}

func TestBarRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		total     int
		completed int
		want      float64
		finished  bool
	}{
		{name: "zero total", total: 0, completed: 0, want: 0},
		{name: "partial", total: 10, completed: 5, want: 0.5},
		{name: "complete", total: 10, completed: 10, want: 1, finished: true},
		{name: "beyond total", total: 10, completed: 15, want: 1, finished: true},
		{name: "negative", total: 10, completed: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBar(tt.total).Update(tt.completed)
			require.InDelta(t, tt.want, b.Ratio(), 1e-9)
			require.Equal(t, tt.finished, b.Finished())
		})
	}
}

func TestBarShowsLabel(t *testing.T) {
	t.Parallel()

	text, _ := renderText(NewBar(10).Update(5).WithColorProfile(termenv.Ascii), 40)
	require.True(t, strings.HasPrefix(text, "5/10 "))
	require.Greater(t, len(text), len("5/10"))
}

func TestBarFillsOfferedWidth(t *testing.T) {
	t.Parallel()

	for _, width := range []int{20, 40, 73} {
		b := NewBar(100).WithDescription("copy").Advance(30).WithColorProfile(termenv.Ascii)
		_, res := renderText(b, width)
		require.Equal(t, width, res.Width)
		require.Equal(t, 1, res.Height)
	}
}

func TestBarNarrowWidthKeepsLabelOnly(t *testing.T) {
	t.Parallel()

	text, _ := renderText(NewBar(100).Update(100), 7)
	require.Equal(t, "100/100", text)
}

func TestBarCountsBeyondTotal(t *testing.T) {
	t.Parallel()

	text, _ := renderText(NewBar(10).Update(15).WithColorProfile(termenv.Ascii), 30)
	require.Contains(t, text, "15/10")
}

func TestBarFollowsConsoleProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile termenv.Profile
		want    string
	}{
		{name: "truecolor", profile: termenv.TrueColor, want: "\x1b[38;2;"},
		{name: "256 colours", profile: termenv.ANSI256, want: "\x1b[38;5;"},
		{name: "no colour", profile: termenv.Ascii},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := render.Fixed{W: 40, H: 24, Colors: tt.profile}
			text := segment.Text(NewBar(10).Update(5).Render(c, render.Options{}).Segments)
			if tt.want == "" {
				require.NotContains(t, text, "\x1b[")
				return
			}
			require.Contains(t, text, tt.want)
		})
	}
}

func TestExplicitProfileOverridesConsole(t *testing.T) {
	t.Parallel()

	c := render.Fixed{W: 40, H: 24, Colors: termenv.TrueColor}
	text := segment.Text(NewBar(10).Update(5).WithColorProfile(termenv.Ascii).Render(c, render.Options{}).Segments)
	require.NotContains(t, text, "\x1b[")
}
