package segment

import (
	"testing"

	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellLength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		seg  Segment
		want int
	}{
		{"ascii", Plain("hello"), 5},
		{"wide", Plain("日本"), 4},
		{"emoji", Plain("🚀"), 2},
		{"emoji presentation selector", Plain("⚠️"), 2},
		{"heart with selector", Plain("❤️ ok"), 5},
		{"text presentation", Plain("☀"), 1},
		{"zwj sequence", Plain("👩‍💻"), 2},
		{"flag", Plain("🇯🇵"), 2},
		{"combining mark", Plain("e\u0301"), 1},
		{"box drawing", Plain("╭─╮"), 3},
		{"control", Newline(), 0},
		{"pre-styled", Plain("\x1b[31mred\x1b[0m"), 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.seg.CellLength())
		})
	}
}

func TestSegmentSplitLinesKeepsStyle(t *testing.T) {
	t.Parallel()

	bold := style.New(style.Bold)
	parts := New("a\nb\n", bold).SplitLines()
	require.Len(t, parts, 3)
	assert.Equal(t, "a", parts[0].Text)
	assert.Equal(t, "b", parts[1].Text)
	assert.Equal(t, "", parts[2].Text)
	for _, p := range parts {
		assert.Equal(t, bold, p.Style)
	}
}

func TestWithHelpersDoNotMutate(t *testing.T) {
	t.Parallel()

	orig := Plain("x")
	changed := orig.WithText("y").WithStyle(style.New(style.Italic)).WithControl(true)
	assert.Equal(t, "x", orig.Text)
	assert.False(t, orig.Control)
	assert.Equal(t, "y", changed.Text)
	assert.True(t, changed.Control)
}

func TestRenderControlIsRaw(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "\n", Newline().Render())
	assert.Equal(t, "\x1b[1mB\x1b[0m", New("B", style.New(style.Bold)).Render())
}

func TestSplitLinesStream(t *testing.T) {
	t.Parallel()

	red := style.Parse("red")
	segs := []Segment{
		Plain("one "),
		New("two\nthree", red),
		Newline(),
		Plain("four"),
	}

	lines := SplitLines(segs)
	require.Len(t, lines, 3)
	assert.Equal(t, "one two", Text(lines[0]))
	assert.Equal(t, "three", Text(lines[1]))
	assert.Equal(t, red, lines[1][0].Style)
	assert.Equal(t, "four", Text(lines[2]))
}

func TestSplitLinesPreservesBlankLines(t *testing.T) {
	t.Parallel()

	lines := SplitLines([]Segment{Plain("a\n\nb\n")})
	require.Len(t, lines, 3)
	assert.Empty(t, lines[1])
	assert.Equal(t, "b", Text(lines[2]))
}

func TestPadLine(t *testing.T) {
	t.Parallel()

	line := Line{Plain("ab"), Plain("cd")}
	for _, width := range []int{0, 2, 4, 5, 12} {
		padded := PadLine(line, width, style.Null())
		want := width
		if want < 4 {
			want = 4
		}
		assert.Equal(t, want, padded.CellLength(), "width %d", width)
	}
	assert.Len(t, line, 2, "input is not modified")
}

func TestPadLineUsesStyle(t *testing.T) {
	t.Parallel()

	bg := style.Parse("on blue")
	padded := PadLine(Line{Plain("x")}, 3, bg)
	require.Len(t, padded, 2)
	assert.Equal(t, "  ", padded[1].Text)
	assert.Equal(t, bg, padded[1].Style)
}

func TestApplyAndOverlay(t *testing.T) {
	t.Parallel()

	segs := []Segment{New("a", style.Parse("red")), Newline()}

	under := Apply(segs, style.Parse("bold blue"))
	fg, _ := under[0].Style.Foreground()
	assert.Equal(t, style.Named("red"), fg)
	assert.True(t, under[0].Style.Has(style.Bold))
	assert.True(t, under[1].Style.IsNull())

	over := Overlay(segs, style.Parse("blue"))
	fg, _ = over[0].Style.Foreground()
	assert.Equal(t, style.Named("blue"), fg)
}

func TestCropAndFill(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "日", Crop("日本", 3))
	assert.Equal(t, "abc", Crop("abc", 10))
	assert.Equal(t, "", Crop("abc", 0))

	assert.Equal(t, "=-=-=", Fill("=-", 5))
	assert.Equal(t, "日 ", Fill("日", 3))
	assert.Equal(t, "", Fill("-", -1))
}

func TestCropKeepsClustersWhole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", Crop("a⚠️b", 2))
	assert.Equal(t, "a⚠️", Crop("a⚠️b", 3))
	assert.Equal(t, "👩‍💻", Crop("👩‍💻x", 2))

	var widths []int
	for _, g := range Graphemes("⚠️é") {
		widths = append(widths, g.Width)
	}
	assert.Equal(t, []int{2, 1}, widths)
}

func TestCropLine(t *testing.T) {
	t.Parallel()

	bold := style.New(style.Bold)
	line := Line{Plain("ab"), New("日本", bold)}
	assert.Equal(t, "ab", Text(CropLine(line, 3)))

	cropped := CropLine(line, 4)
	require.Len(t, cropped, 2)
	assert.Equal(t, "日", cropped[1].Text)
	assert.Equal(t, bold, cropped[1].Style)

	assert.Equal(t, line, CropLine(line, 10))
}
