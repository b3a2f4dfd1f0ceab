package segment

import (
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Line is one row of segments without line breaks.
type Line []Segment

// CellLength is the display width of the line.
func (l Line) CellLength() int {
	return CellLength(l)
}

// SplitLines breaks a flat segment stream on embedded newlines. Empty pieces
// are dropped but still terminate their line; a trailing partial line is
// emitted, a trailing newline does not start an extra empty line.
func SplitLines(segments []Segment) []Line {
	var lines []Line
	current := Line{}

	for _, seg := range segments {
		if !strings.Contains(seg.Text, "\n") {
			current = append(current, seg)
			continue
		}
		parts := seg.SplitLines()
		for i, part := range parts {
			if part.Text != "" {
				current = append(current, part)
			}
			if i < len(parts)-1 {
				lines = append(lines, current)
				current = Line{}
			}
		}
	}

	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// PadLine appends spaces in st so the line is exactly width cells wide.
// Lines already at or beyond width are returned unchanged.
func PadLine(line Line, width int, st style.Style) Line {
	current := line.CellLength()
	if current >= width {
		return line
	}
	out := make(Line, len(line), len(line)+1)
	copy(out, line)
	return append(out, Spaces(width-current, st))
}

// CropLine cuts the line to at most width cells. A segment straddling the
// edge is cropped by grapheme and anything after it is dropped.
func CropLine(line Line, width int) Line {
	if line.CellLength() <= width {
		return line
	}
	out := make(Line, 0, len(line))
	used := 0
	for _, seg := range line {
		w := seg.CellLength()
		if used+w <= width {
			out = append(out, seg)
			used += w
			continue
		}
		if part := Crop(seg.Text, width-used); part != "" {
			out = append(out, seg.WithText(part))
		}
		break
	}
	return out
}

// JoinLines flattens lines back into a stream, ending every line with a
// control newline.
func JoinLines(lines []Line) []Segment {
	var out []Segment
	for _, line := range lines {
		out = append(out, line...)
		out = append(out, Newline())
	}
	return out
}
