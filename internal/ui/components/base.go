package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Spacing represents padding around a component.
// Uses CSS box model ordering: Top, Right, Bottom, Left (clockwise from top).
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// CustomSpacing creates spacing with explicit values for each side (top, right, bottom, left).
func CustomSpacing(top, right, bottom, left int) Spacing {
	return Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// ParseSpacing normalises one value (all sides), two values (vertical,
// horizontal) or four values (top, right, bottom, left).
func ParseSpacing(values ...int) (Spacing, error) {
	for _, v := range values {
		if v < 0 {
			return Spacing{}, fmt.Errorf("padding values must not be negative, got %d", v)
		}
	}
	switch len(values) {
	case 1:
		return UniformSpacing(values[0]), nil
	case 2:
		return SymmetricSpacing(values[0], values[1]), nil
	case 4:
		return CustomSpacing(values[0], values[1], values[2], values[3]), nil
	default:
		return Spacing{}, fmt.Errorf("padding takes 1, 2 or 4 values, got %d", len(values))
	}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing (left + right).
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns the total vertical spacing (top + bottom).
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// Alignment specifies how content is placed horizontally.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment maps "left", "center" and "right". Anything else is left.
func ParseAlignment(name string) Alignment {
	switch strings.ToLower(name) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// split divides free cells into left and right fill for the alignment.
func (a Alignment) split(free int) (left, right int) {
	if free <= 0 {
		return 0, 0
	}
	switch a {
	case AlignCenter:
		left = free / 2
		return left, free - left
	case AlignRight:
		return free, 0
	default:
		return 0, free
	}
}

// alignLine pads line to width according to a, filling with st.
func alignLine(line segment.Line, width int, a Alignment, st style.Style) segment.Line {
	left, right := a.split(width - line.CellLength())
	out := make(segment.Line, 0, len(line)+2)
	if left > 0 {
		out = append(out, segment.Spaces(left, st))
	}
	out = append(out, line...)
	if right > 0 {
		out = append(out, segment.Spaces(right, st))
	}
	return out
}

// blankLine is width cells of spaces.
func blankLine(width int, st style.Style) segment.Line {
	if width <= 0 {
		return segment.Line{}
	}
	return segment.Line{segment.Spaces(width, st)}
}

// styleOf resolves a style name or expression against the console theme.
func styleOf(c render.Console, description string) style.Style {
	if description == "" {
		return style.Null()
	}
	return render.ThemeOf(c).Resolve(description)
}

// markupLine parses single-line markup and applies base underneath.
func markupLine(c render.Console, text string, base style.Style) segment.Line {
	segs := render.Markup(text).Render(c, render.Options{}).Segments
	return segment.Line(segment.Apply(segs, base))
}

// textContent unwraps bare text cells; markup reports whether the text is
// inline markup.
func textContent(r render.Renderable) (text string, markup bool, ok bool) {
	switch v := r.(type) {
	case render.Str:
		return string(v), false, true
	case render.Markup:
		return string(v), true, true
	default:
		return "", false, false
	}
}
