// Package progress renders completion bars.
package progress

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

var labelStyle = style.New(style.Bold)

// Bar renders a "completed/total" label followed by a bar filling the rest
// of the offered width.
type Bar struct {
	description string
	completed   int
	total       int
	profile     *termenv.Profile
}

// NewBar creates a bar for the given total.
func NewBar(total int) *Bar {
	return &Bar{total: total}
}

// WithDescription sets text shown before the count.
func (b *Bar) WithDescription(description string) *Bar {
	b.description = description
	return b
}

// WithColorProfile sets the colour depth of the bar gradient. Without it the
// console's profile is used.
func (b *Bar) WithColorProfile(profile termenv.Profile) *Bar {
	b.profile = &profile
	return b
}

// Update sets the completed count.
func (b *Bar) Update(completed int) *Bar {
	b.completed = completed
	return b
}

// Advance adds n to the completed count.
func (b *Bar) Advance(n int) *Bar {
	b.completed += n
	return b
}

// Ratio is the completed fraction, clamped to [0, 1]. A zero total counts as
// empty.
func (b *Bar) Ratio() float64 {
	if b.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(b.completed)/float64(b.total)))
}

// Finished reports whether the count has reached the total.
func (b *Bar) Finished() bool {
	return b.total > 0 && b.completed >= b.total
}

// Render draws the bar on one line.
func (b *Bar) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	line := segment.Line{}
	if b.description != "" {
		line = append(line, segment.Plain(b.description+" "))
	}
	line = append(line, segment.New(fmt.Sprintf("%d/%d", b.completed, b.total), labelStyle))

	if room := width - line.CellLength() - 1; room > 0 {
		profile := render.ProfileOf(c)
		if b.profile != nil {
			profile = *b.profile
		}
		bar := progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(room),
			progress.WithColorProfile(profile),
		)
		line = append(line, segment.Plain(" "), segment.Plain(bar.ViewAs(b.Ratio())))
	}
	return render.FromLines([]segment.Line{line})
}
