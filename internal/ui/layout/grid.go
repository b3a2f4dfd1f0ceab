package layout

import "github.com/alexisbeaulieu97/prism/internal/render"

// Grid is a column layout built one row at a time.
type Grid struct {
	*Layout
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{Layout: New(nil)}
}

// AddRow appends content as a new row and returns its node so callers can
// size it or split it further.
func (g *Grid) AddRow(content render.Renderable) *Layout {
	row := wrap(content)
	g.direction = Column
	g.children = append(g.children, row)
	return row
}
