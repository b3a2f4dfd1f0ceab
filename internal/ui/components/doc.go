// Package components provides the width-aware renderables that make up a
// terminal document.
//
// # Overview
//
// Every component implements render.Renderable: given a console and the
// width it is offered, it returns a flat list of styled segments. Components
// nest freely, so a Table cell can hold a Panel and a Panel can hold a Tree.
// Rendering has no side effects; the console performs the only write.
//
// # Core Components
//
// Text and decoration:
//   - Text: markup with word wrapping, justification and overflow handling
//   - Rule: a horizontal line with an optional centred title
//
// Wrappers:
//   - Align: places content left, centre or right within the width
//   - Padding: surrounds content with blank cells
//   - Panel: draws a box border with optional title and subtitle
//
// Structured content:
//   - Table: equal-width columns with header, footer, title and caption
//   - Tree: hierarchical labels joined by guide lines
//   - Columns: items flowed into as many columns as fit
//
// # Builders
//
// Components are configured with chained WithX methods that return the
// receiver:
//
//	table := components.NewTable().
//		WithTitle("Services").
//		WithBox("heavy")
//	table.AddColumns("Name", "Status")
//	table.AddTextRow("api", "[green]up[/]")
//
//	panel := components.FitPanel(table).WithTitle("Status")
//
// # Styles
//
// Style arguments are descriptions resolved against the console theme at
// render time, so "dim", "rule.line" and "bold red on #202020" are all valid.
// An empty description means no style.
package components
