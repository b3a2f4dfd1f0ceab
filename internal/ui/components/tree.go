package components

import (
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Guides is one set of tree connector glyphs. Every glyph is four cells wide.
type Guides struct {
	Branch   string
	Last     string
	Vertical string
	Space    string
}

var treeGuides = map[string]Guides{
	"standard": {Branch: "├── ", Last: "└── ", Vertical: "│   ", Space: "    "},
	"bold":     {Branch: "┣━━ ", Last: "┗━━ ", Vertical: "┃   ", Space: "    "},
	"double":   {Branch: "╠══ ", Last: "╚══ ", Vertical: "║   ", Space: "    "},
	"ascii":    {Branch: "|-- ", Last: "`-- ", Vertical: "|   ", Space: "    "},
}

// GuideSet returns the named guide glyphs, falling back to "standard".
func GuideSet(name string) Guides {
	if g, ok := treeGuides[name]; ok {
		return g
	}
	return treeGuides["standard"]
}

// TreeOptions are shared by a tree and the children created through Add.
type TreeOptions struct {
	Guides     string
	GuideStyle string
	HideRoot   bool
}

// Tree is a label with ordered child trees.
type Tree struct {
	label    render.Renderable
	children []*Tree
	options  TreeOptions
}

// NewTree creates a tree with standard guides.
func NewTree(label render.Renderable) *Tree {
	return &Tree{
		label:   label,
		options: TreeOptions{Guides: "standard", GuideStyle: "#6e7681 dim"},
	}
}

// WithGuides selects the guide glyph set: standard, bold, double or ascii.
func (t *Tree) WithGuides(name string) *Tree {
	t.options.Guides = name
	return t
}

// WithGuideStyle sets the style of the connector glyphs.
func (t *Tree) WithGuideStyle(description string) *Tree {
	t.options.GuideStyle = description
	return t
}

// WithHideRoot omits the root label.
func (t *Tree) WithHideRoot(hide bool) *Tree {
	t.options.HideRoot = hide
	return t
}

// Add appends a child and returns it. A *Tree is attached as is, so one node
// may appear in several trees; any other label gets a new node sharing this
// tree's options.
func (t *Tree) Add(label render.Renderable) *Tree {
	if child, ok := label.(*Tree); ok {
		t.children = append(t.children, child)
		return child
	}
	child := &Tree{label: label, options: t.options}
	t.children = append(t.children, child)
	return child
}

// Children returns the direct children.
func (t *Tree) Children() []*Tree { return t.children }

// Label returns the node label.
func (t *Tree) Label() render.Renderable { return t.label }

// Render draws the tree depth first using this tree's guide options for every
// level.
func (t *Tree) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	guides := GuideSet(t.options.Guides)
	guideStyle := styleOf(c, t.options.GuideStyle)

	var out []segment.Line
	if !t.options.HideRoot {
		out = append(out, render.Lines(t.label, c, opts.WithWidth(width))...)
	}
	t.renderChildren(c, opts, width, guides, guideStyle, "", &out)
	return render.FromLines(out)
}

func (t *Tree) renderChildren(c render.Console, opts render.Options, width int, guides Guides, guideStyle style.Style, prefix string, out *[]segment.Line) {
	for i, child := range t.children {
		last := i == len(t.children)-1
		connector, continuation := guides.Branch, guides.Vertical
		if last {
			connector, continuation = guides.Last, guides.Space
		}

		labelWidth := max(1, width-segment.CellWidth(prefix+connector))
		for n, line := range render.Lines(child.label, c, opts.WithWidth(labelWidth)) {
			guide := connector
			if n > 0 {
				guide = continuation
			}
			row := segment.Line{segment.New(prefix+guide, guideStyle)}
			*out = append(*out, append(row, line...))
		}

		child.renderChildren(c, opts, width, guides, guideStyle, prefix+continuation, out)
	}
}
