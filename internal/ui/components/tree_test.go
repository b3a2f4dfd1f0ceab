package components

import (
	"testing"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeTwoChildren(t *testing.T) {
	t.Parallel()

	tree := NewTree(render.Str("root"))
	tree.Add(render.Str("A"))
	tree.Add(render.Str("B"))
	assert.Equal(t, []string{"root", "├── A", "└── B"}, renderLines(tree, 40))
}

func TestTreeNesting(t *testing.T) {
	t.Parallel()

	tree := NewTree(render.Str("root"))
	a := tree.Add(render.Str("A"))
	a.Add(render.Str("A1"))
	a.Add(render.Str("A2"))
	b := tree.Add(render.Str("B"))
	b.Add(render.Str("B1"))

	assert.Equal(t, []string{
		"root",
		"├── A",
		"│   ├── A1",
		"│   └── A2",
		"└── B",
		"    └── B1",
	}, renderLines(tree, 40))
}

func TestTreeGuideSets(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"bold":   {"r", "┣━━ a", "┗━━ b"},
		"double": {"r", "╠══ a", "╚══ b"},
		"ascii":  {"r", "|-- a", "`-- b"},
		"bogus":  {"r", "├── a", "└── b"},
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			tree := NewTree(render.Str("r")).WithGuides(name)
			tree.Add(render.Str("a"))
			tree.Add(render.Str("b"))
			assert.Equal(t, want, renderLines(tree, 20))
		})
	}
}

func TestTreeHideRoot(t *testing.T) {
	t.Parallel()

	tree := NewTree(render.Str("root")).WithHideRoot(true)
	tree.Add(render.Str("A"))
	assert.Equal(t, []string{"└── A"}, renderLines(tree, 20))
}

func TestTreeMultiLineLabels(t *testing.T) {
	t.Parallel()

	tree := NewTree(render.Str("top\nroot"))
	tree.Add(render.Str("l1\nl2"))
	last := tree.Add(render.Str("m1\nm2"))
	last.Add(render.Str("x"))

	assert.Equal(t, []string{
		"top",
		"root",
		"├── l1",
		"│   l2",
		"└── m1",
		"    m2",
		"    └── x",
	}, renderLines(tree, 40))
}

func TestTreeAttachesExistingNodes(t *testing.T) {
	t.Parallel()

	shared := NewTree(render.Str("shared"))
	shared.Add(render.Str("leaf"))

	first := NewTree(render.Str("one"))
	got := first.Add(shared)
	assert.Same(t, shared, got)

	second := NewTree(render.Str("two"))
	second.Add(shared)

	assert.Equal(t, []string{"one", "└── shared", "    └── leaf"}, renderLines(first, 40))
	assert.Equal(t, []string{"two", "└── shared", "    └── leaf"}, renderLines(second, 40))
}

func TestTreeChildrenInheritOptions(t *testing.T) {
	t.Parallel()

	tree := NewTree(render.Str("r")).WithGuides("ascii")
	child := tree.Add(render.Str("c"))
	child.Add(render.Str("g"))
	assert.Equal(t, []string{"c", "`-- g"}, renderLines(child, 20))
}

func TestTreeGuideStyleAndLabelWidth(t *testing.T) {
	t.Parallel()

	m := expectWidth(t, 32, "deep")
	tree := NewTree(render.Str("r"))
	tree.Add(render.Str("a")).Add(m)

	res := tree.Render(testConsole, render.Options{Width: 40})
	lines := segment.SplitLines(res.Segments)
	require.Len(t, lines, 3)
	guide := lines[1][0]
	assert.True(t, guide.Style.Has(style.Dim))
	fg, _ := guide.Style.Foreground()
	assert.Equal(t, style.Hex("#6e7681"), fg)
}
