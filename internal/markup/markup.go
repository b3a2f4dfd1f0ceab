// Package markup compiles inline "[style]text[/]" markup into segments.
package markup

import (
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/theme"
)

var tagPattern = regexp.MustCompile(`\[(/)?([\w\s#.,()]*?)\]`)

// Parser resolves tags against a theme. It holds no per-parse state and is
// safe for concurrent use.
type Parser struct {
	theme *theme.Theme
}

// NewParser returns a parser for th. A nil theme resolves every tag as a raw
// style expression.
func NewParser(th *theme.Theme) *Parser {
	return &Parser{theme: th}
}

// stack is the per-parse style stack. Its root is the null style and it never
// shrinks below it.
type stack []style.Style

func (s *stack) top() style.Style { return (*s)[len(*s)-1] }

func (s *stack) push(st style.Style) { *s = append(*s, s.top().Combine(st)) }

func (s *stack) pop() {
	if len(*s) > 1 {
		*s = (*s)[:len(*s)-1]
	}
}

// Parse converts markup into segments. Closing tags pop one level whatever
// name they carry; an empty "[]" is kept as literal text. Malformed input
// never fails.
func (p *Parser) Parse(markup string) []segment.Segment {
	styles := stack{style.Null()}
	var out []segment.Segment
	emit := func(text string) {
		if text != "" {
			out = append(out, segment.New(text, styles.top()))
		}
	}

	last := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(markup, -1) {
		closing := m[2] >= 0
		body := markup[m[4]:m[5]]
		if !closing && body == "" {
			continue
		}
		emit(markup[last:m[0]])
		last = m[1]
		if closing {
			styles.pop()
			continue
		}
		styles.push(p.resolve(body))
	}
	emit(markup[last:])
	return out
}

// resolve maps a tag body to a style: theme styles, then palette colours,
// then the body itself parsed as a style expression.
func (p *Parser) resolve(body string) style.Style {
	name := strings.TrimSpace(body)
	if st, ok := p.theme.Lookup(name); ok {
		return st
	}
	return style.Parse(name)
}

// Render parses markup and renders it to an ANSI string.
func (p *Parser) Render(markup string) string {
	var b strings.Builder
	for _, seg := range p.Parse(markup) {
		b.WriteString(seg.Render())
	}
	return b.String()
}

// Strip removes every tag and returns the plain text.
func Strip(markup string) string {
	return segment.Text(NewParser(nil).Parse(markup))
}
