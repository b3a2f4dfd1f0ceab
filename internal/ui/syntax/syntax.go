// Package syntax renders highlighted source code and pretty-printed JSON.
package syntax

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// DefaultTheme is the colour scheme used when none is configured.
const DefaultTheme = "monokai"

const tabSize = 4

var (
	gutterStyle    = style.Parse("#6e7681 dim")
	highlightStyle = style.Parse("#ff5555 bold")
)

// themeAliases maps accepted theme names onto chroma style names.
var themeAliases = map[string]string{
	"github-light": "github",
	"one-dark":     "onedark",
}

// Syntax is a highlighted block of code.
type Syntax struct {
	code        string
	lexer       string
	filename    string
	theme       string
	lineNumbers bool
	startLine   int
	highlight   map[int]bool
}

// New creates a Syntax for code using the named lexer. An empty or unknown
// lexer name falls back to detection from the content.
func New(code, lexer string) *Syntax {
	return &Syntax{code: code, lexer: lexer, theme: DefaultTheme, startLine: 1}
}

// FromFile creates a Syntax whose lexer is chosen from the file name.
func FromFile(filename, code string) *Syntax {
	s := New(code, "")
	s.filename = filepath.Base(filename)
	return s
}

// WithTheme selects the colour scheme by name.
func (s *Syntax) WithTheme(name string) *Syntax {
	if name != "" {
		s.theme = name
	}
	return s
}

// WithLineNumbers toggles the line number gutter.
func (s *Syntax) WithLineNumbers(show bool) *Syntax {
	s.lineNumbers = show
	return s
}

// WithStartLine sets the number shown for the first line.
func (s *Syntax) WithStartLine(n int) *Syntax {
	s.startLine = n
	return s
}

// WithHighlightLines marks lines (by displayed number) with an indicator.
func (s *Syntax) WithHighlightLines(lines ...int) *Syntax {
	s.highlight = make(map[int]bool, len(lines))
	for _, n := range lines {
		s.highlight[n] = true
	}
	return s
}

// Lexer returns the name of the lexer that will be used.
func (s *Syntax) Lexer() string {
	return s.resolveLexer().Config().Name
}

func (s *Syntax) resolveLexer() chroma.Lexer {
	var lexer chroma.Lexer
	if s.lexer != "" {
		lexer = lexers.Get(s.lexer)
		if lexer == nil {
			lexer = lexers.Match("file." + s.lexer)
		}
	}
	if lexer == nil && s.filename != "" {
		lexer = lexers.Match(s.filename)
	}
	if lexer == nil {
		lexer = lexers.Analyse(s.code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// Theme resolves a theme name to a chroma style. Unknown names return the
// chroma fallback style.
func Theme(name string) *chroma.Style {
	key := strings.ToLower(name)
	if alias, ok := themeAliases[key]; ok {
		key = alias
	}
	return styles.Get(key)
}

// Render tokenises the code and emits one line per source line, cropped to
// the offered width.
func (s *Syntax) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	code := strings.TrimSuffix(strings.ReplaceAll(s.code, "\t", strings.Repeat(" ", tabSize)), "\n")
	lines := s.tokenise(code)

	numberWidth := 0
	if s.lineNumbers {
		numberWidth = len(strconv.Itoa(s.startLine + len(lines) - 1))
	}

	out := make([]segment.Line, 0, len(lines))
	for i, tokens := range lines {
		number := s.startLine + i
		line := segment.Line{}
		marked := s.highlight[number]
		switch {
		case marked:
			line = append(line, segment.New("❱ ", highlightStyle))
		case s.lineNumbers:
			line = append(line, segment.Plain("  "))
		}
		if s.lineNumbers {
			gutter := gutterStyle
			if marked {
				gutter = highlightStyle
			}
			line = append(line, segment.New(fmt.Sprintf("%*d │ ", numberWidth, number), gutter))
		}
		line = append(line, tokens...)
		out = append(out, segment.CropLine(line, width))
	}
	return render.FromLines(out)
}

// tokenise highlights code and groups the styled tokens by line.
func (s *Syntax) tokenise(code string) []segment.Line {
	theme := Theme(s.theme)
	iterator, err := s.resolveLexer().Tokenise(nil, code)
	if err != nil {
		return plainLines(code)
	}

	lines := []segment.Line{{}}
	for _, token := range iterator.Tokens() {
		st := tokenStyle(theme, token.Type)
		for i, part := range strings.Split(token.Value, "\n") {
			if i > 0 {
				lines = append(lines, segment.Line{})
			}
			if part != "" {
				lines[len(lines)-1] = append(lines[len(lines)-1], segment.New(part, st))
			}
		}
	}
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 && !strings.HasSuffix(code, "\n") {
		lines = lines[:n-1]
	}
	return lines
}

func plainLines(code string) []segment.Line {
	var lines []segment.Line
	for _, text := range strings.Split(code, "\n") {
		line := segment.Line{}
		if text != "" {
			line = append(line, segment.Plain(text))
		}
		lines = append(lines, line)
	}
	return lines
}

// tokenStyle converts a chroma style entry into a segment style. Background
// colours are left to the terminal.
func tokenStyle(theme *chroma.Style, tokenType chroma.TokenType) style.Style {
	entry := theme.Get(tokenType)
	st := style.Null()
	if entry.Colour.IsSet() {
		st = st.WithForeground(style.Hex(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		st = st.With(style.Bold, true)
	}
	if entry.Italic == chroma.Yes {
		st = st.With(style.Italic, true)
	}
	if entry.Underline == chroma.Yes {
		st = st.With(style.Underline, true)
	}
	return st
}

