package syntax

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/render"
)

// JSON is pretty-printed, highlighted JSON. Text that does not parse is
// shown as given.
type JSON struct {
	source   string
	indent   int
	sortKeys bool
	theme    string
}

// NewJSON creates a JSON renderable with a two space indent.
func NewJSON(source string) *JSON {
	return &JSON{source: source, indent: 2, theme: DefaultTheme}
}

// WithIndent sets the number of spaces per nesting level.
func (j *JSON) WithIndent(n int) *JSON {
	j.indent = max(0, n)
	return j
}

// WithSortKeys orders object keys alphabetically.
func (j *JSON) WithSortKeys(sorted bool) *JSON {
	j.sortKeys = sorted
	return j
}

// WithTheme selects the highlighting colour scheme.
func (j *JSON) WithTheme(name string) *JSON {
	if name != "" {
		j.theme = name
	}
	return j
}

// Text returns the formatted document.
func (j *JSON) Text() string {
	indent := strings.Repeat(" ", j.indent)
	if !j.sortKeys {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(j.source), "", indent); err != nil {
			return j.source
		}
		return buf.String()
	}

	decoder := json.NewDecoder(strings.NewReader(j.source))
	decoder.UseNumber()
	var data any
	if err := decoder.Decode(&data); err != nil {
		return j.source
	}
	// Maps marshal with sorted keys.
	out, err := json.MarshalIndent(data, "", indent)
	if err != nil {
		return j.source
	}
	return string(out)
}

// Render highlights the formatted text with the JSON lexer.
func (j *JSON) Render(c render.Console, opts render.Options) render.Result {
	return New(j.Text(), "json").WithTheme(j.theme).Render(c, opts)
}
