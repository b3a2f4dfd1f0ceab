// Package console is the output sink: it resolves dimensions and colour
// support, turns markup strings and renderables into ANSI text and writes it.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/markup"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/terminal"
	"github.com/alexisbeaulieu97/prism/internal/theme"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
	"github.com/alexisbeaulieu97/prism/internal/ui/status"
	"github.com/alexisbeaulieu97/prism/internal/ui/traceback"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Options configure a Console. Zero values select detection or defaults.
type Options struct {
	Width       int
	Height      int
	ColorSystem string
	Theme       *theme.Theme
	Out         io.Writer
	Err         io.Writer
	Logger      *logger.Logger
	Detector    *terminal.Detector
}

// PrintOptions adjust how Print treats string items.
type PrintOptions struct {
	// Width overrides the wrap and render width for this call.
	Width int
	// NoMarkup prints strings verbatim.
	NoMarkup bool
	// NoEmoji leaves ":name:" codes in strings untouched.
	NoEmoji bool
	// Style is applied underneath string items.
	Style string
}

// Console implements render.Console over a pair of writers.
type Console struct {
	width    int
	height   int
	profile  termenv.Profile
	theme    *theme.Theme
	parser   *markup.Parser
	out      io.Writer
	err      io.Writer
	log      *logger.Logger
	detector *terminal.Detector
}

// New builds a console from options.
func New(opts Options) *Console {
	c := &Console{
		width:    opts.Width,
		height:   opts.Height,
		theme:    opts.Theme,
		out:      opts.Out,
		err:      opts.Err,
		log:      opts.Logger,
		detector: opts.Detector,
	}
	if c.theme == nil {
		c.theme = theme.Default()
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.err == nil {
		c.err = os.Stderr
	}
	if c.detector == nil {
		c.detector = terminal.New()
	}
	if p, ok := terminal.ParseColorSystem(opts.ColorSystem); ok {
		c.profile = p
	} else {
		c.profile = c.detector.ColorProfile()
	}
	c.parser = markup.NewParser(c.theme)

	c.log.Debug("console ready",
		"width", c.Width(),
		"color_system", terminal.ColorSystemName(c.profile),
	)
	return c
}

// Width is the configured width, else the detected terminal width.
func (c *Console) Width() int {
	if c.width > 0 {
		return c.width
	}
	return c.detector.Width()
}

// Height is the configured height, else the detected terminal height.
func (c *Console) Height() int {
	if c.height > 0 {
		return c.height
	}
	return c.detector.Height()
}

// Theme returns the theme used for markup.
func (c *Console) Theme() *theme.Theme { return c.theme }

// Profile returns the colour profile output is rendered for.
func (c *Console) Profile() termenv.Profile { return c.profile }

// Out returns the standard output writer.
func (c *Console) Out() io.Writer { return c.out }

// Print writes items separated by a space and ends with a newline. Strings are
// markup with emoji codes replaced, wrapped to the console width; renderables are rendered; anything
// else is formatted with fmt.
func (c *Console) Print(items ...any) error {
	return c.PrintWith(PrintOptions{}, items...)
}

// PrintWith is Print with per-call options.
func (c *Console) PrintWith(opts PrintOptions, items ...any) error {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, c.format(item, opts))
	}
	_, err := io.WriteString(c.out, strings.Join(parts, " ")+"\n")
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (c *Console) format(item any, opts PrintOptions) string {
	width := c.Width()
	if opts.Width > 0 {
		width = opts.Width
	}
	switch v := item.(type) {
	case string:
		return c.renderString(v, width, opts)
	case render.Renderable:
		return strings.TrimSuffix(c.renderWidth(v, width), "\n")
	default:
		return fmt.Sprint(v)
	}
}

func (c *Console) renderString(text string, width int, opts PrintOptions) string {
	if !opts.NoEmoji {
		text = markup.ReplaceEmoji(text)
	}
	var segs []segment.Segment
	if opts.NoMarkup {
		segs = []segment.Segment{segment.Plain(text)}
	} else {
		segs = c.parser.Parse(text)
	}
	if opts.Style != "" {
		segs = segment.Apply(segs, c.theme.Resolve(opts.Style))
	}
	return ansi.Wrap(c.join(segs), width, "")
}

// Render drives r once at the console width and returns the ANSI text.
func (c *Console) Render(r render.Renderable) string {
	return c.renderWidth(r, c.Width())
}

func (c *Console) renderWidth(r render.Renderable, width int) string {
	if r == nil {
		return ""
	}
	res := r.Render(c, render.Options{Width: width, Height: c.height})
	c.log.Debug("rendered", "type", fmt.Sprintf("%T", r), "segments", len(res.Segments), "width", width)
	return c.join(res.Segments)
}

// RenderString parses markup and returns it rendered without wrapping.
func (c *Console) RenderString(text string) string {
	return c.join(c.parser.Parse(text))
}

func (c *Console) join(segs []segment.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		b.WriteString(seg.RenderFor(c.profile))
	}
	return b.String()
}

// Rule prints a horizontal rule with an optional title.
func (c *Console) Rule(title string) error {
	return c.Print(components.NewRule(title))
}

// PrintException prints err as a traceback. The stack recorded by
// traceback.Wrap is shown when present, otherwise the caller's.
func (c *Console) PrintException(err error) error {
	return c.Print(traceback.NewSkip(err, 1))
}

// Error writes message to the error stream in red. Markup is not interpreted.
func (c *Console) Error(message string) {
	r := lipgloss.NewRenderer(c.err)
	r.SetColorProfile(c.profile)
	red := r.NewStyle().Foreground(lipgloss.Color("1"))
	if _, err := io.WriteString(c.err, red.Render(message)+"\n"); err != nil {
		c.log.Error(err, "write to error stream failed")
	}
}

// Interactive reports whether output goes to a terminal.
func (c *Console) Interactive() bool { return c.detector.IsInteractive() }

// Status creates a spinner line on the output stream. The spinner frame uses
// the "status.spinner" theme style when the theme defines one.
func (c *Console) Status(message, spinner string) (*status.Status, error) {
	opts := status.Options{Spinner: spinner, Profile: c.profile, Logger: c.log}
	if st := c.theme.Get("status.spinner"); !st.IsNull() {
		opts.Style = &st
	}
	return status.New(c.out, message, opts)
}

// Style resolves a style name or expression against the console theme.
func (c *Console) Style(description string) style.Style {
	return c.theme.Resolve(description)
}
