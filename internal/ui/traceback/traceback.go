// Package traceback renders an error together with the call stack that led to
// it, showing highlighted source around every frame.
package traceback

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/style"
	"github.com/alexisbeaulieu97/prism/internal/ui/syntax"
)

const (
	maxDepth          = 64
	defaultExtraLines = 3
	defaultMaxFrames  = 100
	indent            = "    "
)

var (
	errorNameStyle    = style.Parse("#ff5555 bold")
	errorMessageStyle = style.Parse("#ff5555")
	dimStyle          = style.Parse("dim")
	locationStyle     = style.Parse("#6e7681")
	pathStyle         = style.Parse("#61afef")
	lineNumberStyle   = style.Parse("#e5c07b bold")
	functionStyle     = style.Parse("#98c379 italic")
	unavailableStyle  = style.Parse("dim italic")
)

// Frame is one call site.
type Frame struct {
	Function string
	File     string
	Line     int
}

// Capture returns the current goroutine's stack, most recent call first.
// skip counts frames above the caller of Capture to leave out.
func Capture(skip int) []Frame {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make([]Frame, 0, n)
	for {
		f, more := frames.Next()
		out = append(out, Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return out
}

type tracedError struct {
	err    error
	frames []Frame
}

func (e *tracedError) Error() string { return e.err.Error() }

func (e *tracedError) Unwrap() error { return e.err }

// Wrap records the caller's stack on err. Errors that already carry a stack
// are returned unchanged.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := FramesOf(err); ok {
		return err
	}
	return &tracedError{err: err, frames: Capture(1)}
}

// FramesOf returns the stack recorded by Wrap anywhere in err's chain.
func FramesOf(err error) ([]Frame, bool) {
	var traced *tracedError
	if errors.As(err, &traced) {
		return traced.frames, true
	}
	return nil, false
}

// Traceback is a renderable error report.
type Traceback struct {
	err              error
	frames           []Frame
	extraLines       int
	theme            string
	suppressInternal bool
	maxFrames        int
	readFile         func(string) ([]byte, error)
}

// New builds a traceback for err. The stack recorded by Wrap is used when
// present, otherwise the caller's stack.
func New(err error) *Traceback {
	return NewSkip(err, 1)
}

// NewSkip is New with skip frames above its caller left out of a freshly
// captured stack.
func NewSkip(err error, skip int) *Traceback {
	frames, ok := FramesOf(err)
	if !ok {
		frames = Capture(skip + 1)
	}
	return &Traceback{
		err:              err,
		frames:           frames,
		extraLines:       defaultExtraLines,
		theme:            syntax.DefaultTheme,
		suppressInternal: true,
		maxFrames:        defaultMaxFrames,
		readFile:         os.ReadFile,
	}
}

// FromPanic builds a traceback for a recovered panic value. Call it from the
// deferred function that recovered.
func FromPanic(v any) *Traceback {
	err, ok := v.(error)
	if !ok {
		err = fmt.Errorf("panic: %v", v)
	}
	return NewSkip(err, 1)
}

// WithFrames replaces the stack, most recent call first.
func (t *Traceback) WithFrames(frames []Frame) *Traceback {
	t.frames = frames
	return t
}

// WithExtraLines sets how many source lines are shown either side of a frame.
func (t *Traceback) WithExtraLines(n int) *Traceback {
	t.extraLines = max(0, n)
	return t
}

// WithTheme selects the syntax theme for source excerpts.
func (t *Traceback) WithTheme(name string) *Traceback {
	if name != "" {
		t.theme = name
	}
	return t
}

// WithSuppressInternal hides runtime, testing and module cache frames.
func (t *Traceback) WithSuppressInternal(suppress bool) *Traceback {
	t.suppressInternal = suppress
	return t
}

// WithMaxFrames limits the report to the most recent n frames.
func (t *Traceback) WithMaxFrames(n int) *Traceback {
	t.maxFrames = max(1, n)
	return t
}

// WithSourceReader replaces the function used to load source files.
func (t *Traceback) WithSourceReader(read func(string) ([]byte, error)) *Traceback {
	t.readFile = read
	return t
}

// Frames returns the frames that will be shown, oldest call first.
func (t *Traceback) Frames() []Frame {
	var kept []Frame
	for _, f := range t.frames {
		if t.suppressInternal && internal(f) {
			continue
		}
		kept = append(kept, f)
		if len(kept) == t.maxFrames {
			break
		}
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

func internal(f Frame) bool {
	return strings.HasPrefix(f.Function, "runtime.") ||
		strings.HasPrefix(f.Function, "testing.") ||
		strings.Contains(f.File, "/pkg/mod/")
}

// Render draws the header, every frame with its source excerpt, then the error.
func (t *Traceback) Render(c render.Console, opts render.Options) render.Result {
	width := render.Width(c, opts)
	lines := []segment.Line{
		{segment.New("Traceback", errorNameStyle), segment.New(" (most recent call last)", dimStyle)},
		{},
	}
	for _, f := range t.Frames() {
		lines = append(lines, header(f))
		lines = append(lines, t.excerpt(c, f, width)...)
		lines = append(lines, segment.Line{})
	}
	lines = append(lines, segment.Line{
		segment.New(t.errorName(), errorNameStyle),
		segment.New(": ", dimStyle),
		segment.New(t.message(), errorMessageStyle),
	})
	return render.FromLines(lines)
}

func header(f Frame) segment.Line {
	return segment.Line{
		segment.New("  File ", locationStyle),
		segment.New(strconv.Quote(f.File), pathStyle),
		segment.New(", line ", locationStyle),
		segment.New(strconv.Itoa(f.Line), lineNumberStyle),
		segment.New(", in ", locationStyle),
		segment.New(shortFunction(f.Function), functionStyle),
	}
}

// shortFunction drops the import path, keeping "pkg.Func".
func shortFunction(name string) string {
	if name == "" {
		return "<unknown>"
	}
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// excerpt highlights the lines around the frame, indented under its header.
func (t *Traceback) excerpt(c render.Console, f Frame, width int) []segment.Line {
	unavailable := []segment.Line{{segment.Plain(indent), segment.New("[source not available]", unavailableStyle)}}
	if t.readFile == nil || f.File == "" {
		return unavailable
	}
	data, err := t.readFile(f.File)
	if err != nil {
		return unavailable
	}
	source := strings.Split(string(data), "\n")
	if f.Line <= 0 || f.Line > len(source) {
		return unavailable
	}

	start := max(0, f.Line-t.extraLines-1)
	end := min(len(source), f.Line+t.extraLines)
	code := syntax.FromFile(f.File, strings.Join(source[start:end], "\n")).
		WithTheme(t.theme).
		WithLineNumbers(true).
		WithStartLine(start + 1).
		WithHighlightLines(f.Line)

	body := render.Lines(code, c, render.Options{Width: max(1, width-len(indent))})
	out := make([]segment.Line, 0, len(body)+1)
	out = append(out, segment.Line{})
	for _, line := range body {
		out = append(out, append(segment.Line{segment.Plain(indent)}, line...))
	}
	return out
}

// errorName is the dynamic type of the innermost error the report was built
// for, ignoring the stack wrapper.
func (t *Traceback) errorName() string {
	if t.err == nil {
		return "error"
	}
	err := t.err
	if traced, ok := err.(*tracedError); ok {
		err = traced.err
	}
	return fmt.Sprintf("%T", err)
}

func (t *Traceback) message() string {
	if t.err == nil {
		return "<nil>"
	}
	return t.err.Error()
}
