// Package terminal detects the capabilities of the attached terminal: size,
// interactivity and colour system.
package terminal

import (
	"os"
	"runtime"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Detector reads capabilities from the environment and a file descriptor.
// Its inputs are injectable so detection can be tested without a terminal.
type Detector struct {
	getenv func(string) string
	goos   string
	fd     int
	size   func(fd int) (width, height int, err error)
	isTTY  func(fd int) bool
}

// New returns a detector for the process stdout.
func New() *Detector {
	return &Detector{
		getenv: os.Getenv,
		goos:   runtime.GOOS,
		fd:     int(os.Stdout.Fd()),
		size:   term.GetSize,
		isTTY:  term.IsTerminal,
	}
}

// WithEnv returns a copy that reads variables from env and reports goos as
// the platform.
func (d *Detector) WithEnv(env map[string]string, goos string) *Detector {
	cp := *d
	cp.getenv = func(key string) string { return env[key] }
	cp.goos = goos
	return &cp
}

// WithSize returns a copy whose size lookup is replaced.
func (d *Detector) WithSize(size func(fd int) (int, int, error)) *Detector {
	cp := *d
	cp.size = size
	return &cp
}

// Size returns the terminal dimensions, falling back to 80x24 when stdout is
// not a terminal.
func (d *Detector) Size() (width, height int) {
	w, h, err := d.size(d.fd)
	if err != nil || w <= 0 {
		w = fallbackWidth
	}
	if err != nil || h <= 0 {
		h = fallbackHeight
	}
	return w, h
}

// Width is the detected column count.
func (d *Detector) Width() int {
	w, _ := d.Size()
	return w
}

// Height is the detected row count.
func (d *Detector) Height() int {
	_, h := d.Size()
	return h
}

// IsInteractive reports whether stdout is attached to a terminal.
func (d *Detector) IsInteractive() bool {
	return d.isTTY != nil && d.isTTY(d.fd)
}

// IsLegacyWindows reports a Windows console outside Windows Terminal.
func (d *Detector) IsLegacyWindows() bool {
	return d.goos == "windows" && d.getenv("WT_SESSION") == ""
}

// ColorProfile classifies the colour system from environment variables.
func (d *Detector) ColorProfile() termenv.Profile {
	if d.getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	switch d.getenv("COLORTERM") {
	case "truecolor", "24bit":
		return termenv.TrueColor
	}
	if d.IsLegacyWindows() {
		return termenv.ANSI
	}
	if strings.Contains(d.getenv("TERM"), "256") {
		return termenv.ANSI256
	}
	return termenv.ANSI
}

// ParseColorSystem maps a configured colour system name to a profile. "auto"
// and "" report false so the caller falls back to detection.
func ParseColorSystem(name string) (termenv.Profile, bool) {
	switch strings.ToLower(name) {
	case "none":
		return termenv.Ascii, true
	case "standard":
		return termenv.ANSI, true
	case "256":
		return termenv.ANSI256, true
	case "truecolor":
		return termenv.TrueColor, true
	default:
		return termenv.Ascii, false
	}
}

// ColorSystemName is the inverse of ParseColorSystem.
func ColorSystemName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "standard"
	default:
		return "none"
	}
}
