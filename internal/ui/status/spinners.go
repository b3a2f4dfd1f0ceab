package status

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	perrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// DefaultSpinner is the spinner used when none is named.
const DefaultSpinner = "dots"

// Spinner is a named animation: frames shown in order, one per interval.
type Spinner struct {
	Name     string
	Frames   []string
	Interval time.Duration
}

func fromBubbles(name string, s spinner.Spinner) Spinner {
	return Spinner{Name: name, Frames: s.Frames, Interval: s.FPS}
}

func fromRunes(name, frames string, interval time.Duration) Spinner {
	return Spinner{Name: name, Frames: strings.Split(frames, ""), Interval: interval}
}

var registry = map[string]Spinner{}

func register(s Spinner) { registry[s.Name] = s }

func init() {
	register(fromRunes("dots", "⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏", 80*time.Millisecond))
	register(fromRunes("dots2", "⣾⣽⣻⢿⡿⣟⣯⣷", 80*time.Millisecond))
	register(fromRunes("dots3", "⠋⠙⠚⠞⠖⠦⠴⠲⠳⠓", 80*time.Millisecond))
	register(fromRunes("line2", "⠂-–—–-", 100*time.Millisecond))
	register(fromRunes("pipe", "┤┘┴└├┌┬┐", 100*time.Millisecond))
	register(fromRunes("arc", "◜◠◝◞◡◟", 100*time.Millisecond))
	register(fromRunes("toggle", "⊶⊷", 250*time.Millisecond))
	register(Spinner{Name: "simpleDots", Frames: []string{".  ", ".. ", "...", "   "}, Interval: 400 * time.Millisecond})

	register(fromBubbles("line", spinner.Line))
	register(fromBubbles("dot", spinner.Dot))
	register(fromBubbles("miniDot", spinner.MiniDot))
	register(fromBubbles("jump", spinner.Jump))
	register(fromBubbles("pulse", spinner.Pulse))
	register(fromBubbles("points", spinner.Points))
	register(fromBubbles("globe", spinner.Globe))
	register(fromBubbles("moon", spinner.Moon))
	register(fromBubbles("monkey", spinner.Monkey))
	register(fromBubbles("meter", spinner.Meter))
	register(fromBubbles("hamburger", spinner.Hamburger))
	register(fromBubbles("ellipsis", spinner.Ellipsis))
}

// Lookup returns the named spinner. Unknown names are an error.
func Lookup(name string) (Spinner, error) {
	if name == "" {
		name = DefaultSpinner
	}
	s, ok := registry[name]
	if !ok {
		return Spinner{}, perrors.NewLookupError("spinner", name, Names())
	}
	return s, nil
}

// Names lists the registered spinners in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Frame returns the frame shown after elapsed time. It is a pure function of
// its inputs; negative durations show the first frame.
func (s Spinner) Frame(elapsed time.Duration) string {
	if len(s.Frames) == 0 {
		return ""
	}
	if elapsed <= 0 || s.Interval <= 0 {
		return s.Frames[0]
	}
	return s.Frames[int(elapsed/s.Interval)%len(s.Frames)]
}
