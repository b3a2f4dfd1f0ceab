// Package status shows a spinner with a message on a single repainted line.
package status

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/style"
)

// Options configure a Status.
type Options struct {
	// Spinner names the animation; empty selects DefaultSpinner.
	Spinner string
	// Style is applied to the spinner frame. Defaults to green.
	Style   *style.Style
	Profile termenv.Profile
	Logger  *logger.Logger
	// Now replaces the clock, for tests.
	Now func() time.Time
}

// Status repaints "<frame> <message>" until stopped. It is safe for
// concurrent use.
type Status struct {
	out     *termenv.Output
	spinner Spinner
	style   style.Style
	profile termenv.Profile
	log     *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	message string
	started time.Time
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a stopped Status writing to w. It fails only when the spinner
// name is unknown.
func New(w io.Writer, message string, opts Options) (*Status, error) {
	sp, err := Lookup(opts.Spinner)
	if err != nil {
		return nil, err
	}
	st := style.Parse("green")
	if opts.Style != nil {
		st = *opts.Style
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Status{
		out:     termenv.NewOutput(w, termenv.WithProfile(opts.Profile)),
		spinner: sp,
		style:   st,
		profile: opts.Profile,
		log:     opts.Logger,
		now:     now,
		message: message,
	}, nil
}

// Spinner returns the animation in use.
func (s *Status) Spinner() Spinner { return s.spinner }

// Line renders the status line for the given elapsed time.
func (s *Status) Line(elapsed time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lineLocked(elapsed)
}

func (s *Status) lineLocked(elapsed time.Duration) string {
	frame := s.style.RenderFor(s.profile, s.spinner.Frame(elapsed))
	if s.message == "" {
		return frame
	}
	return frame + " " + s.message
}

// Start begins repainting on its own goroutine. The loop ends when ctx is
// cancelled or Stop is called. Starting a running Status does nothing.
func (s *Status) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})
	s.started = s.now()
	done := s.done
	s.mu.Unlock()

	s.log.Debug("status started", "spinner", s.spinner.Name)
	s.out.HideCursor()
	s.paint()
	go s.loop(ctx, done)
}

func (s *Status) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.spinner.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.paint()
		}
	}
}

// paint redraws the line. It holds the lock for the whole write and does
// nothing once Stop has begun, so a late Update cannot follow the final clear.
func (s *Status) paint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	line := s.lineLocked(s.now().Sub(s.started))
	_, _ = s.out.WriteString("\r")
	s.out.ClearLine()
	_, _ = s.out.WriteString(line)
}

// Update replaces the message and repaints if running.
func (s *Status) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
	s.paint()
}

// Stop ends the loop, clears the line and restores the cursor. It waits for
// the loop to exit and is safe to call more than once.
func (s *Status) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.out.WriteString("\r")
	s.out.ClearLine()
	s.out.ShowCursor()
	s.log.Debug("status stopped", "spinner", s.spinner.Name)
}

// Running reports whether the loop is active.
func (s *Status) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
