package status

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/style"
	perrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

func TestLookupUnknownSpinner(t *testing.T) {
	t.Parallel()

	_, err := Lookup("wobble")
	var lookupErr *perrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "spinner", lookupErr.Kind)
	assert.Contains(t, lookupErr.Known, "dots")
}

func TestLookupDefault(t *testing.T) {
	t.Parallel()

	sp, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSpinner, sp.Name)
	assert.Len(t, sp.Frames, 10)
}

func TestNamesSortedAndComplete(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.IsNonDecreasing(t, names)
	for _, name := range []string{"dots", "line", "moon", "simpleDots"} {
		assert.Contains(t, names, name)
	}
	for _, name := range names {
		sp, err := Lookup(name)
		require.NoError(t, err)
		assert.NotEmpty(t, sp.Frames, name)
		assert.Positive(t, sp.Interval, name)
	}
}

func TestFrameIsFunctionOfElapsed(t *testing.T) {
	t.Parallel()

	sp, err := Lookup("dots")
	require.NoError(t, err)

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{elapsed: -time.Second, want: "⠋"},
		{elapsed: 0, want: "⠋"},
		{elapsed: 79 * time.Millisecond, want: "⠋"},
		{elapsed: 80 * time.Millisecond, want: "⠙"},
		{elapsed: 800 * time.Millisecond, want: "⠋"},
		{elapsed: 890 * time.Millisecond, want: "⠙"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sp.Frame(tt.elapsed), tt.elapsed.String())
		assert.Equal(t, sp.Frame(tt.elapsed), sp.Frame(tt.elapsed))
	}
	assert.Empty(t, Spinner{}.Frame(time.Second))
}

func TestNewRejectsUnknownSpinner(t *testing.T) {
	t.Parallel()

	s, err := New(&bytes.Buffer{}, "x", Options{Spinner: "nope"})
	require.Error(t, err)
	assert.Nil(t, s)
}

func TestLineCombinesFrameAndMessage(t *testing.T) {
	t.Parallel()

	s, err := New(&bytes.Buffer{}, "Working", Options{Spinner: "line", Profile: termenv.Ascii})
	require.NoError(t, err)
	assert.Equal(t, "| Working", s.Line(0))

	s.Update("")
	assert.Equal(t, "|", s.Line(0))
}

func TestLineAppliesStyle(t *testing.T) {
	t.Parallel()

	bold := style.New(style.Bold)
	s, err := New(&bytes.Buffer{}, "go", Options{Spinner: "line", Style: &bold, Profile: termenv.ANSI})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[1m|\x1b[0m go", s.Line(0))
}

func TestStartStopRepaints(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	start := time.Unix(0, 0)
	s, err := New(&buf, "Loading", Options{Profile: termenv.Ascii, Now: func() time.Time { return start }})
	require.NoError(t, err)

	s.Start(context.Background())
	s.Start(context.Background())
	require.True(t, s.Running())
	s.Update("Almost")
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.False(t, s.Running())
	assert.Contains(t, out, "\x1b[?25l")
	assert.Contains(t, out, "⠋ Loading")
	assert.Contains(t, out, "⠋ Almost")
	assert.Contains(t, out, "\x1b[2K")
	assert.Contains(t, out, "\x1b[?25h")
}

func TestContextCancellationEndsLoop(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := New(&buf, "wait", Options{Profile: termenv.Ascii})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loop did not exit after cancellation")
	}
	s.Stop()
	assert.False(t, s.Running())
}

func TestUpdateAfterStopDoesNotPaint(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := New(&buf, "Loading", Options{Profile: termenv.Ascii})
	require.NoError(t, err)

	s.Start(context.Background())
	s.Stop()
	before := buf.String()

	s.Update("late")
	assert.Equal(t, before, buf.String())
	assert.NotContains(t, buf.String(), "late")
}

func TestConcurrentUpdatesEndWithClearedLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s, err := New(&buf, "Loading", Options{Profile: termenv.Ascii})
	require.NoError(t, err)
	s.Start(context.Background())

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				s.Update(fmt.Sprintf("worker %d step %d", w, i))
			}
		}()
	}
	s.Stop()
	wg.Wait()

	assert.True(t, strings.HasSuffix(buf.String(), "\r\x1b[2K\x1b[?25h"))
}
