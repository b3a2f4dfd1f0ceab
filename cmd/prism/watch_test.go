package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchRendersOnChange(t *testing.T) {
	path := writeFile(t, "note.txt", "first version\n")

	out := &syncBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	cmd.SetErr(&syncBuffer{})
	cmd.SetIn(strings.NewReader(""))

	app, err := newAppContext(cmd, &rootFlags{colorSystem: "none"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	rendered := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- app.watch(ctx, path, &renderOptions{print: true, width: 40}, rendered)
	}()

	select {
	case <-rendered:
	case <-time.After(5 * time.Second):
		t.Fatal("initial render did not happen")
	}
	require.Contains(t, out.String(), "first version")

	require.NoError(t, os.WriteFile(path, []byte("second version\n"), 0o600))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "second version")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestWatchRequiresExistingDirectory(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	app, err := newAppContext(cmd, &rootFlags{colorSystem: "none"})
	require.NoError(t, err)

	err = app.watch(context.Background(), "/definitely/not/here/file.txt", &renderOptions{}, nil)
	require.Error(t, err)
}
