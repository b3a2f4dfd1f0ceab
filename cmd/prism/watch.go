package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newWatchCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Render a file and render it again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return app.watch(ctx, args[0], opts, nil)
		},
	}

	bindRenderFlags(cmd, opts)

	return cmd
}

// watch renders path, then renders it again after every write until ctx is
// done. Render failures are reported and watching continues. rendered, when
// set, receives a value after each render.
func (a *appContext) watch(ctx context.Context, path string, opts *renderOptions, rendered chan<- struct{}) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	a.log.Info("watching", "path", target)

	a.refresh(ctx, path, opts, false)
	notify(rendered)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			a.log.Debug("file changed", "path", event.Name, "op", event.Op.String())
			a.refresh(ctx, path, opts, true)
			notify(rendered)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", "error", err.Error())
		}
	}
}

func (a *appContext) refresh(ctx context.Context, path string, opts *renderOptions, clear bool) {
	if clear && a.console.Interactive() {
		termenv.NewOutput(a.console.Out()).ClearScreen()
	}
	if err := a.renderResource(ctx, path, opts); err != nil {
		_ = a.report(err)
	}
}

func notify(ch chan<- struct{}) {
	if ch == nil {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}
