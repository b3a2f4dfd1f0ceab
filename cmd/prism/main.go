package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/prism/internal/console"
	"github.com/alexisbeaulieu97/prism/internal/ui/traceback"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			c := console.New(console.Options{Out: os.Stderr})
			_ = c.Print(traceback.FromPanic(r))
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		// Render errors have already been printed through the console.
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
