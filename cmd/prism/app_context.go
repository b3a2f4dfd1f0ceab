package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/console"
	"github.com/alexisbeaulieu97/prism/internal/logger"
	"github.com/alexisbeaulieu97/prism/internal/resource"
)

// appContext bundles the services a command needs, built once per run.
type appContext struct {
	log     *logger.Logger
	config  *config.Config
	console *console.Console
	loader  *resource.Loader
	verbose bool
}

// newAppContext loads the optional configuration file and builds the
// console over the command's streams. Flags override file values.
func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	cfg := &config.Config{}
	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return nil, err
		}
		log.Debug("configuration loaded", "path", flags.configPath)
	}

	th, err := cfg.BuildTheme()
	if err != nil {
		return nil, err
	}

	colorSystem := cfg.Console.ColorSystem
	if flags.colorSystem != "" {
		colorSystem = flags.colorSystem
	}

	c := console.New(console.Options{
		Width:       cfg.Console.Width,
		Height:      cfg.Console.Height,
		ColorSystem: colorSystem,
		Theme:       th,
		Out:         cmd.OutOrStdout(),
		Err:         cmd.ErrOrStderr(),
		Logger:      log,
	})

	loader := resource.NewLoader(
		resource.WithStdin(cmd.InOrStdin()),
		resource.WithLogger(log),
	)

	return &appContext{log: log, config: cfg, console: c, loader: loader, verbose: flags.verbose}, nil
}
