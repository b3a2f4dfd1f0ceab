package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose     bool
	configPath  string
	colorSystem string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "prism [resource]",
		Short: "Prism renders files, URLs and markup as rich terminal output",
		Long: `Prism renders a file, an http(s) URL, or standard input ("-") to the terminal.
Markdown and JSON are detected from the extension; everything else is
syntax highlighted unless a mode flag is given.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			if len(args) == 0 || args[0] == "" {
				return app.console.Print("[yellow]No resource provided. Use --help for usage information.[/]")
			}
			if err := app.renderResource(cmd.Context(), args[0], opts); err != nil {
				return app.report(err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.colorSystem, "color-system", "", "Colour system: auto, none, standard, 256 or truecolor")

	bindRenderFlags(cmd, opts)

	cmd.AddCommand(newVersionCmd(flags))
	cmd.AddCommand(newBoxesCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))

	return cmd
}
