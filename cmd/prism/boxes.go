package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/box"
	"github.com/alexisbeaulieu97/prism/internal/console"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
)

func newBoxesCmd(flags *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "boxes",
		Short: "Show every registered box style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			return app.console.PrintWith(console.PrintOptions{Width: width}, boxGallery())
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Output width")

	return cmd
}

// boxGallery shows each box style as a fitted panel labelled with its name.
func boxGallery() render.Renderable {
	gallery := components.NewColumns().WithTitle("[bold]Box styles[/]").WithPadding(2)
	for _, name := range box.Names() {
		gallery.Add(components.FitPanel(render.Str(name)).WithBox(name).WithBorderStyle(""))
	}
	return gallery
}
