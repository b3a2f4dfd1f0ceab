package main

import (
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prism/internal/terminal"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rendererModules are the libraries whose versions change rendered output.
var rendererModules = []string{
	"github.com/alecthomas/chroma/v2",
	"github.com/charmbracelet/glamour",
	"github.com/charmbracelet/lipgloss",
	"github.com/muesli/termenv",
}

func newVersionCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the detected terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Prism %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
			fmt.Fprintf(out, "color system: %s\nwidth: %d\n",
				terminal.ColorSystemName(app.console.Profile()), app.console.Width())
			writeRenderers(out, renderers())
			return nil
		},
	}

	return cmd
}

// renderers reports the linked versions of rendererModules, in order, for
// the modules present in the build.
func renderers() []string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	versions := make(map[string]string, len(info.Deps))
	for _, dep := range info.Deps {
		if dep.Replace != nil {
			dep = dep.Replace
		}
		versions[dep.Path] = dep.Version
	}
	var out []string
	for _, path := range rendererModules {
		if v, ok := versions[path]; ok {
			out = append(out, moduleName(path)+" "+v)
		}
	}
	return out
}

// moduleName is the last path element that is not a major version suffix.
func moduleName(path string) string {
	parts := strings.Split(path, "/")
	name := parts[len(parts)-1]
	if len(parts) > 1 && strings.HasPrefix(name, "v") && strings.Trim(name[1:], "0123456789") == "" {
		name = parts[len(parts)-2]
	}
	return name
}

func writeRenderers(w io.Writer, list []string) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(w, "renderers: %s\n", strings.Join(list, ", "))
}
