package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/prism/internal/console"
	"github.com/alexisbeaulieu97/prism/internal/render"
	"github.com/alexisbeaulieu97/prism/internal/resource"
	"github.com/alexisbeaulieu97/prism/internal/segment"
	"github.com/alexisbeaulieu97/prism/internal/ui/components"
	"github.com/alexisbeaulieu97/prism/internal/ui/markdown"
	"github.com/alexisbeaulieu97/prism/internal/ui/syntax"
	"github.com/alexisbeaulieu97/prism/internal/ui/traceback"
)

// errReported marks an error that has already been shown to the user.
var errReported = errors.New("error reported")

type mode string

const (
	modePrint    mode = "print"
	modeMarkdown mode = "markdown"
	modeJSON     mode = "json"
	modeSyntax   mode = "syntax"
	modeTable    mode = "table"
)

// selectMode picks the render mode: explicit flags first, then the detected
// content type, then syntax highlighting.
func selectMode(opts *renderOptions, content resource.Content) mode {
	switch {
	case opts.print:
		return modePrint
	case opts.markdown:
		return modeMarkdown
	case opts.json:
		return modeJSON
	case opts.syntax:
		return modeSyntax
	}
	switch content.Type {
	case resource.TypeMarkdown:
		return modeMarkdown
	case resource.TypeJSON:
		return modeJSON
	case "csv":
		return modeTable
	case "":
		if content.Name == resource.Stdin && resource.IsJSON(content.Text) {
			return modeJSON
		}
	}
	return modeSyntax
}

// report prints err through the console in the error format and marks it
// as reported. Verbose runs follow it with a traceback.
func (a *appContext) report(err error) error {
	if printErr := a.console.Print(render.Markup("[red]Error:[/]"), render.Str(err.Error())); printErr != nil {
		return errors.Join(err, printErr)
	}
	if a.verbose {
		if printErr := a.console.PrintException(err); printErr != nil {
			return errors.Join(err, printErr)
		}
	}
	return errReported
}

// renderResource loads name, builds its renderable and prints it.
func (a *appContext) renderResource(ctx context.Context, name string, opts *renderOptions) error {
	content, err := a.load(ctx, name)
	if err != nil {
		return traceback.Wrap(err)
	}
	r, err := a.document(content, opts)
	if err != nil {
		return traceback.Wrap(err)
	}
	return a.console.PrintWith(console.PrintOptions{Width: opts.width}, r)
}

// load reads the resource, showing a spinner while a URL is fetched on an
// interactive terminal.
func (a *appContext) load(ctx context.Context, name string) (resource.Content, error) {
	if resource.IsURL(name) && a.console.Interactive() {
		if st, err := a.console.Status("Fetching "+name, ""); err == nil {
			st.Start(ctx)
			defer st.Stop()
		}
	}
	return a.loader.Load(ctx, name)
}

// document builds the content renderable and applies the layout flags in
// order: padding, panel, alignment.
func (a *appContext) document(content resource.Content, opts *renderOptions) (render.Renderable, error) {
	r, err := a.body(content, opts)
	if err != nil {
		return nil, err
	}

	if opts.padding != "" {
		pad, err := parsePadding(opts.padding)
		if err != nil {
			return nil, err
		}
		r = components.NewPadding(r, pad)
	}

	boxName := opts.panel
	if boxName == "" {
		boxName = a.config.Panel.Box
	}
	if boxName != "" {
		panel := components.NewPanel(r).
			WithBox(boxName).
			WithTitle(opts.title).
			WithSubtitle(opts.caption)
		switch {
		case opts.style != "":
			panel = panel.WithBorderStyle(opts.style)
		case a.config.Panel.BorderStyle != "":
			panel = panel.WithBorderStyle(a.config.Panel.BorderStyle)
		}
		r = panel
	} else if opts.style != "" {
		r = styled(r, opts.style)
	}

	if align, ok := opts.alignment(); ok {
		r = components.NewAlign(r, align)
	}
	return r, nil
}

// body builds the renderable for the selected mode.
func (a *appContext) body(content resource.Content, opts *renderOptions) (render.Renderable, error) {
	m := selectMode(opts, content)
	a.log.Debug("render mode selected", "mode", string(m), "type", content.Type)

	switch m {
	case modePrint:
		return components.NewText(content.Text), nil
	case modeMarkdown:
		style := markdown.DefaultStyle
		if a.console.Profile() == termenv.Ascii {
			style = "notty"
		}
		return markdown.New(content.Text).WithStyle(style), nil
	case modeJSON:
		return syntax.NewJSON(content.Text).WithTheme(a.syntaxTheme(opts)), nil
	case modeTable:
		return csvTable(content)
	default:
		var code *syntax.Syntax
		switch {
		case opts.lexer != "":
			code = syntax.New(content.Text, opts.lexer)
		case content.Type != "":
			code = syntax.New(content.Text, content.Type)
		default:
			code = syntax.FromFile(content.Name, content.Text)
		}
		return code.
			WithTheme(a.syntaxTheme(opts)).
			WithLineNumbers(opts.lineNumbers || a.config.Syntax.LineNumbers), nil
	}
}

func (a *appContext) syntaxTheme(opts *renderOptions) string {
	if opts.theme != "" {
		return opts.theme
	}
	if a.config.Syntax.Theme != "" {
		return a.config.Syntax.Theme
	}
	return syntax.DefaultTheme
}

// csvTable lays out delimited text as a table whose first record is the
// header. Tab separated files are recognised by extension.
func csvTable(content resource.Content) (render.Renderable, error) {
	reader := csv.NewReader(strings.NewReader(content.Text))
	if strings.HasSuffix(strings.ToLower(content.Name), ".tsv") {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", content.Name, err)
	}

	table := components.NewTable()
	if len(records) == 0 {
		return table, nil
	}
	table.AddColumns(records[0]...)
	for _, record := range records[1:] {
		cells := make([]render.Renderable, len(record))
		for i, value := range record {
			cells[i] = render.Str(value)
		}
		table.AddRow(cells...)
	}
	return table, nil
}

// styled applies a theme style underneath everything r renders.
func styled(r render.Renderable, description string) render.Renderable {
	return render.Func(func(c render.Console, opts render.Options) render.Result {
		res := r.Render(c, opts)
		res.Segments = segment.Apply(res.Segments, render.ThemeOf(c).Resolve(description))
		return res
	})
}
