package expand

import (
	"context"
	"io"
	"os"

	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/command/derive/app"
	"go.scnd.dev/open/derive/command/derive/index"
)

type Command struct {
	Input   string `help:"Read the declaration from a file instead of stdin." short:"i" type:"existingfile"`
	Package string `help:"Package clause used when the input has none." short:"p" default:"main"`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r, os.Stdin, os.Stdout)
}

// Run expands one type declaration from in and writes the generated
// source to out. Nothing is written when any stage fails.
func Run(ctx context.Context, app index.App, command *Command, in io.Reader, out io.Writer) error {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()

	// * read input
	var src []byte
	var err error
	if command.Input != "" {
		src, err = os.ReadFile(command.Input)
	} else {
		src, err = io.ReadAll(in)
	}
	if err != nil {
		return s.Error("unable to read input", err)
	}
	s.Variable("bytes", len(src))

	source, err := app.Expander().Expand(ctx, command.Package, src)
	if err != nil {
		return s.Error("unable to expand input", err)
	}

	if _, err := out.Write(source); err != nil {
		return s.Error("unable to write output", err)
	}

	return nil
}
