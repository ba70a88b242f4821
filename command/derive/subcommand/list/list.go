package list

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/command/derive/app"
	"go.scnd.dev/open/derive/command/derive/index"
	"go.scnd.dev/open/derive/command/derive/procedure/printer"
	"go.scnd.dev/open/derive/utility/code"
)

type Command struct {
	Paths []string `arg:"" optional:"" help:"Directories to list instead of the whole module."`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r, os.Stdout)
}

// Run prints the annotated types of the module, or of the given paths, as a
// tree of module, package, type and trait.
func Run(ctx context.Context, app index.App, command *Command, out io.Writer) error {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()

	module, err := Module(ctx, app, command)
	if err != nil {
		return s.Error("unable to scan", err)
	}

	if err := printer.PrintTree(out, module); err != nil {
		return s.Error("unable to print tree", err)
	}

	return nil
}

// Module parses the module containing the project directory. Explicit
// paths are parsed recursively and attached to a module rooted at the
// project directory.
func Module(ctx context.Context, app index.App, command *Command) (*code.Module, error) {
	if len(command.Paths) == 0 {
		return code.ParseModule(ctx, *app.Directory())
	}

	root := *app.Directory()
	name := filepath.Base(root)
	if moduleRoot, moduleName, ok := code.FindModule(root); ok {
		root, name = moduleRoot, moduleName
	}

	module := &code.Module{
		Path:     &root,
		Name:     &name,
		Packages: make([]*code.Package, 0),
	}
	for _, path := range command.Paths {
		if !filepath.IsAbs(path) {
			path = filepath.Join(*app.Directory(), path)
		}
		packages, err := code.ParseDirectory(ctx, path, true)
		if err != nil {
			return nil, err
		}
		module.Packages = append(module.Packages, packages...)
	}

	return module, nil
}
