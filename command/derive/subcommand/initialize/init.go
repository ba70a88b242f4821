package initialize

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/command/derive/app"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/command/derive/index"
	"go.scnd.dev/open/derive/command/derive/template"
)

var ErrExists = errors.New("configuration already exists")

type Command struct {
	Force bool `help:"Overwrite an existing configuration." short:"f"`
}

func (r *Command) Run(app *app.App) error {
	return Run(context.Background(), app, r)
}

func Run(ctx context.Context, app index.App, command *Command) error {
	// * start span
	s, ctx := derive.With(ctx)
	defer s.End()

	path := filepath.Join(*app.Directory(), config.FileName)
	s.Variable("path", path)

	// * check existing configuration
	if _, err := os.Stat(path); err == nil {
		if !command.Force {
			return s.Error(path, ErrExists)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return s.Error("unable to inspect "+path, err)
	}

	if err := os.WriteFile(path, template.StructureConfig, 0o644); err != nil {
		return s.Error("unable to write "+path, err)
	}

	log.Printf("initialized %s", path)
	return nil
}
