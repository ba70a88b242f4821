package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/bsthun/gut"
	"go.scnd.dev/open/derive/command/derive/app"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/command/derive/subcommand/expand"
	"go.scnd.dev/open/derive/command/derive/subcommand/generate"
	"go.scnd.dev/open/derive/command/derive/subcommand/initialize"
	"go.scnd.dev/open/derive/command/derive/subcommand/list"
)

type Command struct {
	Verbose   bool   `help:"Enable verbose output." short:"v"`
	Directory string `help:"Project directory." short:"d" default:"." type:"existingdir"`
	Config    string `help:"Configuration file name inside the project directory." short:"c" default:"${config}"`

	Generate *generate.Command   `cmd:"generate" help:"Generate trait implementations for annotated types."`
	Expand   *expand.Command     `cmd:"expand" help:"Expand a single type declaration read from stdin."`
	List     *list.Command       `cmd:"list" help:"List annotated types."`
	Init     *initialize.Command `cmd:"init" help:"Initialize a derive configuration."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("derive"),
		kong.Description("Derive Command Line Interface"),
		kong.UsageOnError(),
		kong.Vars{
			"config": config.FileName,
		},
	)

	application, err := app.New(context.Background(), &app.Option{
		Verbose:    command.Verbose,
		Directory:  command.Directory,
		ConfigName: command.Config,
		SkipConfig: ctx.Command() == "init",
	})
	if err != nil {
		gut.Fatal("unable to start derive", err)
	}

	err = ctx.Run(application)
	if stopErr := application.Stop(context.Background()); stopErr != nil && command.Verbose {
		ctx.Errorf("unable to stop derive: %v", stopErr)
	}
	ctx.FatalIfErrorf(err)
}
