package app

import (
	"context"
	"log"

	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/command/derive/common/config"
	"go.scnd.dev/open/derive/core"
	"go.scnd.dev/open/derive/package/expand"
	"go.scnd.dev/open/derive/package/span"
	"go.uber.org/fx"
)

type Option struct {
	Verbose    bool
	Directory  string
	ConfigName string
	SkipConfig bool
}

type App struct {
	verbose   *bool
	directory *string
	config    *config.Config
	derive    derive.Derive
	expander  *expand.Expander
	lifecycle *fx.App
}

// New builds the application graph and starts it. Stop must be called to
// flush telemetry.
func New(ctx context.Context, option *Option) (*App, error) {
	var app *App
	lifecycle := fx.New(
		fx.NopLogger,
		fx.Supply(option),
		fx.Provide(
			NewConfig,
			NewDerive,
			NewExpander,
			NewApp,
		),
		fx.Populate(&app),
	)
	if err := lifecycle.Err(); err != nil {
		return nil, span.NewError(nil, "unable to construct application", err)
	}

	if err := lifecycle.Start(ctx); err != nil {
		return nil, span.NewError(nil, "unable to start application", err)
	}
	app.lifecycle = lifecycle

	return app, nil
}

// NewConfig loads the project configuration. With SkipConfig the defaults
// are used and an existing file is not read.
func NewConfig(option *Option) (*config.Config, error) {
	if option.SkipConfig {
		return new(config.Config), nil
	}

	conf, found, err := config.Load(option.Directory, option.ConfigName)
	if err != nil {
		return nil, err
	}
	if !found && option.Verbose {
		log.Printf("configuration %s not found, using defaults", option.ConfigName)
	}
	return conf, nil
}

func NewDerive(lc fx.Lifecycle, conf *config.Config) (derive.Derive, error) {
	instance, err := core.New(conf.Derive())
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return instance.Shutdown(ctx)
		},
	})

	return instance, nil
}

func NewExpander(conf *config.Config, instance derive.Derive) *expand.Expander {
	return expand.NewDefaultExpander(conf.GetTraitPackage(), instance.Instrument())
}

func NewApp(option *Option, conf *config.Config, instance derive.Derive, expander *expand.Expander) *App {
	return &App{
		verbose:   &option.Verbose,
		directory: &option.Directory,
		config:    conf,
		derive:    instance,
		expander:  expander,
	}
}

func (r *App) Verbose() *bool {
	return r.verbose
}

func (r *App) Directory() *string {
	return r.directory
}

func (r *App) Config() *config.Config {
	return r.config
}

func (r *App) Derive() derive.Derive {
	return r.derive
}

func (r *App) Expander() *expand.Expander {
	return r.expander
}

func (r *App) Stop(ctx context.Context) error {
	if r.lifecycle == nil {
		return nil
	}
	return r.lifecycle.Stop(ctx)
}
