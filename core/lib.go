package core

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/package/span"
	"go.scnd.dev/open/derive/package/telemetry"
)

type Instance struct {
	config    *derive.Config
	telemetry *telemetry.Telemetry
}

func New(config *derive.Config) (_ derive.Derive, err error) {
	if config == nil {
		config = new(derive.Config)
	}

	i := &Instance{
		config:    config,
		telemetry: nil,
	}

	i.telemetry, err = telemetry.New(config)
	if err != nil {
		return nil, err
	}

	derive.With = span.NewLayer(i, "", "").With

	return i, nil
}

func (r *Instance) Config() *derive.Config {
	return r.config
}

func (r *Instance) Layer(name string, typ string) derive.Layer {
	return span.NewLayer(r, name, typ)
}

func (r *Instance) Tracer() trace.Tracer {
	return r.telemetry.Tracer
}

func (r *Instance) Instrument() derive.Instrument {
	return r.telemetry.Instrument
}

func (r *Instance) Shutdown(ctx context.Context) error {
	return r.telemetry.Shutdown(ctx)
}

func init() {
	derive.With = span.NewLayer(nil, "", "").With
}
