package derive

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type Derive interface {
	Config() *Config
	Layer(name string, typ string) Layer
	Tracer() trace.Tracer
	Instrument() Instrument
	Shutdown(ctx context.Context) error
}

type Layer interface {
	With(ctx context.Context) (Span, context.Context)
}

type Span interface {
	Variable(key string, value any)
	Error(message string, err error) error
	Started() *time.Time
	Trace() trace.Span
	End()
}

type Instrument interface {
	GenerateRecord(ctx context.Context, trait string, duration time.Duration, success bool)
}

// With opens a span under the caller's name. It is replaced by core.New once
// telemetry is configured.
var With func(ctx context.Context) (Span, context.Context)
