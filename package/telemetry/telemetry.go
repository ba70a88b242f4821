package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
	"go.scnd.dev/open/derive"
	"go.scnd.dev/open/derive/package/span"
)

type Telemetry struct {
	Config         *derive.Config
	Meter          metric.Meter
	Tracer         trace.Tracer
	Instrument     *Instrument
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
}

func New(config *derive.Config) (_ *Telemetry, err error) {
	// * construct telemetry
	telemetry := &Telemetry{
		Config:     config,
		Meter:      nil,
		Tracer:     nil,
		Instrument: nil,
	}

	if config.TelemetryUrl == nil || *config.TelemetryUrl == "" {
		// * telemetry disabled, fall back to no-op providers
		telemetry.Tracer = tracenoop.NewTracerProvider().Tracer("derive-tracer")
		telemetry.Meter = metricnoop.NewMeterProvider().Meter("derive-meter")
	} else {
		// * construct resource
		attributes := make([]attribute.KeyValue, 0)
		if config.AppName != nil {
			attributes = append(attributes, semconv.ServiceName(*config.AppName))
		}
		if config.AppVersion != nil {
			attributes = append(attributes, semconv.ServiceVersion(*config.AppVersion))
		}
		res, err := resource.New(context.Background(), resource.WithAttributes(attributes...))
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize resource", err)
		}

		// * construct meter
		telemetry.Meter, err = NewMeter(telemetry, res)
		if err != nil {
			return nil, err
		}

		// * construct tracer
		telemetry.Tracer, err = NewTracer(telemetry, res)
		if err != nil {
			return nil, err
		}
	}

	// * construct instrument
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize instrument", err)
	}

	return telemetry, nil
}

func (r *Telemetry) headers() map[string]string {
	headers := make(map[string]string)
	if r.Config.TelemetryOrganization != nil {
		headers["X-Scope-OrgID"] = *r.Config.TelemetryOrganization
	}
	return headers
}

func NewMeter(telemetry *Telemetry, res *resource.Resource) (metric.Meter, error) {
	// * construct exporter
	exporter, err := otlpmetricgrpc.New(
		context.Background(),
		otlpmetricgrpc.WithEndpoint(*telemetry.Config.TelemetryUrl),
		otlpmetricgrpc.WithHeaders(telemetry.headers()),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize metric exporter", err)
	}

	// * construct provider
	telemetry.MeterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(time.Minute),
		)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(telemetry.MeterProvider)

	return otel.Meter("derive-meter"), nil
}

func NewTracer(telemetry *Telemetry, res *resource.Resource) (trace.Tracer, error) {
	// * construct exporter
	exporter, err := otlptracegrpc.New(
		context.Background(),
		otlptracegrpc.WithEndpoint(*telemetry.Config.TelemetryUrl),
		otlptracegrpc.WithHeaders(telemetry.headers()),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize trace exporter", err)
	}

	// * construct provider
	telemetry.TracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(telemetry.TracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return otel.Tracer("derive-tracer"), nil
}

// Shutdown flushes and stops the exporting providers, if any.
func (r *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if r.TracerProvider != nil {
		errs = append(errs, r.TracerProvider.Shutdown(ctx))
	}
	if r.MeterProvider != nil {
		errs = append(errs, r.MeterProvider.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
