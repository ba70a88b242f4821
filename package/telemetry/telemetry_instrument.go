package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	GenerateFragmentCounter   metric.Int64Counter
	GenerateDurationHistogram metric.Int64Histogram
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	generateFragmentCounter, err := meter.Int64Counter(
		"derive.generate.fragments",
		metric.WithDescription("Number of generated trait implementations"),
	)
	if err != nil {
		return nil, err
	}

	generateDurationHistogram, err := meter.Int64Histogram(
		"derive.generate.duration",
		metric.WithDescription("Duration of a single generation"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		GenerateFragmentCounter:   generateFragmentCounter,
		GenerateDurationHistogram: generateDurationHistogram,
	}, nil
}

func (r *Instrument) GenerateRecord(ctx context.Context, trait string, duration time.Duration, success bool) {
	attributes := metric.WithAttributes(
		attribute.String("derive.trait", trait),
		attribute.Bool("derive.success", success),
	)
	r.GenerateFragmentCounter.Add(ctx, 1, attributes)
	r.GenerateDurationHistogram.Record(ctx, duration.Microseconds(), attributes)
}
