package strategy

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/authware/idtoken/strategy"

// instruments holds the OpenTelemetry handles shared by a Strategy. Creation
// never fails the strategy: when no meter provider is installed the otel API
// falls back to no-op instruments.
type instruments struct {
	tracer   trace.Tracer
	outcomes metric.Int64Counter
}

func newInstruments() *instruments {
	meter := otel.Meter(instrumentationName)
	outcomes, err := meter.Int64Counter(
		"idtoken.authenticate.outcomes",
		metric.WithDescription("Terminal outcomes of authentication attempts"),
	)
	if err != nil {
		outcomes = nil
	}
	return &instruments{
		tracer:   otel.Tracer(instrumentationName),
		outcomes: outcomes,
	}
}

func (i *instruments) start(ctx context.Context, name string) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, "strategy.Authenticate",
		trace.WithAttributes(attribute.String("strategy", name)))
}

func (i *instruments) record(ctx context.Context, span trace.Span, name string, out Outcome) {
	attrs := outcomeAttrs(name, out)
	if i.outcomes != nil {
		i.outcomes.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
	span.SetAttributes(attrs[1])
	if out.Errored() && out.Err != nil {
		span.RecordError(out.Err)
		span.SetStatus(codes.Error, out.Err.Error())
	}
	span.End()
}
