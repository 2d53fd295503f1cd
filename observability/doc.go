// Package observability wires OpenTelemetry exporters for the module.
//
// The strategy records spans and an outcome counter through the global otel
// providers; without initialization those are no-ops. Hosts that want the
// telemetry exported initialize the providers once at startup:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"), log)
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"), log)
//	defer mp.Shutdown(ctx)
package observability
