// Package telemetry wires the global OpenTelemetry providers the engine
// reports into. The engine only talks to the otel API; installing real
// SDK providers (or none at all) is this package's job.
package telemetry

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Setup installs SDK trace and metric providers globally and returns a
// shutdown function that flushes both. Spans and metrics are collected
// in-process; exporters are the embedding application's concern, so none
// is configured here.
func Setup(serviceName string) func(context.Context) error {
	// Internal otel errors go through stdr to the standard logger.
	otel.SetLogger(stdr.New(log.New(os.Stderr, "otel ", log.LstdFlags)))

	res := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)

	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithResource(res))
	otel.SetMeterProvider(mp)

	return func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return err
		}
		return mp.Shutdown(ctx)
	}
}
