package telemetry

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

const ServiceName = "residence-hub"

var ErrUnknownExporter = errors.New("unknown trace exporter")

// Setup installs the global tracer provider for the given exporter
// ("none", "stdout" or "stderr") and returns its shutdown func.
func Setup(ctx context.Context, exporter string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	var opts []stdouttrace.Option
	switch exporter {
	case "", "none":
		return noop, nil
	case "stdout":
		opts = append(opts, stdouttrace.WithWriter(os.Stdout))
	case "stderr":
		opts = append(opts, stdouttrace.WithWriter(os.Stderr))
	default:
		return noop, fmt.Errorf("%w: %s", ErrUnknownExporter, exporter)
	}

	exp, err := stdouttrace.New(opts...)
	if err != nil {
		return noop, fmt.Errorf("create exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(attribute.String("service.name", ServiceName)))
	if err != nil {
		return noop, fmt.Errorf("create resource: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp.Shutdown, nil
}
