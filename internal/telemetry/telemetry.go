// Package telemetry provides OpenTelemetry tracing for the game.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "rouge"
	serviceVersion = "0.1.0"
	tracerPrefix   = "rouge/"
)

// Option configures Setup.
type Option func(*options)

type options struct {
	exporter sdktrace.SpanExporter
	otlp     bool
}

// WithExporter sends spans to exp as each one ends, instead of over OTLP.
func WithExporter(exp sdktrace.SpanExporter) Option {
	return func(o *options) {
		o.exporter = exp
	}
}

// WithOTLP turns the OTLP/HTTP exporter on or off. It is on by default.
// With it off and no exporter given, Setup installs nothing.
func WithOTLP(enabled bool) Option {
	return func(o *options) {
		o.otlp = enabled
	}
}

// Setup installs a global tracer provider for the game.
// By default spans are batched to an OTLP/HTTP exporter configured from the
// OTEL_EXPORTER_OTLP_* environment variables.
//
// The returned shutdown flushes pending spans and puts a no-op provider back
// in place. When nothing is installed it does nothing.
func Setup(ctx context.Context, opts ...Option) (shutdown func(context.Context) error, err error) {
	o := options{otlp: true}
	for _, opt := range opts {
		opt(&o)
	}

	var spanOpt sdktrace.TracerProviderOption
	switch {
	case o.exporter != nil:
		spanOpt = sdktrace.WithSyncer(o.exporter)
	case o.otlp:
		exporter, err := otlptracehttp.New(ctx)
		if err != nil {
			return nil, err
		}
		spanOpt = sdktrace.WithBatcher(exporter)
	default:
		return func(context.Context) error { return nil }, nil
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(spanOpt, sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return func(ctx context.Context) error {
		defer otel.SetTracerProvider(noop.NewTracerProvider())
		return tp.Shutdown(ctx)
	}, nil
}

// newResource describes this process.
// Not merged with resource.Default(), whose schema URL can conflict.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Tracer returns a named tracer for the given game component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(tracerPrefix + name)
}

// NoopTracer returns a tracer that records nothing, regardless of the global provider.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(tracerPrefix + "noop")
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
