// Package tracing wires OpenTelemetry spans for the scoring workflows and HTTP requests,
// exported to a Jaeger collector.
package tracing

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// DefaultServiceName is used when Config.ServiceName is empty.
const DefaultServiceName = "lifefin-backend"

// Config holds tracing configuration.
type Config struct {
	Enabled        bool
	Endpoint       string // Jaeger collector endpoint, e.g. "http://localhost:14268/api/traces"
	ServiceName    string
	ServiceVersion string
	Environment    string
	// SampleRatio is the share of new root traces kept, in (0, 1]. Zero means keep all.
	// Child spans follow their parent's decision.
	SampleRatio float64
}

var tracer atomic.Value // trace.Tracer

func init() {
	tracer.Store(noopTracer())
}

func noopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("noop")
}

// InitTracing installs the global tracer provider. When tracing is disabled spans are no-ops.
func InitTracing(cfg Config) error {
	if !cfg.Enabled {
		tracer.Store(noopTracer())
		return nil
	}

	sampler, err := newSampler(cfg.SampleRatio)
	if err != nil {
		return err
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = DefaultServiceName
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.Endpoint)))
	if err != nil {
		return fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(NewResource(cfg)),
		tracesdk.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	tracer.Store(tp.Tracer(cfg.ServiceName, trace.WithInstrumentationVersion(cfg.ServiceVersion)))
	return nil
}

// NewResource describes this process to the collector.
func NewResource(cfg Config) *resource.Resource {
	name := cfg.ServiceName
	if name == "" {
		name = DefaultServiceName
	}
	attrs := []attribute.KeyValue{
		semconv.ServiceNameKey.String(name),
		semconv.DeploymentEnvironmentKey.String(cfg.Environment),
	}
	if cfg.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersionKey.String(cfg.ServiceVersion))
	}
	return resource.NewWithAttributes(semconv.SchemaURL, attrs...)
}

func newSampler(ratio float64) (tracesdk.Sampler, error) {
	switch {
	case ratio == 0 || ratio == 1:
		return tracesdk.ParentBased(tracesdk.AlwaysSample()), nil
	case ratio < 0 || ratio > 1:
		return nil, fmt.Errorf("tracing sample ratio must be within (0, 1], got %v", ratio)
	}
	return tracesdk.ParentBased(tracesdk.TraceIDRatioBased(ratio)), nil
}

// StartSpan starts a span on the installed tracer.
func StartSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Load().(trace.Tracer).Start(ctx, name, opts...)
}

// Fail records err on span and marks it failed with a short reason.
func Fail(span trace.Span, err error, reason string) {
	span.RecordError(err)
	span.SetStatus(codes.Error, reason)
}

// Shutdown flushes and stops the tracer provider.
func Shutdown(ctx context.Context) error {
	if tp, ok := otel.GetTracerProvider().(*tracesdk.TracerProvider); ok {
		return tp.Shutdown(ctx)
	}
	return nil
}
