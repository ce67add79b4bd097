package observability

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// ServiceName identifies the API in traces and metrics.
const ServiceName = "gamereviews-api"

// Tracer starts request and store spans. InitTracing replaces it.
var Tracer trace.Tracer = otel.Tracer(ServiceName)

// TracingConfig holds configuration for initializing the tracer.
type TracingConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Enabled        bool
	// Exporter is "stdout" (default) or "otlp".
	Exporter     string
	OTLPEndpoint string
	// SamplerRatio below 1 samples root spans by trace ID; children follow their parent.
	SamplerRatio float64
}

func (c TracingConfig) name() string {
	if c.ServiceName == "" {
		return ServiceName
	}
	return c.ServiceName
}

// InitTracing installs a global tracer provider and returns its shutdown
// func. When tracing is disabled the shutdown func is a no-op.
func InitTracing(cfg TracingConfig) (func(context.Context) error, error) {
	if !cfg.Enabled {
		Tracer = otel.Tracer(cfg.name())
		return func(context.Context) error { return nil }, nil
	}

	ctx := context.Background()
	exporter, err := newSpanExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(cfg.name()),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironment(cfg.Environment),
	))
	if err != nil {
		return nil, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(samplerFor(cfg.SamplerRatio)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	Tracer = tp.Tracer(cfg.name())

	return tp.Shutdown, nil
}

func newSpanExporter(ctx context.Context, cfg TracingConfig) (sdktrace.SpanExporter, error) {
	var (
		exporter sdktrace.SpanExporter
		err      error
	)
	switch strings.ToLower(strings.TrimSpace(cfg.Exporter)) {
	case "otlp":
		exporter, err = otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	case "", "stdout":
		exporter, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", cfg.Exporter)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s trace exporter: %w", cfg.Exporter, err)
	}
	return exporter, nil
}

func samplerFor(ratio float64) sdktrace.Sampler {
	switch {
	case ratio <= 0 || ratio >= 1:
		return sdktrace.AlwaysSample()
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))
	}
}

// StartStoreSpan opens a span for one statement against a table, such as
// "reviews.GetByID".
func StartStoreSpan(ctx context.Context, dialect, table, operation string) (context.Context, trace.Span) {
	return Tracer.Start(ctx, table+"."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", dialect),
			attribute.String("db.sql.table", table),
			attribute.String("db.operation", operation),
		),
	)
}

// EndSpan marks span failed when err is non-nil and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
