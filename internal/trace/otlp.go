// Package trace configures OpenTelemetry tracing for the reels service.
// Tracing is opt-in: without OTEL_EXPORTER_OTLP_ENDPOINT the global no-op
// provider stays in place and spans cost nothing.
package trace

import (
	"context"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

// DefaultServiceName is used when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "dagenreels"

// OTLPExporter exports spans to an OTLP/HTTP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set
// and installs it as the global tracer provider.
// Returns nil if endpoint not configured (disabled)
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	// The exporter reads the standard URL form (http://host:4318) itself and
	// appends /v1/traces; a bare host:port needs explicit options.
	var opts []otlptracehttp.Option
	if !strings.Contains(endpoint, "://") {
		opts = append(opts,
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		)
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(Resource()),
	)
	otel.SetTracerProvider(provider)

	return &OTLPExporter{provider: provider}, nil
}

// Resource describes this process to the collector.
func Resource() *resource.Resource {
	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
}

// Enabled reports whether spans are being exported.
func (e *OTLPExporter) Enabled() bool {
	return e != nil
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
