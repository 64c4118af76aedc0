package trace

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

func TestNewOTLPExporter_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	exp, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	assert.Nil(t, exp)
	assert.False(t, exp.Enabled())
	assert.NoError(t, exp.Shutdown(context.Background()), "Shutdown must be nil-safe")
}

func TestNewOTLPExporter_EnabledWithEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	exp, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	require.NotNil(t, exp)
	assert.True(t, exp.Enabled())
	assert.NoError(t, exp.Shutdown(context.Background()))
}

func TestNewOTLPExporter_ExportsToEndpointURL(t *testing.T) {
	var hits atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", collector.URL)

	exp, err := NewOTLPExporter(context.Background())
	require.NoError(t, err)
	require.True(t, exp.Enabled())

	_, span := otel.Tracer("dagenreels/test").Start(context.Background(), "render")
	span.End()
	require.NoError(t, exp.Shutdown(context.Background()))

	assert.Positive(t, hits.Load(), "span batch reaches the collector")
}

func TestResource_ServiceName(t *testing.T) {
	t.Setenv("OTEL_SERVICE_NAME", "")
	v, ok := Resource().Set().Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, attribute.StringValue(DefaultServiceName), v)

	t.Setenv("OTEL_SERVICE_NAME", "reels-staging")
	v, _ = Resource().Set().Value(semconv.ServiceNameKey)
	assert.Equal(t, "reels-staging", v.AsString())
}
