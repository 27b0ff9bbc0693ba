package tracing_test

import (
	"browse/pkg/tracing"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func TestSetup_NoopWithoutEndpoint(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := tracing.Setup(context.Background(), tracing.Options{ServiceName: "browse"})
	require.NoError(t, err)
	require.Equal(t, before, otel.GetTracerProvider(), "no provider is registered")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}

func TestSetup_RegistersProvider(t *testing.T) {
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	t.Cleanup(func() { otel.SetTextMapPropagator(prevProp) })

	// non-routable address so nothing is exported
	shutdown, err := tracing.Setup(context.Background(), tracing.Options{
		Endpoint:    "http://192.0.2.1:4318",
		ServiceName: "browse-test",
		SampleRatio: 1,
	})
	require.NoError(t, err)
	require.NotEqual(t, prevTP, otel.GetTracerProvider())
	require.IsType(t, propagation.TraceContext{}, otel.GetTextMapPropagator())

	_, span := otel.Tracer("test").Start(context.Background(), "probe")
	require.True(t, span.SpanContext().IsSampled())
	span.End()

	// the export fails against the unreachable collector
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}
