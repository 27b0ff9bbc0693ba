package aggregator

import (
	"browse/pkg/metrics"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

type instruments struct {
	// requests counts upstream calls by resource and outcome.
	requests metric.Int64Counter
	// duration records upstream call latency by resource.
	duration metric.Float64Histogram
	// degraded counts aggregations answered with an empty list, by error kind.
	degraded metric.Int64Counter
}

func newInstruments(mp metric.MeterProvider) (instruments, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	requests, err := meter.Int64Counter("browse.upstream.requests",
		metric.WithDescription("Upstream catalog requests by resource and outcome."))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create requests counter: %w", err)
	}
	duration, err := meter.Float64Histogram("browse.upstream.duration",
		metric.WithDescription("Upstream catalog request latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create duration histogram: %w", err)
	}
	degraded, err := meter.Int64Counter("browse.aggregations.degraded",
		metric.WithDescription("Aggregations that served an empty list because the upstream failed."))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create degraded counter: %w", err)
	}

	return instruments{requests: requests, duration: duration, degraded: degraded}, nil
}

// observe runs call inside a client span and records its latency and outcome.
func (a *aggregator) observe(ctx context.Context, resource string, call func(ctx context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, "catalog."+resource, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	start := time.Now()
	err := call(ctx)

	res := attribute.String("resource", resource)
	a.instruments.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(res))

	outcome := "ok"
	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	a.instruments.requests.Add(ctx, 1, metric.WithAttributes(res, attribute.String("outcome", outcome)))

	return err
}
