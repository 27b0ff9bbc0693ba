// Package aggregator turns upstream catalog records into the category views
// of the browse UI: every category enriched with icon, href and active item
// count, split into the main and other sections.
package aggregator

import (
	"browse/internal/config"
	"browse/internal/icons"
	"browse/pkg/catalog"
	"browse/pkg/domain"
	"browse/pkg/logger"
	"browse/pkg/serrors"
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "browse/internal/aggregator"

// Options configure how the upstream is queried.
type Options struct {
	// FetchTimeout bounds both upstream requests of one aggregation. Zero
	// leaves only the caller's deadline.
	FetchTimeout time.Duration
	// Sequential fetches categories and then items instead of both at once.
	Sequential bool
	// MeterProvider creates the aggregator instruments; nil disables metrics.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs an Options value from the provided application config.
// MeterProvider is left for the caller to set.
func NewOptions(cfg *config.Config) Options {
	return Options{
		FetchTimeout: cfg.Aggregator.FetchTimeout,
		Sequential:   cfg.Aggregator.Sequential,
	}
}

type aggregator struct {
	options     Options
	client      catalog.Client
	tracer      trace.Tracer
	instruments instruments
}

// New creates an Aggregator reading from client.
func New(client catalog.Client, options Options) (Aggregator, error) {
	ins, err := newInstruments(options.MeterProvider)
	if err != nil {
		return nil, err
	}

	return &aggregator{
		options:     options,
		client:      client,
		tracer:      otel.Tracer(instrumentationName),
		instruments: ins,
	}, nil
}

// Enriched fetches categories and active items and joins them. Any upstream
// failure is logged and yields an empty, non-nil list.
func (a *aggregator) Enriched(ctx context.Context) []domain.EnrichedCategory {
	ctx, span := a.tracer.Start(ctx, "aggregator.Enriched")
	defer span.End()

	enriched, err := a.fetch(ctx)
	if err != nil {
		kind := serrors.KindOf(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "upstream unavailable")
		a.instruments.degraded.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind.Error())))
		logger.Warn(ctx, "upstream catalog unavailable, serving no categories",
			zap.String("kind", kind.Error()),
			zap.Error(err))

		return []domain.EnrichedCategory{}
	}
	span.SetAttributes(attribute.Int("categories", len(enriched)))

	return enriched
}

// Main returns the allow-listed categories with at least one active item.
func (a *aggregator) Main(ctx context.Context) []domain.EnrichedCategory {
	main, _ := Partition(a.Enriched(ctx))

	return main
}

// Other returns the categories outside the allow-list with at least one active item.
func (a *aggregator) Other(ctx context.Context) []domain.EnrichedCategory {
	_, other := Partition(a.Enriched(ctx))

	return other
}

// Icon resolves the icon of slug and reports whether the slug has its own
// entry in the table. Unmapped slugs get icons.Default.
func (a *aggregator) Icon(slug string) (domain.Icon, bool) {
	if icon, ok := icons.Lookup(slug); ok {
		return icon, true
	}

	return icons.Default, false
}

// fetch loads both record sets and enriches the categories. It fails when
// either request fails.
func (a *aggregator) fetch(ctx context.Context) ([]domain.EnrichedCategory, error) {
	if a.options.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.options.FetchTimeout)
		defer cancel()
	}

	var (
		categories []domain.Category
		items      []domain.Item
	)
	fetchCategories := func(ctx context.Context) error {
		var err error
		categories, err = a.categories(ctx)

		return err
	}
	fetchItems := func(ctx context.Context) error {
		var err error
		items, err = a.activeItems(ctx)

		return err
	}

	if a.options.Sequential {
		if err := fetchCategories(ctx); err != nil {
			return nil, err
		}
		if err := fetchItems(ctx); err != nil {
			return nil, err
		}
	} else {
		// the first failure cancels the other request
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return fetchCategories(gctx) })
		g.Go(func() error { return fetchItems(gctx) })
		if err := g.Wait(); err != nil {
			return nil, err //nolint: wrapcheck
		}
	}

	enriched := Enrich(categories, CountActive(items))
	logger.Debug(ctx, "categories aggregated",
		zap.Int("categories", len(categories)),
		zap.Int("items", len(items)))

	return enriched, nil
}

func (a *aggregator) categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := a.observe(ctx, "categories", func(ctx context.Context) error {
		var err error
		out, err = a.client.Categories(ctx)

		return err //nolint: wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch categories: %w", err)
	}

	return out, nil
}

func (a *aggregator) activeItems(ctx context.Context) ([]domain.Item, error) {
	var out []domain.Item
	err := a.observe(ctx, "items", func(ctx context.Context) error {
		var err error
		out, err = a.client.Items(ctx, catalog.ItemFilter{ActiveOnly: true})

		return err //nolint: wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("could not fetch items: %w", err)
	}

	return out, nil
}
