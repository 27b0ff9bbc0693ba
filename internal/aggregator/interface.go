package aggregator

import (
	"browse/pkg/domain"
	"context"
)

// Aggregator builds the category views of the browse UI from the upstream
// catalog. Upstream failures never surface to callers: the category views
// degrade to an empty list instead.
//
//go:generate mockgen -package mockaggregator -source=interface.go -destination=mock/mockaggregator.go *
type Aggregator interface {
	// Enriched returns every upstream category with its icon, href and active
	// item count, in upstream order.
	Enriched(ctx context.Context) []domain.EnrichedCategory
	// Main returns the allow-listed categories that have at least one active item.
	Main(ctx context.Context) []domain.EnrichedCategory
	// Other returns the remaining categories that have at least one active item.
	Other(ctx context.Context) []domain.EnrichedCategory
	// Icon resolves the icon of a category slug. The flag is false when the
	// slug fell back to the default icon.
	Icon(slug string) (domain.Icon, bool)
}
