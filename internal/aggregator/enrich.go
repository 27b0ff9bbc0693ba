package aggregator

import (
	"browse/internal/icons"
	"browse/pkg/domain"
)

const hrefPrefix = "/calculators/"

// Href returns the navigation path of a category. Routing depends on this
// exact format, the slug is not escaped.
func Href(slug string) string {
	return hrefPrefix + slug
}

// CountActive counts active items per category. Inactive items are skipped
// even when the upstream was asked to filter them out.
func CountActive(items []domain.Item) map[domain.CategoryID]int {
	counts := make(map[domain.CategoryID]int)
	for _, it := range items {
		if !it.Active {
			continue
		}
		counts[it.CategoryID]++
	}

	return counts
}

// Enrich joins counts onto categories, one EnrichedCategory per category in
// the same order. Categories missing from counts get a zero count.
func Enrich(categories []domain.Category, counts map[domain.CategoryID]int) []domain.EnrichedCategory {
	out := make([]domain.EnrichedCategory, 0, len(categories))
	for _, c := range categories {
		out = append(out, domain.EnrichedCategory{
			Category: c,
			Icon:     icons.Resolve(c.Slug),
			Href:     Href(c.Slug),
			Count:    counts[c.ID],
		})
	}

	return out
}
