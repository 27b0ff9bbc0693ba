package aggregator

import (
	"browse/pkg/domain"
	"slices"
)

// mainSlugs are the categories shown in the main browse section.
var mainSlugs = map[string]struct{}{ //nolint: gochecknoglobals
	"biology":      {},
	"chemistry":    {},
	"construction": {},
	"conversion":   {},
	"ecology":      {},
	"everyday":     {},
	"finance":      {},
	"food":         {},
	"health":       {},
	"math":         {},
	"physics":      {},
	"sports":       {},
	"statistics":   {},
}

// IsMain reports whether slug belongs to the main browse section.
func IsMain(slug string) bool {
	_, ok := mainSlugs[slug]

	return ok
}

// MainSlugs returns the main section slugs, sorted.
func MainSlugs() []string {
	out := make([]string, 0, len(mainSlugs))
	for s := range mainSlugs {
		out = append(out, s)
	}
	slices.Sort(out)

	return out
}

// Partition splits the categories with a non-zero count into the main and
// other sections, keeping their relative order. Zero-count categories are in
// neither.
func Partition(enriched []domain.EnrichedCategory) ([]domain.EnrichedCategory, []domain.EnrichedCategory) {
	main := make([]domain.EnrichedCategory, 0)
	other := make([]domain.EnrichedCategory, 0)
	for _, c := range enriched {
		if c.Count <= 0 {
			continue
		}
		if IsMain(c.Slug) {
			main = append(main, c)
		} else {
			other = append(other, c)
		}
	}

	return main, other
}
