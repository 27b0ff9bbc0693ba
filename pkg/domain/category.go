package domain

// CategoryID identifies a category in the upstream catalog.
type CategoryID int64

// Category is a top-level grouping of catalog items as returned by the
// upstream catalog API. Optional fields are empty when absent.
type Category struct {
	// ID is the unique, stable identifier of the category.
	ID CategoryID
	// Slug is the unique human-readable key of the category.
	Slug string
	// Name is the display name.
	Name string
	// Description is an optional descriptive text.
	Description string

	// MetaTitle is the optional SEO title.
	MetaTitle string
	// MetaDescription is the optional SEO description.
	MetaDescription string
	// MetaKeywords is the optional SEO keywords list, as sent by the upstream.
	MetaKeywords string
}

// EnrichedCategory is a Category joined with the display fields the browse UI
// needs: an icon, a navigation path and the number of active items.
type EnrichedCategory struct {
	Category

	// Icon is resolved from the slug; unknown slugs get the default icon.
	Icon Icon
	// Href is the navigation path of the category, "/calculators/<slug>".
	Href string
	// Count is the number of active items referencing the category.
	Count int
}
