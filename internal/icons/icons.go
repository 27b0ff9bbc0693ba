// Package icons maps category slugs to Lucide icon names. The table is fixed
// at build time; unknown slugs resolve to Default.
package icons

import "browse/pkg/domain"

// Lucide icon names used by the browse UI.
const (
	Sigma           domain.Icon = "sigma"
	Landmark        domain.Icon = "landmark"
	Atom            domain.Icon = "atom"
	FlaskConical    domain.Icon = "flask-conical"
	HeartPulse      domain.Icon = "heart-pulse"
	ArrowRightLeft  domain.Icon = "arrow-right-left"
	BarChart3       domain.Icon = "bar-chart-3"
	Construction    domain.Icon = "construction"
	Scale           domain.Icon = "scale"
	Leaf            domain.Icon = "leaf"
	UtensilsCrossed domain.Icon = "utensils-crossed"
	Trophy          domain.Icon = "trophy"
)

// Default is the icon of every slug missing from the table.
const Default = Leaf

var bySlug = map[string]domain.Icon{ //nolint: gochecknoglobals
	"math":         Sigma,
	"finance":      Landmark,
	"physics":      Atom,
	"chemistry":    FlaskConical,
	"health":       HeartPulse,
	"health-care":  HeartPulse,
	"conversion":   ArrowRightLeft,
	"construction": Construction,
	"everyday":     Scale,
	"statistics":   BarChart3,
	"biology":      Leaf,
	"ecology":      Leaf,
	"food":         UtensilsCrossed,
	"sports":       Trophy,
}

// Lookup returns the icon mapped to slug and whether the slug is in the table.
func Lookup(slug string) (domain.Icon, bool) {
	icon, ok := bySlug[slug]

	return icon, ok
}

// Resolve returns the icon for slug, or Default when the slug is unmapped.
func Resolve(slug string) domain.Icon {
	if icon, ok := bySlug[slug]; ok {
		return icon
	}

	return Default
}

// Len returns the number of mapped slugs.
func Len() int { return len(bySlug) }
