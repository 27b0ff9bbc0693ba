// Package catalog defines the data-access contract for the upstream catalog
// that owns categories and their items.
package catalog

import (
	"browse/pkg/domain"
	"context"
)

// ItemFilter narrows the items returned by Client.Items.
type ItemFilter struct {
	// ActiveOnly asks the upstream for active items only.
	ActiveOnly bool
}

// Client reads catalog records from a backing provider. Implementations
// return a non-nil error on transport failures and on responses that are not
// a sequence of records.
//
//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Client interface {
	// Categories returns every category record in upstream order.
	Categories(ctx context.Context) ([]domain.Category, error)
	// Items returns the item records matching filter.
	Items(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
}
