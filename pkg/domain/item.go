package domain

// ItemID identifies a catalog item (a calculator).
type ItemID int64

// Item is a catalog entry belonging to exactly one category.
type Item struct {
	ID         ItemID
	CategoryID CategoryID
	Active     bool
}
