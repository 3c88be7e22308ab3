package repository

import "ppe-inventory/internal/inventory"

// ListItemsOptions selects the items of one category.
// Filters are attribute equality conditions applied by the store.
type ListItemsOptions struct {
	Category inventory.Category
	Filters  map[string]string
}

// GetItemOptions identifies a single item.
type GetItemOptions struct {
	Category inventory.Category
	ID       string
}

// CreateItemOptions holds the fields of a new item. The store assigns the id
// and the timestamps.
type CreateItemOptions struct {
	Category   inventory.Category
	Code       string
	Attributes inventory.Attributes
	Stock      inventory.Stock
}

// ReplaceItemOptions holds the full replacement of an existing item.
// The creation time of the existing record is kept.
type ReplaceItemOptions struct {
	Category   inventory.Category
	ID         string
	Code       string
	Attributes inventory.Attributes
	Stock      inventory.Stock
}

// DeleteItemOptions identifies the item to remove.
type DeleteItemOptions struct {
	Category inventory.Category
	ID       string
}
