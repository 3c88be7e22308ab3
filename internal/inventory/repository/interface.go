package repository

import (
	"context"

	"ppe-inventory/internal/inventory"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
	Ping(ctx context.Context) error
}

// ItemRepository defines all data access methods for inventory items.
// Items are returned as persisted; derived stock fields are not recomputed here.
type ItemRepository interface {
	ListItems(ctx context.Context, opt ListItemsOptions) ([]inventory.Item, error)
	GetItem(ctx context.Context, opt GetItemOptions) (inventory.Item, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) (inventory.Item, error)
	ReplaceItem(ctx context.Context, opt ReplaceItemOptions) (inventory.Item, error)
	DeleteItem(ctx context.Context, opt DeleteItemOptions) error
}
