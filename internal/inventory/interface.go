package inventory

import "context"

// UseCase is the per-category store adapter. Every item it returns has been
// normalized by DeriveStatus, and every write is normalized before it is
// persisted.
//
//go:generate mockery --name UseCase
type UseCase interface {
	GetAll(ctx context.Context, category Category) ([]Item, error)
	List(ctx context.Context, input ListInput) ([]Item, error)
	Detail(ctx context.Context, category Category, id string) (Item, error)
	Add(ctx context.Context, input ItemInput) (Item, error)
	Update(ctx context.Context, id string, input ItemInput) (Item, error)
	Delete(ctx context.Context, category Category, id string) error
	Stats(ctx context.Context, category Category) (CollectionStats, error)
}
