package firestore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
)

// ListItems returns the items of a category matching every filter, in the
// order Firestore returns them.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inventory.Item, error) {
	if !opt.Category.Valid() {
		return nil, inventory.ErrUnknownCategory
	}

	q := r.client.Collection(string(opt.Category)).Query
	keys := make([]string, 0, len(opt.Filters))
	for k := range opt.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q = q.Where(k, "==", opt.Filters[k])
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var items []inventory.Item
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			r.l.Errorf(ctx, "%s: %s: %v", r.dsn("ListItems"), opt.Category, err)
			return nil, r.storeErr(err)
		}
		item, err := decode(opt.Category, snap.Ref.ID, snap.Data())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// GetItem returns a single item by document id.
func (r *implRepository) GetItem(ctx context.Context, opt repo.GetItemOptions) (inventory.Item, error) {
	if !opt.Category.Valid() {
		return inventory.Item{}, inventory.ErrUnknownCategory
	}

	snap, err := r.client.Collection(string(opt.Category)).Doc(opt.ID).Get(ctx)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			r.l.Errorf(ctx, "%s: %s/%s: %v", r.dsn("GetItem"), opt.Category, opt.ID, err)
		}
		return inventory.Item{}, r.storeErr(err)
	}
	return decode(opt.Category, snap.Ref.ID, snap.Data())
}

// CreateItem stores a new document under a generated id.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	if !opt.Category.Valid() {
		return inventory.Item{}, inventory.ErrUnknownCategory
	}

	now := time.Now().UTC()
	ref := r.client.Collection(string(opt.Category)).NewDoc()
	if _, err := ref.Create(ctx, encode(opt.Code, opt.Attributes, opt.Stock, now, now)); err != nil {
		r.l.Errorf(ctx, "%s: %s: %v", r.dsn("CreateItem"), opt.Category, err)
		return inventory.Item{}, r.storeErr(err)
	}

	return inventory.Item{
		ID:         ref.ID,
		Category:   opt.Category,
		Code:       opt.Code,
		Attributes: opt.Attributes,
		Stock:      opt.Stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ReplaceItem overwrites an existing document. The stored fechaCreacion is
// kept; it is set to the current time when the document lacks one.
func (r *implRepository) ReplaceItem(ctx context.Context, opt repo.ReplaceItemOptions) (inventory.Item, error) {
	if !opt.Category.Valid() {
		return inventory.Item{}, inventory.ErrUnknownCategory
	}

	ref := r.client.Collection(string(opt.Category)).Doc(opt.ID)
	now := time.Now().UTC()
	var createdAt time.Time

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return err
		}
		createdAt = asTime(snap.Data()[fieldFechaCreacion])
		if createdAt.IsZero() {
			createdAt = now
		}
		return tx.Set(ref, encode(opt.Code, opt.Attributes, opt.Stock, createdAt, now))
	})
	if err != nil {
		if status.Code(err) != codes.NotFound {
			r.l.Errorf(ctx, "%s: %s/%s: %v", r.dsn("ReplaceItem"), opt.Category, opt.ID, err)
		}
		return inventory.Item{}, r.storeErr(err)
	}

	return inventory.Item{
		ID:         opt.ID,
		Category:   opt.Category,
		Code:       opt.Code,
		Attributes: opt.Attributes,
		Stock:      opt.Stock,
		CreatedAt:  createdAt,
		UpdatedAt:  now,
	}, nil
}

// DeleteItem removes a document. A missing document is ErrNotFound.
func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	if !opt.Category.Valid() {
		return inventory.ErrUnknownCategory
	}

	_, err := r.client.Collection(string(opt.Category)).Doc(opt.ID).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) != codes.NotFound {
			r.l.Errorf(ctx, "%s: %s/%s: %v", r.dsn("DeleteItem"), opt.Category, opt.ID, err)
		}
		return r.storeErr(err)
	}
	return nil
}

// Ping reads at most one document to check connectivity.
func (r *implRepository) Ping(ctx context.Context) error {
	iter := r.client.Collection(string(inventory.CategoryUniforms)).Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return r.storeErr(err)
	}
	return nil
}

// storeErr classifies a Firestore error.
func (r *implRepository) storeErr(err error) error {
	if status.Code(err) == codes.NotFound {
		return repo.ErrNotFound
	}
	return fmt.Errorf("%w: %v", repo.ErrUnavailable, err)
}
