package memory

import (
	"context"

	"github.com/google/uuid"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
)

// ListItems returns the items of a category that match every filter.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	col, err := r.collection(opt.Category)
	if err != nil {
		return nil, err
	}

	items := make([]inventory.Item, 0, len(col.order))
	for _, id := range col.order {
		item := col.docs[id]
		if matches(item, opt.Filters) {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetItem returns a single item by id.
func (r *implRepository) GetItem(ctx context.Context, opt repo.GetItemOptions) (inventory.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	col, err := r.collection(opt.Category)
	if err != nil {
		return inventory.Item{}, err
	}
	item, ok := col.docs[opt.ID]
	if !ok {
		return inventory.Item{}, repo.ErrNotFound
	}
	return item, nil
}

// CreateItem stores a new item under a fresh uuid.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	col, err := r.collection(opt.Category)
	if err != nil {
		return inventory.Item{}, err
	}

	now := r.now()
	item := inventory.Item{
		ID:         uuid.NewString(),
		Category:   opt.Category,
		Code:       opt.Code,
		Attributes: opt.Attributes,
		Stock:      opt.Stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	col.docs[item.ID] = item
	col.order = append(col.order, item.ID)

	r.l.Debugf(ctx, "%s: %s/%s", r.dsn("CreateItem"), opt.Category, item.ID)
	return item, nil
}

// ReplaceItem overwrites an existing item, keeping its creation time.
func (r *implRepository) ReplaceItem(ctx context.Context, opt repo.ReplaceItemOptions) (inventory.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	col, err := r.collection(opt.Category)
	if err != nil {
		return inventory.Item{}, err
	}
	existing, ok := col.docs[opt.ID]
	if !ok {
		return inventory.Item{}, repo.ErrNotFound
	}

	item := inventory.Item{
		ID:         opt.ID,
		Category:   opt.Category,
		Code:       opt.Code,
		Attributes: opt.Attributes,
		Stock:      opt.Stock,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  r.now(),
	}
	col.docs[opt.ID] = item
	return item, nil
}

// DeleteItem removes an item. Deleting a missing id is ErrNotFound.
func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	col, err := r.collection(opt.Category)
	if err != nil {
		return err
	}
	if _, ok := col.docs[opt.ID]; !ok {
		return repo.ErrNotFound
	}

	delete(col.docs, opt.ID)
	for i, id := range col.order {
		if id == opt.ID {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping always succeeds.
func (r *implRepository) Ping(ctx context.Context) error { return nil }

func (r *implRepository) collection(c inventory.Category) (*collection, error) {
	col, ok := r.collections[c]
	if !ok {
		return nil, inventory.ErrUnknownCategory
	}
	return col, nil
}

func matches(item inventory.Item, filters map[string]string) bool {
	if len(filters) == 0 {
		return true
	}
	if item.Attributes == nil {
		return false
	}
	fields := item.Attributes.Fields()
	for k, v := range filters {
		if k == inventory.FieldCodigo {
			if item.Code != v {
				return false
			}
			continue
		}
		if fields[k] != v {
			return false
		}
	}
	return true
}
