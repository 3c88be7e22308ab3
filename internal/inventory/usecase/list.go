package usecase

import (
	"context"
	"strings"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
)

// GetAll returns every item of a category, normalized, in store order.
func (uc *implUseCase) GetAll(ctx context.Context, category inventory.Category) ([]inventory.Item, error) {
	if !category.Valid() {
		return nil, inventory.ErrUnknownCategory
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Category: category})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetAll ListItems %s: %v", category, err)
		return nil, mapRepoError(err)
	}
	return normalizeAll(items), nil
}

// List returns the items of a category narrowed by attribute filters, status
// and a free-text search, then sorted. Attribute filters are applied by the
// store; status is matched after normalization.
func (uc *implUseCase) List(ctx context.Context, input inventory.ListInput) ([]inventory.Item, error) {
	if !input.Category.Valid() {
		return nil, inventory.ErrUnknownCategory
	}
	if err := checkFilters(input.Category, input.Filters); err != nil {
		return nil, err
	}
	if input.Estado != "" && !input.Estado.Valid() {
		return nil, &inventory.ValidationError{Fields: map[string]string{"estado": "oneof"}}
	}
	if !validSortField(input.SortBy) {
		return nil, &inventory.ValidationError{Fields: map[string]string{"sort": "oneof"}}
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{
		Category: input.Category,
		Filters:  input.Filters,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems %s: %v", input.Category, err)
		return nil, mapRepoError(err)
	}

	term := strings.ToLower(strings.TrimSpace(input.Search))
	out := make([]inventory.Item, 0, len(items))
	for _, item := range normalizeAll(items) {
		if input.Estado != "" && item.Estado != input.Estado {
			continue
		}
		if !matchesSearch(item, term) {
			continue
		}
		out = append(out, item)
	}

	sortItems(out, input.SortBy, input.Desc)
	return out, nil
}
