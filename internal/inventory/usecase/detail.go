package usecase

import (
	"context"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
)

// Detail returns a single normalized item. Returns ErrItemNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, category inventory.Category, id string) (inventory.Item, error) {
	if !category.Valid() {
		return inventory.Item{}, inventory.ErrUnknownCategory
	}
	if id == "" {
		return inventory.Item{}, inventory.ErrItemNotFound
	}

	item, err := uc.repo.GetItem(ctx, repo.GetItemOptions{Category: category, ID: id})
	if err != nil {
		return inventory.Item{}, mapRepoError(err)
	}
	return inventory.Normalize(item), nil
}
