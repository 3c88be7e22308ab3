package usecase

import (
	"context"
	"errors"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
)

// Add validates and persists a new item. Codes are not required to be unique.
func (uc *implUseCase) Add(ctx context.Context, input inventory.ItemInput) (inventory.Item, error) {
	input, err := inventory.ParseInput(input)
	if err != nil {
		return inventory.Item{}, err
	}
	if !input.Category.HasKnownPrefix(input.Code) {
		uc.l.Warnf(ctx, "uc.Add: code %q has no %s prefix", input.Code, input.Category)
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Category:   input.Category,
		Code:       input.Code,
		Attributes: input.Attributes,
		Stock:      input.Normalize(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Add CreateItem: %v", err)
		return inventory.Item{}, mapRepoError(err)
	}
	return item, nil
}

// Update replaces every operator field of an existing item. The creation time
// is kept. Returns ErrItemNotFound when the id does not exist.
func (uc *implUseCase) Update(ctx context.Context, id string, input inventory.ItemInput) (inventory.Item, error) {
	input, err := inventory.ParseInput(input)
	if err != nil {
		return inventory.Item{}, err
	}
	if id == "" {
		return inventory.Item{}, inventory.ErrItemNotFound
	}

	item, err := uc.repo.ReplaceItem(ctx, repo.ReplaceItemOptions{
		Category:   input.Category,
		ID:         id,
		Code:       input.Code,
		Attributes: input.Attributes,
		Stock:      input.Normalize(),
	})
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Update ReplaceItem: %v", err)
		}
		return inventory.Item{}, mapRepoError(err)
	}
	return item, nil
}

// Delete removes an item. Deleting a missing id returns ErrItemNotFound.
func (uc *implUseCase) Delete(ctx context.Context, category inventory.Category, id string) error {
	if !category.Valid() {
		return inventory.ErrUnknownCategory
	}
	if id == "" {
		return inventory.ErrItemNotFound
	}

	if err := uc.repo.DeleteItem(ctx, repo.DeleteItemOptions{Category: category, ID: id}); err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		}
		return mapRepoError(err)
	}
	return nil
}
