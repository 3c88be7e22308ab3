package usecase

import (
	"context"

	"ppe-inventory/internal/inventory"
)

// Stats counts the records of a category and its distinct codes.
func (uc *implUseCase) Stats(ctx context.Context, category inventory.Category) (inventory.CollectionStats, error) {
	items, err := uc.GetAll(ctx, category)
	if err != nil {
		return inventory.CollectionStats{}, err
	}
	return inventory.CountCodes(category, items), nil
}
