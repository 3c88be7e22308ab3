package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
)

// mapRepoError turns a repository error into the domain error callers see.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return inventory.ErrItemNotFound
	case errors.Is(err, inventory.ErrUnknownCategory):
		return inventory.ErrUnknownCategory
	default:
		return fmt.Errorf("%w: %v", inventory.ErrStoreUnavailable, err)
	}
}

func normalizeAll(items []inventory.Item) []inventory.Item {
	out := make([]inventory.Item, len(items))
	for i, item := range items {
		out[i] = inventory.Normalize(item)
	}
	return out
}

// checkFilters rejects filter keys the category does not store.
func checkFilters(c inventory.Category, filters map[string]string) error {
	allowed := map[string]bool{inventory.FieldCodigo: true}
	for _, f := range inventory.AttributeFields(c) {
		allowed[f] = true
	}

	fields := make(map[string]string)
	for k := range filters {
		if !allowed[k] {
			fields[k] = "unknown_filter"
		}
	}
	if len(fields) > 0 {
		return &inventory.ValidationError{Fields: fields}
	}
	return nil
}

// matchesSearch reports whether the code or the name contains term,
// ignoring case.
func matchesSearch(item inventory.Item, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.Code), term) ||
		strings.Contains(strings.ToLower(item.Name()), term)
}

func sortItems(items []inventory.Item, by inventory.SortField, desc bool) {
	var less func(a, b inventory.Item) bool
	switch by {
	case inventory.SortByCode:
		less = func(a, b inventory.Item) bool { return a.Code < b.Code }
	case inventory.SortByTotalStock:
		less = func(a, b inventory.Item) bool { return a.TotalStock < b.TotalStock }
	case inventory.SortByStatus:
		less = func(a, b inventory.Item) bool { return a.Estado < b.Estado }
	case inventory.SortByCreatedAt:
		less = func(a, b inventory.Item) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default:
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func validSortField(by inventory.SortField) bool {
	switch by {
	case "", inventory.SortByCode, inventory.SortByTotalStock, inventory.SortByStatus, inventory.SortByCreatedAt:
		return true
	}
	return false
}
