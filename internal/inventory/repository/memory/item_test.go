package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ppe-inventory/internal/inventory"
	repo "ppe-inventory/internal/inventory/repository"
	"ppe-inventory/internal/inventory/repository/memory"
	"ppe-inventory/pkg/log"
)

func helmet(code, color string) repo.CreateItemOptions {
	return repo.CreateItemOptions{
		Category:   inventory.CategoryHelmets,
		Code:       code,
		Attributes: inventory.HelmetAttributes{Nombre: "Casco dieléctrico", Color: color},
		Stock:      inventory.Stock{StockInicial: 5, TotalStock: 5, Estado: inventory.StatusLowStock},
	}
}

func TestRepository(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	r := memory.New(log.NewNop(), memory.WithClock(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))

	first, err := r.CreateItem(ctx, helmet("CAS-001", "Blanco"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, _ := r.CreateItem(ctx, helmet("CAS-002", "Rojo"))
	third, _ := r.CreateItem(ctx, helmet("CAS-001", "Blanco"))

	t.Run("Create Assigns Id And Times", func(t *testing.T) {
		if first.ID == "" || first.ID == second.ID {
			t.Errorf("expected distinct ids, got %q and %q", first.ID, second.ID)
		}
		if first.CreatedAt.IsZero() || !first.CreatedAt.Equal(first.UpdatedAt) {
			t.Errorf("unexpected timestamps %v / %v", first.CreatedAt, first.UpdatedAt)
		}
	})

	t.Run("List Keeps Insertion Order", func(t *testing.T) {
		items, err := r.ListItems(ctx, repo.ListItemsOptions{Category: inventory.CategoryHelmets})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 3 || items[0].ID != first.ID || items[1].ID != second.ID || items[2].ID != third.ID {
			t.Errorf("unexpected order %+v", items)
		}
	})

	t.Run("Categories Are Independent", func(t *testing.T) {
		items, _ := r.ListItems(ctx, repo.ListItemsOptions{Category: inventory.CategoryGoggles})
		if len(items) != 0 {
			t.Errorf("expected empty goggles collection, got %d", len(items))
		}
	})

	t.Run("List Filters", func(t *testing.T) {
		items, _ := r.ListItems(ctx, repo.ListItemsOptions{
			Category: inventory.CategoryHelmets,
			Filters:  map[string]string{inventory.FieldColor: "Blanco", inventory.FieldCodigo: "CAS-001"},
		})
		if len(items) != 2 {
			t.Errorf("expected 2 white CAS-001 helmets, got %d", len(items))
		}
	})

	t.Run("Replace Keeps Creation Time", func(t *testing.T) {
		opt := repo.ReplaceItemOptions{
			Category:   inventory.CategoryHelmets,
			ID:         second.ID,
			Code:       "CAS-002",
			Attributes: inventory.HelmetAttributes{Nombre: "Casco", Color: "Azul"},
			Stock:      inventory.Stock{StockInicial: 20, TotalStock: 20, Estado: inventory.StatusAvailable},
		}
		got, err := r.ReplaceItem(ctx, opt)
		if err != nil {
			t.Fatalf("replace: %v", err)
		}
		if !got.CreatedAt.Equal(second.CreatedAt) || !got.UpdatedAt.After(second.UpdatedAt) {
			t.Errorf("unexpected timestamps %v / %v", got.CreatedAt, got.UpdatedAt)
		}
		stored, _ := r.GetItem(ctx, repo.GetItemOptions{Category: inventory.CategoryHelmets, ID: second.ID})
		if stored.Attributes.Fields()[inventory.FieldColor] != "Azul" || stored.TotalStock != 20 {
			t.Errorf("replacement not stored: %+v", stored)
		}
	})

	t.Run("Replace Missing", func(t *testing.T) {
		_, err := r.ReplaceItem(ctx, repo.ReplaceItemOptions{Category: inventory.CategoryHelmets, ID: "nope"})
		if !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete Then Delete Again", func(t *testing.T) {
		opt := repo.DeleteItemOptions{Category: inventory.CategoryHelmets, ID: third.ID}
		if err := r.DeleteItem(ctx, opt); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := r.DeleteItem(ctx, opt); !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
		items, _ := r.ListItems(ctx, repo.ListItemsOptions{Category: inventory.CategoryHelmets})
		for _, it := range items {
			if it.ID == third.ID {
				t.Errorf("deleted item still listed")
			}
		}
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := r.GetItem(ctx, repo.GetItemOptions{Category: inventory.CategoryHelmets, ID: third.ID})
		if !errors.Is(err, repo.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Unknown Category", func(t *testing.T) {
		_, err := r.ListItems(ctx, repo.ListItemsOptions{Category: "guantes"})
		if !errors.Is(err, inventory.ErrUnknownCategory) {
			t.Errorf("expected ErrUnknownCategory, got %v", err)
		}
	})
}
