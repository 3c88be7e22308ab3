package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ppe-inventory/internal/inventory"
	"ppe-inventory/pkg/log"
)

// readOnlyInventory serves GetAll; the dashboard never calls anything else.
type readOnlyInventory struct {
	inventory.UseCase
	items map[inventory.Category][]inventory.Item
	err   error
}

func (r readOnlyInventory) GetAll(ctx context.Context, c inventory.Category) ([]inventory.Item, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.items[c], nil
}

func TestSummary(t *testing.T) {
	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	uc := &implUseCase{
		l: log.NewNop(),
		inventory: readOnlyInventory{items: map[inventory.Category][]inventory.Item{
			inventory.CategoryUniforms: {{Code: "PMC-1", Stock: inventory.Stock{StockInicial: 5}}},
			inventory.CategoryBoots:    {{Code: "BDI-1", Stock: inventory.Stock{StockInicial: 30}}},
		}},
		now: func() time.Time {
			calls++
			return start.Add(time.Duration(calls) * 250 * time.Millisecond)
		},
	}

	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Stats.TotalArticulos != 2 || summary.Stats.StockTotal != 35 {
		t.Errorf("unexpected stats: %+v", summary.Stats)
	}
	if summary.Stats.TiempoRespuesta != 0.25 {
		t.Errorf("TiempoRespuesta = %v, want 0.25", summary.Stats.TiempoRespuesta)
	}
	if len(summary.Activity) != 2 || summary.Activity[0].Message != "1 uniformes con stock bajo" {
		t.Errorf("unexpected activity: %+v", summary.Activity)
	}
}

func TestEmptyInventory(t *testing.T) {
	uc := New(log.NewNop(), readOnlyInventory{})

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalArticulos != 0 || stats.ExactitudInventario != 100 {
		t.Errorf("unexpected stats: %+v", stats)
	}

	feed, err := uc.RecentActivity(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(feed) != 1 {
		t.Errorf("expected only the total entry, got %+v", feed)
	}
}

func TestStoreUnavailable(t *testing.T) {
	uc := New(log.NewNop(), readOnlyInventory{err: inventory.ErrStoreUnavailable})
	if _, err := uc.Stats(context.Background()); !errors.Is(err, inventory.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := uc.RecentActivity(context.Background()); !errors.Is(err, inventory.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}
