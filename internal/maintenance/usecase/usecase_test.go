package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/maintenance"
	"ppe-inventory/pkg/log"
)

// fakeInventory serves GetAll from memory and records deletes.
type fakeInventory struct {
	mu      sync.Mutex
	items   map[inventory.Category][]inventory.Item
	deleted []string
	failOn  string
	readErr error
}

func newFakeInventory() *fakeInventory {
	return &fakeInventory{items: make(map[inventory.Category][]inventory.Item)}
}

func (f *fakeInventory) add(c inventory.Category, id, code string, created time.Time) {
	f.items[c] = append(f.items[c], inventory.Item{ID: id, Category: c, Code: code, CreatedAt: created})
}

func (f *fakeInventory) GetAll(ctx context.Context, c inventory.Category) ([]inventory.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([]inventory.Item, len(f.items[c]))
	copy(out, f.items[c])
	return out, nil
}

func (f *fakeInventory) Delete(ctx context.Context, c inventory.Category, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == f.failOn {
		return inventory.ErrStoreUnavailable
	}
	items := f.items[c]
	for i, item := range items {
		if item.ID == id {
			f.items[c] = append(items[:i:i], items[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return inventory.ErrItemNotFound
}

func (f *fakeInventory) List(ctx context.Context, in inventory.ListInput) ([]inventory.Item, error) {
	return f.GetAll(ctx, in.Category)
}

func (f *fakeInventory) Detail(ctx context.Context, c inventory.Category, id string) (inventory.Item, error) {
	return inventory.Item{}, inventory.ErrItemNotFound
}

func (f *fakeInventory) Add(ctx context.Context, in inventory.ItemInput) (inventory.Item, error) {
	return inventory.Item{}, nil
}

func (f *fakeInventory) Update(ctx context.Context, id string, in inventory.ItemInput) (inventory.Item, error) {
	return inventory.Item{}, nil
}

func (f *fakeInventory) Stats(ctx context.Context, c inventory.Category) (inventory.CollectionStats, error) {
	return inventory.CollectionStats{}, nil
}

func newUseCase(inv inventory.UseCase, orderByCreation bool) *implUseCase {
	return &implUseCase{l: log.NewNop(), inventory: inv, orderByCreation: orderByCreation}
}

func TestRemoveDuplicatesFirstSeenWins(t *testing.T) {
	inv := newFakeInventory()
	inv.add(inventory.CategoryHelmets, "1", "X", time.Time{})
	inv.add(inventory.CategoryHelmets, "2", "X", time.Time{})
	inv.add(inventory.CategoryHelmets, "3", "X", time.Time{})

	report, err := newUseCase(inv, false).RemoveDuplicates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalRemoved != 2 {
		t.Fatalf("expected 2 removals, got %d", report.TotalRemoved)
	}

	var helmets maintenance.CategoryReport
	for _, cr := range report.Categories {
		if cr.Category == inventory.CategoryHelmets {
			helmets = cr
		}
	}
	want := []maintenance.RemovedDuplicate{
		{Code: "X", DuplicateID: "2", OriginalID: "1"},
		{Code: "X", DuplicateID: "3", OriginalID: "1"},
	}
	if helmets.Count() != len(want) {
		t.Fatalf("unexpected helmet report: %+v", helmets)
	}
	for i := range want {
		if helmets.Removed[i] != want[i] {
			t.Errorf("removed[%d] = %+v, want %+v", i, helmets.Removed[i], want[i])
		}
	}

	remaining, _ := inv.GetAll(context.Background(), inventory.CategoryHelmets)
	if len(remaining) != 1 || remaining[0].ID != "1" {
		t.Errorf("expected only id 1 to remain, got %+v", remaining)
	}
}

func TestRemoveDuplicatesIdempotent(t *testing.T) {
	inv := newFakeInventory()
	inv.add(inventory.CategoryUniforms, "a", "PMC-1", time.Time{})
	inv.add(inventory.CategoryUniforms, "b", "PMC-1", time.Time{})
	inv.add(inventory.CategoryUniforms, "c", "PMC-2", time.Time{})
	inv.add(inventory.CategoryBoots, "d", "BDI-1", time.Time{})
	inv.add(inventory.CategoryBoots, "e", "BDI-1", time.Time{})

	uc := newUseCase(inv, true)
	first, err := uc.RemoveDuplicates(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if first.TotalRemoved != 2 {
		t.Errorf("first run: expected 2 removals, got %d", first.TotalRemoved)
	}

	second, err := uc.RemoveDuplicates(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if second.TotalRemoved != 0 {
		t.Errorf("second run: expected no removals, got %d", second.TotalRemoved)
	}
	if len(second.Categories) != len(inventory.Categories()) {
		t.Errorf("expected a report entry per category, got %d", len(second.Categories))
	}
}

func TestRemoveDuplicatesOrderByCreation(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Oldest Kept", func(t *testing.T) {
		inv := newFakeInventory()
		inv.add(inventory.CategoryGoggles, "new", "GOG-1", base.Add(2*time.Hour))
		inv.add(inventory.CategoryGoggles, "old", "GOG-1", base)

		report, err := newUseCase(inv, true).RemoveDuplicates(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if report.TotalRemoved != 1 || inv.deleted[0] != "new" {
			t.Errorf("expected the newer record to be removed, deleted %v", inv.deleted)
		}
	})

	t.Run("Missing Timestamp Sorted Last", func(t *testing.T) {
		inv := newFakeInventory()
		inv.add(inventory.CategoryGoggles, "legacy", "GOG-1", time.Time{})
		inv.add(inventory.CategoryGoggles, "stamped", "GOG-1", base)

		if _, err := newUseCase(inv, true).RemoveDuplicates(context.Background()); err != nil {
			t.Fatal(err)
		}
		if len(inv.deleted) != 1 || inv.deleted[0] != "legacy" {
			t.Errorf("expected the untimestamped record to be removed, deleted %v", inv.deleted)
		}
	})

	t.Run("Store Order When Disabled", func(t *testing.T) {
		inv := newFakeInventory()
		inv.add(inventory.CategoryGoggles, "new", "GOG-1", base.Add(2*time.Hour))
		inv.add(inventory.CategoryGoggles, "old", "GOG-1", base)

		if _, err := newUseCase(inv, false).RemoveDuplicates(context.Background()); err != nil {
			t.Fatal(err)
		}
		if len(inv.deleted) != 1 || inv.deleted[0] != "old" {
			t.Errorf("expected store order to win, deleted %v", inv.deleted)
		}
	})
}

func TestRemoveDuplicatesPartialFailure(t *testing.T) {
	inv := newFakeInventory()
	inv.add(inventory.CategoryUniforms, "u1", "PMC-1", time.Time{})
	inv.add(inventory.CategoryUniforms, "u2", "PMC-1", time.Time{})
	inv.add(inventory.CategoryBoots, "b1", "BDI-1", time.Time{})
	inv.add(inventory.CategoryBoots, "b2", "BDI-1", time.Time{})
	inv.add(inventory.CategoryBoots, "b3", "BDI-1", time.Time{})
	inv.add(inventory.CategoryHelmets, "h1", "CAS-1", time.Time{})
	inv.add(inventory.CategoryHelmets, "h2", "CAS-1", time.Time{})
	inv.failOn = "b3"

	report, err := newUseCase(inv, false).RemoveDuplicates(context.Background())

	var perr *maintenance.PartialPurgeError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PartialPurgeError, got %v", err)
	}
	if perr.Category != inventory.CategoryBoots || perr.ID != "b3" {
		t.Errorf("unexpected failure point: %s/%s", perr.Category, perr.ID)
	}
	if !errors.Is(err, inventory.ErrStoreUnavailable) {
		t.Errorf("expected the delete error to be wrapped")
	}
	if report.TotalRemoved != 2 || perr.Report.TotalRemoved != 2 {
		t.Errorf("expected 2 removals before the failure, got %d", report.TotalRemoved)
	}
	if len(report.Categories) != 2 {
		t.Errorf("expected uniforms and the partial boots entry, got %d", len(report.Categories))
	}
	for _, id := range inv.deleted {
		if id == "h2" {
			t.Errorf("sweep continued past the failure")
		}
	}
}

func TestRemoveDuplicatesReadFailure(t *testing.T) {
	inv := newFakeInventory()
	inv.add(inventory.CategoryUniforms, "u1", "PMC-1", time.Time{})
	inv.add(inventory.CategoryUniforms, "u2", "PMC-1", time.Time{})
	inv.readErr = inventory.ErrStoreUnavailable

	_, err := newUseCase(inv, false).RemoveDuplicates(context.Background())
	if !errors.Is(err, inventory.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
	if len(inv.deleted) != 0 {
		t.Errorf("nothing should be deleted when a read fails")
	}
}

func TestDatabaseStats(t *testing.T) {
	inv := newFakeInventory()
	inv.add(inventory.CategoryUniforms, "u1", "PMC-1", time.Time{})
	inv.add(inventory.CategoryUniforms, "u2", "PMC-1", time.Time{})
	inv.add(inventory.CategoryUniforms, "u3", "CAM-1", time.Time{})
	inv.add(inventory.CategoryGoggles, "g1", "GOG-1", time.Time{})

	stats, err := newUseCase(inv, true).DatabaseStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalRecords != 4 || stats.TotalUniqueCodes != 3 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if len(stats.Collections) != 4 || stats.Collections[0].Category != inventory.CategoryUniforms {
		t.Fatalf("unexpected collections: %+v", stats.Collections)
	}
	if stats.Collections[0].Count != 3 || stats.Collections[0].UniqueCodes != 2 {
		t.Errorf("unexpected uniform stats: %+v", stats.Collections[0])
	}
}
