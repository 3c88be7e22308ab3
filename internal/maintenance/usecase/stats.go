package usecase

import (
	"context"

	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/maintenance"
)

// DatabaseStats counts records and distinct codes per collection.
func (uc *implUseCase) DatabaseStats(ctx context.Context) (maintenance.StatsReport, error) {
	snap, err := inventory.ReadAll(ctx, uc.inventory)
	if err != nil {
		uc.l.Errorf(ctx, "maintenance.DatabaseStats ReadAll: %v", err)
		return maintenance.StatsReport{}, err
	}

	var out maintenance.StatsReport
	for _, c := range inventory.Categories() {
		cs := inventory.CountCodes(c, snap[c])
		out.Collections = append(out.Collections, cs)
		out.TotalRecords += cs.Count
		out.TotalUniqueCodes += cs.UniqueCodes
	}
	return out, nil
}
