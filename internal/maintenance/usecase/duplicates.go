package usecase

import (
	"context"
	"sort"

	"ppe-inventory/internal/inventory"
	"ppe-inventory/internal/maintenance"
)

// RemoveDuplicates sweeps every category. All categories are read before any
// delete is issued; deletes then run one at a time against that snapshot.
func (uc *implUseCase) RemoveDuplicates(ctx context.Context) (maintenance.Report, error) {
	snap, err := inventory.ReadAll(ctx, uc.inventory)
	if err != nil {
		uc.l.Errorf(ctx, "maintenance.RemoveDuplicates ReadAll: %v", err)
		return maintenance.Report{}, err
	}

	report := maintenance.Report{Categories: make([]maintenance.CategoryReport, 0, len(snap))}
	for _, c := range inventory.Categories() {
		items := snap[c]
		if uc.orderByCreation {
			items = byCreation(items)
		}

		cr := maintenance.CategoryReport{Category: c, Removed: []maintenance.RemovedDuplicate{}}
		kept := make(map[string]string, len(items))
		for _, item := range items {
			originalID, seen := kept[item.Code]
			if !seen {
				kept[item.Code] = item.ID
				continue
			}

			if err := uc.inventory.Delete(ctx, c, item.ID); err != nil {
				uc.l.Errorf(ctx, "maintenance.RemoveDuplicates Delete %s/%s: %v", c, item.ID, err)
				report.Categories = append(report.Categories, cr)
				return report, &maintenance.PartialPurgeError{Category: c, ID: item.ID, Report: report, Err: err}
			}
			cr.Removed = append(cr.Removed, maintenance.RemovedDuplicate{
				Code:        item.Code,
				DuplicateID: item.ID,
				OriginalID:  originalID,
			})
			report.TotalRemoved++
		}

		if cr.Count() > 0 {
			uc.l.Infof(ctx, "maintenance.RemoveDuplicates: removed %d duplicates from %s", cr.Count(), c)
		}
		report.Categories = append(report.Categories, cr)
	}

	return report, nil
}

// byCreation returns items stably sorted by creation time. Records without a
// timestamp keep their relative order after the timestamped ones.
func byCreation(items []inventory.Item) []inventory.Item {
	out := make([]inventory.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		switch {
		case a.IsZero():
			return false
		case b.IsZero():
			return true
		}
		return a.Before(b)
	})
	return out
}
