package maintenance

import "ppe-inventory/internal/inventory"

// RemovedDuplicate records one deleted record and the record it duplicated.
type RemovedDuplicate struct {
	Code        string
	DuplicateID string
	OriginalID  string
}

// CategoryReport lists what the reconciler removed from one category.
type CategoryReport struct {
	Category inventory.Category
	Removed  []RemovedDuplicate
}

// Count is the number of records removed from the category.
func (r CategoryReport) Count() int { return len(r.Removed) }

// Report is the outcome of a duplicate sweep, one entry per processed
// category in dashboard order.
type Report struct {
	Categories   []CategoryReport
	TotalRemoved int
}

// StatsReport describes the contents of every collection.
type StatsReport struct {
	Collections      []inventory.CollectionStats
	TotalRecords     int
	TotalUniqueCodes int
}
