package maintenance

import (
	"fmt"

	"ppe-inventory/internal/inventory"
)

// PartialPurgeError reports a delete that failed mid-sweep. Report holds
// everything removed before the failure.
type PartialPurgeError struct {
	Category inventory.Category
	ID       string
	Report   Report
	Err      error
}

func (e *PartialPurgeError) Error() string {
	return fmt.Sprintf("duplicate sweep stopped at %s/%s after %d removals: %v",
		e.Category, e.ID, e.Report.TotalRemoved, e.Err)
}

func (e *PartialPurgeError) Unwrap() error { return e.Err }
