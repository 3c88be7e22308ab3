package maintenance

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// RemoveDuplicates keeps the first record seen for every code of each
	// category and deletes the rest.
	RemoveDuplicates(ctx context.Context) (Report, error)
	DatabaseStats(ctx context.Context) (StatsReport, error)
}
