package usecase

import (
	"context"

	"ppe-inventory/internal/dashboard"
	"ppe-inventory/internal/inventory"
)

// Stats computes the aggregate snapshot.
func (uc *implUseCase) Stats(ctx context.Context) (dashboard.Stats, error) {
	summary, err := uc.Summary(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}
	return summary.Stats, nil
}

// RecentActivity computes the activity feed.
func (uc *implUseCase) RecentActivity(ctx context.Context) ([]dashboard.Activity, error) {
	summary, err := uc.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return summary.Activity, nil
}

// Summary reads every category once and derives both the stats and the feed.
func (uc *implUseCase) Summary(ctx context.Context) (dashboard.Summary, error) {
	start := uc.now()
	snap, err := inventory.ReadAll(ctx, uc.inventory)
	if err != nil {
		uc.l.Errorf(ctx, "dashboard.Summary ReadAll: %v", err)
		return dashboard.Summary{}, err
	}
	end := uc.now()

	stats := dashboard.ComputeStats(snap)
	stats.TiempoRespuesta = end.Sub(start).Seconds()

	return dashboard.Summary{
		Stats:    stats,
		Activity: dashboard.BuildActivity(snap, end),
	}, nil
}
