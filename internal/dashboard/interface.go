package dashboard

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Stats(ctx context.Context) (Stats, error)
	RecentActivity(ctx context.Context) ([]Activity, error)
	Summary(ctx context.Context) (Summary, error)
}
