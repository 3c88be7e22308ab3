package inventory

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Snapshot holds the normalized items of every category as read at one point.
type Snapshot map[Category][]Item

// ReadAll fetches every category through uc in parallel. Categories share no
// state, so the reads are independent; the first failure cancels the rest.
func ReadAll(ctx context.Context, uc UseCase) (Snapshot, error) {
	cats := Categories()
	results := make([][]Item, len(cats))

	g, gCtx := errgroup.WithContext(ctx)
	for i, c := range cats {
		g.Go(func() error {
			items, err := uc.GetAll(gCtx, c)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := make(Snapshot, len(cats))
	for i, c := range cats {
		snap[c] = results[i]
	}
	return snap, nil
}
