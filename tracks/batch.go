package tracks

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// SmoothenAll runs Smoothen over tracks using up to workers goroutines.
// Each track is handled by exactly one goroutine, so the slice must not contain the same track twice.
// Stops scheduling new tracks once ctx is done or any track fails
func SmoothenAll(ctx context.Context, tracks []*Track, options SmoothOptions, workers int) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))
	for _, track := range tracks {
		if groupCtx.Err() != nil {
			break
		}
		track := track
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			return errors.Wrapf(Smoothen(track, options), "object %d", track.objectID)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
