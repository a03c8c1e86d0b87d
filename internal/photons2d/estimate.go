package photons2d

import (
	"context"
	"time"
)

// EstimateRate runs an emitter with the given worker count on w for d and
// returns the achieved rays per second. The world's accumulated state is
// left as the run produced it.
func EstimateRate(ctx context.Context, w *World, workers int, seed int64, d time.Duration) (float64, error) {
	if d <= 0 {
		return 0, nil
	}
	e := NewEmitter(w, workers, seed)
	before := w.RayCount()
	start := time.Now()
	if err := e.Start(ctx); err != nil {
		return 0, err
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
	e.Stop()
	elapsed := time.Since(start).Seconds()
	rays := w.RayCount() - before
	logger.Debugf("Rays: %d with %d workers in %.3fs", rays, e.Workers(), elapsed)
	if elapsed <= 0 {
		return 0, nil
	}
	return float64(rays) / elapsed, nil
}
