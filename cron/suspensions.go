package cron

import (
	"context"
	"time"

	"hireloop/utils"

	"go.uber.org/zap"
)

// SuspensionReleaser is implemented by the worker and employer repositories.
type SuspensionReleaser interface {
	ReleaseExpiredSuspensions(ctx context.Context, now time.Time) (int64, error)
}

// ReleaseExpired lifts every suspension whose end date has passed and returns
// how many accounts were reactivated. A failing store does not stop the
// others.
func ReleaseExpired(ctx context.Context, now time.Time, stores map[string]SuspensionReleaser) int64 {
	logger := utils.GetLogger()
	var total int64
	for name, store := range stores {
		n, err := store.ReleaseExpiredSuspensions(ctx, now)
		if err != nil {
			logger.Warn("[SuspensionSweeper] release failed", zap.String("store", name), zap.Error(err))
			continue
		}
		if n > 0 {
			logger.Info("[SuspensionSweeper] suspensions lifted", zap.String("store", name), zap.Int64("count", n))
		}
		total += n
	}
	return total
}

// StartSuspensionSweeper runs ReleaseExpired every interval until ctx is
// cancelled.
func StartSuspensionSweeper(ctx context.Context, interval time.Duration, stores map[string]SuspensionReleaser) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				ReleaseExpired(ctx, now, stores)
			}
		}
	}()
}
