package utils

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// InvalidateSearchCache deletes every cached search response. Called after a
// snapshot reload (stale results would contradict the new content) and by the
// nightly cleanup job.
func InvalidateSearchCache(ctx context.Context, rdb *redis.Client, logger *zap.Logger) error {
	// SCAN instead of KEYS so a large cache does not block Redis.
	iter := rdb.Scan(ctx, 0, SearchCachePrefix+"*", 100).Iterator()

	deleted := 0
	for iter.Next(ctx) {
		if err := rdb.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Error("Failed to delete cached search response", zap.String("key", iter.Val()), zap.Error(err))
			continue
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		return err
	}

	logger.Info("Search cache invalidated", zap.Int("deleted", deleted))
	return nil
}

// RunScheduledCleanup starts a cron that clears the search cache nightly,
// catching content edits made outside the asset watcher. The returned cron is
// already running.
func RunScheduledCleanup(rdb *redis.Client, logger *zap.Logger) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		if err := InvalidateSearchCache(context.Background(), rdb, logger); err != nil {
			logger.Error("Scheduled search cache cleanup failed", zap.Error(err))
		}
	})
	if err != nil {
		logger.Error("Failed to schedule search cache cleanup", zap.Error(err))
		return c
	}

	c.Start()
	logger.Info("Scheduled nightly search cache cleanup")
	return c
}
