package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus-guide-backend/search/services"
	"campus-guide-backend/translations"
	"campus-guide-backend/utils"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const TypeWarmSearchCache = "search:warm_cache"

// WarmSearchCachePayload lists the queries to pre-run after a snapshot reload.
type WarmSearchCachePayload struct {
	Terms []string `json:"terms"`
}

// NewWarmSearchCacheTask builds the enqueueable task.
func NewWarmSearchCacheTask(terms []string) (*asynq.Task, error) {
	payload, err := json.Marshal(WarmSearchCachePayload{Terms: terms})
	if err != nil {
		return nil, fmt.Errorf("failed to encode warm cache payload: %w", err)
	}
	return asynq.NewTask(TypeWarmSearchCache, payload), nil
}

// WarmSearchCacheHandler re-runs the configured popular queries through the
// aggregator and primes the Redis response cache, so the first users after a
// content update still get cached answers.
type WarmSearchCacheHandler struct {
	Aggregator *services.Aggregator
	Redis      *redis.Client
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

func (h *WarmSearchCacheHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload WarmSearchCachePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode warm cache payload: %w", err)
	}

	warmed := 0
	for _, language := range translations.Languages() {
		for _, terms := range payload.Terms {
			results, err := h.Aggregator.Query(language, terms)
			if err != nil {
				h.Logger.Error("Cache warm query failed",
					zap.String("language", language),
					zap.String("terms", terms),
					zap.Error(err),
				)
				continue
			}

			state := "ok"
			if len(results) == 0 {
				state = "no_results"
			}

			// Same response shape the search controller caches, so a warmed
			// entry is indistinguishable from one written on a live request.
			body, err := json.Marshal(map[string]interface{}{
				"state":   state,
				"results": results,
			})
			if err != nil {
				h.Logger.Error("Failed to encode warmed response", zap.Error(err))
				continue
			}

			key := utils.SearchCacheKey(language, terms, 0)
			if err := h.Redis.Set(ctx, key, body, h.CacheTTL).Err(); err != nil {
				h.Logger.Error("Failed to store warmed response", zap.Error(err))
				continue
			}
			warmed++
		}
	}

	h.Logger.Info("Search cache warmed", zap.Int("entries", warmed))
	return nil
}

// StartWorker runs an asynq server for the warm-cache queue in the background.
func StartWorker(redisOpt asynq.RedisClientOpt, handler *WarmSearchCacheHandler, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})

	mux := asynq.NewServeMux()
	mux.Handle(TypeWarmSearchCache, handler)

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("Asynq worker stopped", zap.Error(err))
		}
	}()

	return srv
}
