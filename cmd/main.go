package main

import (
	"context"
	"strconv"
	"strings"
	"time"

	"campus-guide-backend/config"
	"campus-guide-backend/middleware"
	"campus-guide-backend/tasks"
	"campus-guide-backend/translations"
	"campus-guide-backend/utils"

	// Repositories
	campus_models "campus-guide-backend/campus/models"
	campus_repositories "campus-guide-backend/campus/repositories"

	// Routes
	campus_routes "campus-guide-backend/campus/routes"
	search_routes "campus-guide-backend/search/routes"

	// Search
	search_adapters "campus-guide-backend/search/adapters"
	search_controllers "campus-guide-backend/search/controllers"
	search_services "campus-guide-backend/search/services"

	// WebSocket
	"campus-guide-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, using process environment", zap.Error(err))
	}

	app := fiber.New()

	// Apply middleware
	middleware.InitCors(app)
	app.Use(middleware.RequestID)
	rateLimiter := middleware.NewRateLimiter(10, 20)
	app.Use(rateLimiter.Handler)

	ctx := context.Background()
	port := config.GetEnvDefault("PORT", "8080")

	// Campus content snapshot
	assetDir := config.GetEnvDefault("ASSET_DIR", "./assets")
	snapshots := campus_repositories.NewSnapshotRepository(assetDir, config.Logger)
	if err := snapshots.Load(); err != nil {
		config.Logger.Fatal("Failed to load campus assets", zap.String("dir", assetDir), zap.Error(err))
	}
	if err := snapshots.Watch(); err != nil {
		config.Logger.Warn("Asset watching disabled", zap.Error(err))
	}
	defer snapshots.Close()

	// Translations and the search aggregation layer
	tr := translations.NewProvider()
	aggregator := search_services.NewAggregator(tr, config.Logger,
		search_adapters.NewBuildingAdapter(snapshots, tr),
		search_adapters.NewRoomAdapter(snapshots, tr),
		search_adapters.NewLinkAdapter(snapshots, tr),
		search_adapters.NewStudySpotAdapter(snapshots, tr),
	)

	// Redis is optional: without it the service still searches, it just skips
	// response caching and background cache warming.
	var redisClient *redis.Client
	if config.GetEnv("REDIS_ADDRESS") != "" {
		client, err := config.InitRedisServer(ctx)
		if err != nil {
			config.Logger.Warn("Redis unavailable, search caching disabled", zap.Error(err))
		} else {
			redisClient = client
		}
	} else {
		config.Logger.Warn("REDIS_ADDRESS not set, search caching disabled")
	}

	cacheTTL := 5 * time.Minute
	if raw := config.GetEnv("SEARCH_CACHE_TTL_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			cacheTTL = time.Duration(seconds) * time.Second
		} else {
			config.Logger.Warn("Invalid SEARCH_CACHE_TTL_SECONDS, using default", zap.String("value", raw))
		}
	}

	// ------ WebSocket hub for content update notifications ------
	wsHub := websocket.NewHub()
	go wsHub.Run()

	wsHandler := websocket.NewWsHandler(wsHub)
	app.Get("/ws", wsHandler.HandleWebSocket)

	// Background jobs: nightly cache cleanup plus cache warming after reloads
	var asynqClient *asynq.Client
	if redisClient != nil {
		asynqRedisOpt := asynq.RedisClientOpt{
			Addr:     config.GetEnv("REDIS_ADDRESS"),
			Password: "",
			DB:       0,
		}

		asynqClient = asynq.NewClient(asynqRedisOpt)
		defer asynqClient.Close()

		worker := tasks.StartWorker(asynqRedisOpt, &tasks.WarmSearchCacheHandler{
			Aggregator: aggregator,
			Redis:      redisClient,
			CacheTTL:   cacheTTL,
			Logger:     config.Logger,
		}, config.Logger)
		defer worker.Shutdown()

		cleanup := utils.RunScheduledCleanup(redisClient, config.Logger)
		defer cleanup.Stop()
	}

	warmTerms := splitCSV(config.GetEnv("WARM_SEARCH_TERMS"))

	snapshots.OnReload(func(snapshot *campus_models.Snapshot) {
		wsHub.BroadcastSnapshotReloaded(snapshot.Version)

		if redisClient == nil {
			return
		}
		if err := utils.InvalidateSearchCache(ctx, redisClient, config.Logger); err != nil {
			config.Logger.Error("Failed to invalidate search cache after reload", zap.Error(err))
		}
		if len(warmTerms) == 0 {
			return
		}
		task, err := tasks.NewWarmSearchCacheTask(warmTerms)
		if err != nil {
			config.Logger.Error("Failed to build cache warm task", zap.Error(err))
			return
		}
		if _, err := asynqClient.Enqueue(task); err != nil {
			config.Logger.Error("Failed to enqueue cache warm task", zap.Error(err))
		}
	})

	// Routes
	campus_routes.CampusRouterInit(app, snapshots, tr)
	searchController := search_controllers.NewSearchController(aggregator, redisClient, cacheTTL)
	search_routes.InitSearchRoutes(app, searchController)

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port), zap.Int("content_version", snapshots.Current().Version))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
