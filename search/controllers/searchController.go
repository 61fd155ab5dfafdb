package controllers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"campus-guide-backend/config"
	"campus-guide-backend/search/models"
	"campus-guide-backend/search/services"
	"campus-guide-backend/translations"
	"campus-guide-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Response states let the client distinguish "nothing searched yet",
// "searched but no matches" and "search broke".
const (
	StateOK         = "ok"
	StateEmptyQuery = "empty_query"
	StateNoResults  = "no_results"
	StateSearchFail = "search_failed"
)

type SearchController struct {
	Aggregator *services.Aggregator
	Redis      *redis.Client // nil disables response caching
	CacheTTL   time.Duration
}

func NewSearchController(aggregator *services.Aggregator, rdb *redis.Client, cacheTTL time.Duration) *SearchController {
	return &SearchController{
		Aggregator: aggregator,
		Redis:      rdb,
		CacheTTL:   cacheTTL,
	}
}

// SearchCampusController handles GET /api/v1/search?q=&lang=&preview=.
// preview=n reduces each section to its first n results for the category
// preview rows.
func (c *SearchController) SearchCampusController(ctx *fiber.Ctx) error {
	terms := ctx.Query("q")
	language := ctx.Query("lang", "en")
	if !translations.Supported(language) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported language, expected one of: " + strings.Join(translations.Languages(), ", "),
		})
	}

	preview := ctx.QueryInt("preview", 0)
	if preview < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid preview parameter"})
	}

	// An empty query is not an error; it just means nothing was searched yet.
	if strings.TrimSpace(terms) == "" {
		return ctx.JSON(fiber.Map{
			"state":   StateEmptyQuery,
			"results": models.SectionedResults{},
		})
	}

	cacheKey := utils.SearchCacheKey(language, terms, preview)
	if c.Redis != nil {
		if cached, err := c.Redis.Get(ctx.Context(), cacheKey).Result(); err == nil {
			ctx.Set("X-Search-Cache", "hit")
			ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return ctx.SendString(cached)
		}
	}

	results, err := c.Aggregator.Query(language, terms)
	if err != nil {
		var sourceErr *models.SearchSourceError
		if errors.As(err, &sourceErr) {
			config.Logger.Error("Search query failed",
				zap.String("source", sourceErr.Source),
				zap.String("terms", terms),
				zap.Error(sourceErr.Err),
			)
		} else {
			config.Logger.Error("Search query failed", zap.String("terms", terms), zap.Error(err))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"state": StateSearchFail,
			"error": "Search failed",
		})
	}

	if preview > 0 {
		results = services.TopN(results, preview)
	}

	state := StateOK
	if len(results) == 0 {
		state = StateNoResults
	}

	payload := fiber.Map{
		"state":   state,
		"results": results,
	}

	// Cache writes are best effort; a Redis hiccup must not fail the search.
	if c.Redis != nil {
		if body, err := json.Marshal(payload); err == nil {
			if err := c.Redis.Set(ctx.Context(), cacheKey, body, c.CacheTTL).Err(); err != nil {
				config.Logger.Warn("Failed to cache search response", zap.Error(err))
			}
		}
	}

	return ctx.JSON(payload)
}
