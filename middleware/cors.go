package middleware

import (
	"campus-guide-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// InitCors applies CORS settings to the app. The mobile shell runs from a
// local origin during development; override with CORS_ALLOW_ORIGINS.
func InitCors(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnvDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowMethods: "GET,HEAD,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Accept-Language, X-Requested-With",
	}))
}
