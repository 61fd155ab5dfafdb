package routes

import (
	"campus-guide-backend/search/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitSearchRoutes(app *fiber.App, controller *controllers.SearchController) {
	api := app.Group("/api/v1")

	api.Get("/search", controller.SearchCampusController)
}
