package routes

import (
	"campus-guide-backend/campus/controllers"
	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/translations"

	"github.com/gofiber/fiber/v2"
)

func CampusRouterInit(
	app *fiber.App,
	snapshots *repositories.SnapshotRepository,
	tr *translations.Provider,
) {
	campusController := controllers.NewCampusController(snapshots, tr)

	api := app.Group("/api/v1")

	api.Get("/buildings", campusController.GetBuildingsController)
	api.Get("/buildings/closest", campusController.GetClosestBuildingController)
	api.Get("/buildings/export", campusController.ExportBuildingsController)
	api.Get("/buildings/:code", campusController.GetBuildingController)
	api.Get("/links", campusController.GetLinksController)
	api.Get("/study-spots", campusController.GetStudySpotsController)
	api.Get("/shuttle", campusController.GetShuttleController)
}
