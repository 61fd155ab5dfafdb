package controllers

import (
	"strconv"

	"campus-guide-backend/campus/services"

	"github.com/gofiber/fiber/v2"
)

// GetClosestBuildingController resolves the nearest building to a coordinate:
// GET /api/v1/buildings/closest?latitude=&longitude=
func (cc *CampusController) GetClosestBuildingController(c *fiber.Ctx) error {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid latitude parameter"})
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid longitude parameter"})
	}
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Coordinates out of range"})
	}

	snapshot := cc.Snapshots.Current()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Campus content not loaded"})
	}

	building, distance := services.ClosestBuilding(snapshot.Buildings, latitude, longitude)
	if building == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No buildings available"})
	}

	language := c.Query("lang", "en")
	return c.JSON(fiber.Map{
		"code":            building.Code,
		"name":            cc.Translations.GetName(language, building.TranslatedName),
		"distance_metres": distance,
	})
}
