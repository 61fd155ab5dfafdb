package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// GetBuildingsController lists every building without its room inventory;
// clients fetch rooms per building when a floor plan is opened.
func (cc *CampusController) GetBuildingsController(c *fiber.Ctx) error {
	snapshot := cc.Snapshots.Current()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Campus content not loaded"})
	}

	type buildingSummary struct {
		Code      string  `json:"code"`
		Name      string  `json:"name"`
		Address   string  `json:"address,omitempty"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		RoomCount int     `json:"room_count"`
	}

	language := c.Query("lang", "en")
	summaries := make([]buildingSummary, 0, len(snapshot.Buildings))
	for i := range snapshot.Buildings {
		b := &snapshot.Buildings[i]
		summaries = append(summaries, buildingSummary{
			Code:      b.Code,
			Name:      cc.Translations.GetName(language, b.TranslatedName),
			Address:   b.Address,
			Latitude:  b.Latitude,
			Longitude: b.Longitude,
			RoomCount: len(b.Rooms),
		})
	}

	return c.JSON(fiber.Map{
		"version":   snapshot.Version,
		"buildings": summaries,
	})
}

// GetBuildingController returns one building with its full room list.
func (cc *CampusController) GetBuildingController(c *fiber.Ctx) error {
	building := cc.Snapshots.BuildingByCode(c.Params("code"))
	if building == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Building not found"})
	}

	return c.JSON(fiber.Map{"building": building})
}
