package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// GetLinksController returns the useful-links category tree.
func (cc *CampusController) GetLinksController(c *fiber.Ctx) error {
	snapshot := cc.Snapshots.Current()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Campus content not loaded"})
	}

	return c.JSON(fiber.Map{"categories": snapshot.LinkCategories})
}

// GetStudySpotsController returns every study spot.
func (cc *CampusController) GetStudySpotsController(c *fiber.Ctx) error {
	snapshot := cc.Snapshots.Current()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Campus content not loaded"})
	}

	return c.JSON(fiber.Map{"study_spots": snapshot.StudySpots})
}

// GetShuttleController returns the shuttle stops and route timetables.
func (cc *CampusController) GetShuttleController(c *fiber.Ctx) error {
	snapshot := cc.Snapshots.Current()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Campus content not loaded"})
	}

	return c.JSON(fiber.Map{
		"stops":  snapshot.Shuttle.Stops,
		"routes": snapshot.Shuttle.Routes,
	})
}
