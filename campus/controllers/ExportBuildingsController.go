package controllers

import (
	"fmt"

	"campus-guide-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportBuildingsController streams the building directory as an xlsx
// workbook for campus facilities staff: GET /api/v1/buildings/export
func (cc *CampusController) ExportBuildingsController(c *fiber.Ctx) error {
	snapshot := cc.Snapshots.Current()
	if snapshot == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Campus content not loaded"})
	}

	language := c.Query("lang", "en")

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Buildings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		config.Logger.Error("Failed to create export sheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate export"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Code", "Name", "Address", "Latitude", "Longitude", "Rooms"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			config.Logger.Error("Failed to write export header", zap.String("header", header), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate export"})
		}
	}

	for row := range snapshot.Buildings {
		b := &snapshot.Buildings[row]
		values := []interface{}{
			b.Code,
			cc.Translations.GetName(language, b.TranslatedName),
			b.Address,
			b.Latitude,
			b.Longitude,
			len(b.Rooms),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				config.Logger.Error("Failed to write export row", zap.Int("row", row+2), zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate export"})
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		config.Logger.Error("Failed to serialize export workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate export"})
	}

	filename := fmt.Sprintf("buildings_v%d.xlsx", snapshot.Version)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buffer.Bytes())
}
