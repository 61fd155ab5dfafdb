package controllers

import (
	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/translations"
)

// CampusController serves the static campus content snapshot: buildings and
// rooms for the finder, links/spots/shuttle for the discover screen.
type CampusController struct {
	Snapshots    *repositories.SnapshotRepository
	Translations *translations.Provider
}

func NewCampusController(snapshots *repositories.SnapshotRepository, tr *translations.Provider) *CampusController {
	return &CampusController{
		Snapshots:    snapshots,
		Translations: tr,
	}
}
