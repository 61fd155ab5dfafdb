package adapters

import (
	"strings"

	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/search/models"
	"campus-guide-backend/translations"
)

// StudySpotAdapter matches study spots by name and by their building/room
// location.
type StudySpotAdapter struct {
	snapshots    *repositories.SnapshotRepository
	translations *translations.Provider
}

func NewStudySpotAdapter(snapshots *repositories.SnapshotRepository, tr *translations.Provider) *StudySpotAdapter {
	return &StudySpotAdapter{snapshots: snapshots, translations: tr}
}

func (a *StudySpotAdapter) ID() string {
	return "study_spots"
}

func (a *StudySpotAdapter) SectionKey() string {
	return translations.KeyStudySpots
}

func (a *StudySpotAdapter) GetResults(language, normalizedTerms string) ([]*models.SearchResult, error) {
	snapshot := a.snapshots.Current()
	if snapshot == nil {
		return nil, nil
	}

	var results []*models.SearchResult
	for i := range snapshot.StudySpots {
		spot := &snapshot.StudySpots[i]

		location := strings.TrimSpace(spot.Building + " " + spot.Room)
		fields := append(spot.Variants(), spot.Building, location)
		matched := matchFields(normalizedTerms, fields...)
		if len(matched) == 0 {
			continue
		}

		results = append(results, &models.SearchResult{
			Title:        a.translations.GetName(language, spot.TranslatedName),
			Description:  location,
			Icon:         "book-open-variant",
			MatchedTerms: matched,
			SourceData:   spot,
		})
	}

	return results, nil
}
