package adapters

import (
	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/search/models"
	"campus-guide-backend/translations"
)

// BuildingAdapter matches buildings by code and by any language variant of
// their name.
type BuildingAdapter struct {
	snapshots    *repositories.SnapshotRepository
	translations *translations.Provider
}

func NewBuildingAdapter(snapshots *repositories.SnapshotRepository, tr *translations.Provider) *BuildingAdapter {
	return &BuildingAdapter{snapshots: snapshots, translations: tr}
}

func (a *BuildingAdapter) ID() string {
	return "buildings"
}

func (a *BuildingAdapter) SectionKey() string {
	return translations.KeyBuildings
}

func (a *BuildingAdapter) GetResults(language, normalizedTerms string) ([]*models.SearchResult, error) {
	snapshot := a.snapshots.Current()
	if snapshot == nil {
		return nil, nil
	}

	var results []*models.SearchResult
	for i := range snapshot.Buildings {
		building := &snapshot.Buildings[i]

		fields := append([]string{building.Code}, building.Variants()...)
		matched := matchFields(normalizedTerms, fields...)
		if len(matched) == 0 {
			continue
		}

		results = append(results, &models.SearchResult{
			Title:        building.Code,
			Description:  a.translations.GetName(language, building.TranslatedName),
			Icon:         "office-building",
			MatchedTerms: matched,
			SourceData:   building,
		})
	}

	return results, nil
}
