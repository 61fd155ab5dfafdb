package adapters

import (
	campus_models "campus-guide-backend/campus/models"
	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/search/models"
	"campus-guide-backend/translations"
)

// LinkAdapter matches entries of the useful-links tree by any language variant
// of their name. The tree is walked depth-first in asset order so results keep
// the order links appear on the discover screen.
type LinkAdapter struct {
	snapshots    *repositories.SnapshotRepository
	translations *translations.Provider
}

func NewLinkAdapter(snapshots *repositories.SnapshotRepository, tr *translations.Provider) *LinkAdapter {
	return &LinkAdapter{snapshots: snapshots, translations: tr}
}

func (a *LinkAdapter) ID() string {
	return "links"
}

func (a *LinkAdapter) SectionKey() string {
	return translations.KeyUsefulLinks
}

func (a *LinkAdapter) GetResults(language, normalizedTerms string) ([]*models.SearchResult, error) {
	snapshot := a.snapshots.Current()
	if snapshot == nil {
		return nil, nil
	}

	var results []*models.SearchResult
	for i := range snapshot.LinkCategories {
		results = a.collect(language, normalizedTerms, &snapshot.LinkCategories[i], results)
	}

	return results, nil
}

func (a *LinkAdapter) collect(language, normalizedTerms string, category *campus_models.LinkCategory, results []*models.SearchResult) []*models.SearchResult {
	for i := range category.Links {
		link := &category.Links[i]

		matched := matchFields(normalizedTerms, link.Variants()...)
		if len(matched) == 0 {
			continue
		}

		results = append(results, &models.SearchResult{
			Title:        a.translations.GetName(language, link.TranslatedName),
			Description:  link.URL,
			Icon:         "link",
			MatchedTerms: matched,
			SourceData:   link,
		})
	}

	for i := range category.Categories {
		results = a.collect(language, normalizedTerms, &category.Categories[i], results)
	}

	return results
}
