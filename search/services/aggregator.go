package services

import (
	"strings"

	"campus-guide-backend/search/adapters"
	"campus-guide-backend/search/models"
	"campus-guide-backend/translations"

	"go.uber.org/zap"
)

// DefaultPreviewSize is how many results per section the preview rows show.
const DefaultPreviewSize = 2

// Aggregator fans a free-text query out to every registered source adapter and
// merges the per-source lists into sections keyed by translated labels.
// It holds no mutable state, so concurrent Query/Narrow calls need no
// coordination; determinism follows from the fixed adapter registration order.
type Aggregator struct {
	adapters     []adapters.SourceAdapter
	translations *translations.Provider
	logger       *zap.Logger
}

func NewAggregator(tr *translations.Provider, logger *zap.Logger, sources ...adapters.SourceAdapter) *Aggregator {
	return &Aggregator{
		adapters:     sources,
		translations: tr,
		logger:       logger,
	}
}

// Query evaluates the search terms against every source. Empty or whitespace
// terms return an empty result set immediately. An adapter failure fails the
// whole call with a SearchSourceError naming the source; a silently missing
// source would read to the user as "nothing matched".
func (a *Aggregator) Query(language, terms string) (models.SectionedResults, error) {
	if strings.TrimSpace(terms) == "" {
		return models.SectionedResults{}, nil
	}

	normalized := strings.ToUpper(terms)
	merged := models.SectionedResults{}

	// Adapters run in registration order; two adapters resolving to the same
	// section label concatenate in that order.
	for _, source := range a.adapters {
		results, err := source.GetResults(language, normalized)
		if err != nil {
			a.logger.Error("Search source failed",
				zap.String("source", source.ID()),
				zap.Error(err),
			)
			return nil, &models.SearchSourceError{Source: source.ID(), Err: err}
		}
		if len(results) == 0 {
			continue
		}

		label := a.translations.Get(language, source.SectionKey())
		merged[label] = append(merged[label], results...)
	}

	return merged, nil
}

// CanNarrow reports whether newTerms can be answered by narrowing the result
// set produced by prevTerms: both non-empty and newTerms containing prevTerms
// as a substring (case-insensitive). Anything else needs a full Query.
func CanNarrow(prevTerms, newTerms string) bool {
	if prevTerms == "" || newTerms == "" {
		return false
	}
	return strings.Contains(strings.ToUpper(newTerms), strings.ToUpper(prevTerms))
}

// Narrow re-filters an already-computed result set by the longer terms without
// touching the underlying sources. A result survives if at least one of its
// matched terms still contains the new uppercased terms. The previous results
// are not mutated; callers own both copies.
func (a *Aggregator) Narrow(terms string, previous models.SectionedResults) models.SectionedResults {
	normalized := strings.ToUpper(terms)
	narrowed := models.SectionedResults{}

	for label, results := range previous {
		var kept []*models.SearchResult
		for _, result := range results {
			for _, matched := range result.MatchedTerms {
				if strings.Contains(matched, normalized) {
					kept = append(kept, result)
					break
				}
			}
		}
		if len(kept) > 0 {
			narrowed[label] = kept
		}
	}

	return narrowed
}

// TopN reduces each section to its first n results for preview rows. Sections
// at or under n pass through unchanged; empty sections are omitted.
func TopN(results models.SectionedResults, n int) models.SectionedResults {
	if n <= 0 {
		n = DefaultPreviewSize
	}

	reduced := models.SectionedResults{}
	for label, sectionResults := range results {
		if len(sectionResults) == 0 {
			continue
		}
		if len(sectionResults) <= n {
			reduced[label] = sectionResults
			continue
		}
		reduced[label] = sectionResults[:n:n]
	}

	return reduced
}
