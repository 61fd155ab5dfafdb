package adapters

import (
	"strings"

	"campus-guide-backend/search/models"
)

// SourceAdapter is a pure query function over one static content domain.
// Implementations read only the current snapshot, keep no state across calls,
// and preserve the iteration order of their backing collection.
type SourceAdapter interface {
	// ID identifies the adapter in errors and logs ("buildings", "rooms", ...).
	ID() string
	// SectionKey is the translation key whose resolved label names this
	// adapter's section in the merged results.
	SectionKey() string
	// GetResults evaluates an uppercase-normalized query. A missing snapshot
	// yields an empty list, not an error.
	GetResults(language, normalizedTerms string) ([]*models.SearchResult, error)
}

// matchFields checks each candidate field value for the normalized terms as a
// substring (uppercase comparison) and returns the matching values, uppercased,
// in field order. Duplicate values are recorded once.
func matchFields(normalizedTerms string, values ...string) []string {
	var matched []string
	var seen map[string]bool

	for _, value := range values {
		if value == "" {
			continue
		}
		upper := strings.ToUpper(value)
		if !strings.Contains(upper, normalizedTerms) {
			continue
		}
		if seen == nil {
			seen = make(map[string]bool)
		}
		if seen[upper] {
			continue
		}
		seen[upper] = true
		matched = append(matched, upper)
	}

	return matched
}
