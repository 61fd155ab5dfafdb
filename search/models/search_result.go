package models

import "fmt"

// SearchResult is one match produced by a source adapter. MatchedTerms holds
// every field value that caused the match, uppercase-normalized, in the order
// the fields were examined. SourceData points back at the underlying entity
// for navigation; the struct is never mutated after the adapter returns it.
type SearchResult struct {
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	Icon         string      `json:"icon,omitempty"`
	MatchedTerms []string    `json:"matched_terms"`
	SourceData   interface{} `json:"source_data,omitempty"`
}

// SectionedResults maps a translated section label ("Buildings", "Salles", ...)
// to that source's matches. Built fresh per query; narrowed copies are derived,
// never edited in place.
type SectionedResults map[string][]*SearchResult

// SearchSourceError reports a source adapter failure during a query. The whole
// query fails rather than silently dropping the source, since results with a
// missing source would read as "nothing matched".
type SearchSourceError struct {
	Source string
	Err    error
}

func (e *SearchSourceError) Error() string {
	return fmt.Sprintf("search source %q failed: %v", e.Source, e.Err)
}

func (e *SearchSourceError) Unwrap() error {
	return e.Err
}
