package models

// Link is a single external resource shown on the discover screen.
type Link struct {
	TranslatedName
	URL string `json:"url"`
}

// LinkCategory is a node of the useful-links tree. Categories may nest.
type LinkCategory struct {
	TranslatedName
	ID         string         `json:"id"`
	Categories []LinkCategory `json:"categories,omitempty"`
	Links      []Link         `json:"links,omitempty"`
}
